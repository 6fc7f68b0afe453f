/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/notargets/blocksparse/readfiles"
	"github.com/spf13/cobra"
)

// InspectCmd represents the inspect command
var InspectCmd = &cobra.Command{
	Use:   "inspect [file.mtx]",
	Short: "Print summary statistics for a MatrixMarket file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		M, err := readfiles.ReadMtxFile(args[0])
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		var (
			nr, nc = M.Dims()
			sumSq  float64
			maxAbs float64
		)
		M.DoNonZero(func(i, j int, v float64) {
			sumSq += v * v
			if math.Abs(v) > maxAbs {
				maxAbs = math.Abs(v)
			}
		})
		fmt.Printf("%s:\n", args[0])
		fmt.Printf("%d x %d\t\t= Dimensions\n", nr, nc)
		fmt.Printf("%d\t\t\t= Stored Nonzeros\n", M.NNZ())
		fmt.Printf("%12.6e\t= Frobenius Norm\n", math.Sqrt(sumSq))
		fmt.Printf("%12.6e\t= Max |Entry|\n", maxAbs)
	},
}

func init() {
	rootCmd.AddCommand(InspectCmd)
}
