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
	"io/ioutil"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/blocksparse/InputParameters"
	"github.com/notargets/blocksparse/bsr"
	"github.com/spf13/cobra"
)

// AssembleCmd represents the assemble command
var AssembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Assemble a block sparse matrix from a YAML job description",
	Long: `Reads a YAML assembly job (block layout, element contributions, constrained
DOFs), builds the sparsity pattern from the element footprints, scatter-adds
every element matrix, applies Dirichlet row elimination, and writes the
result in MatrixMarket format.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		jobFile, err := cmd.Flags().GetString("inputFile")
		if err != nil {
			panic(err)
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		ap := processAssemblyInput(jobFile)
		if verbose {
			ap.Print()
		}
		if err = RunAssemble(ap, verbose); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func processAssemblyInput(jobFile string) (ap *InputParameters.AssemblyParameters) {
	var (
		err error
	)
	if len(jobFile) == 0 {
		fmt.Println("must supply a job file (-I, --inputFile) in YAML format")
		exampleFile := `
########################################
Title: "Two Quad Elements"
BlockRows: 2
BlockCols: 2
NbRows: 3
NbCols: 3
Elements:
  - RowDOFs: [0, 1, 2, 3]
    Values: [4, -1, -1, 0, -1, 4, 0, -1, -1, 0, 4, -1, 0, -1, -1, 4]
  - RowDOFs: [2, 3, 4, 5]
    Values: [4, -1, -1, 0, -1, 4, 0, -1, -1, 0, 4, -1, 0, -1, -1, 4]
BCDOFs: [0]
OutputFile: "out.mtx"
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(jobFile); err != nil {
		panic(err)
	}
	ap = &InputParameters.AssemblyParameters{}
	if err = ap.Parse(data); err != nil {
		panic(err)
	}
	return
}

// RunAssemble executes an assembly job end to end.
func RunAssemble(ap *InputParameters.AssemblyParameters, verbose bool) (err error) {
	if err = ap.Validate(); err != nil {
		return
	}
	// The element-footprint pattern builder couples every block an element
	// touches with every other, which assumes one block index space for
	// rows and columns.
	if ap.NbRows != ap.NbCols || ap.BlockRows != ap.BlockCols {
		return fmt.Errorf("assemble requires a square block layout, have %dx%d blocks of %dx%d",
			ap.NbRows, ap.NbCols, ap.BlockRows, ap.BlockCols)
	}
	elements := make([][]int, len(ap.Elements))
	for n, el := range ap.Elements {
		elements[n] = blockNodes(el, ap.BlockRows, ap.BlockCols)
	}
	A := bsr.NewFromElements(ap.NbRows, ap.NbCols, ap.BlockRows, ap.BlockCols, elements)

	for _, el := range ap.Elements {
		cols := el.ColDOFs
		if len(cols) == 0 {
			cols = el.RowDOFs
		}
		local := mat.NewDense(len(el.RowDOFs), len(cols), el.Values)
		A.AddValues(el.RowDOFs, cols, local)
	}
	if len(ap.BCDOFs) != 0 {
		A.ZeroRows(ap.BCDOFs)
	}
	if verbose {
		nr, nc := A.Dims()
		fmt.Printf("assembled %dx%d scalar matrix, %d nonzero blocks, %d dropped contributions\n",
			nr, nc, A.Nnz, A.DroppedContributions())
	}
	out := ap.OutputFile
	if len(out) == 0 {
		out = "matrix.mtx"
	}
	return A.WriteMtxFile(out)
}

// blockNodes collects the unique block indices an element touches, across
// both its row and column DOFs.
func blockNodes(el InputParameters.Element, blockRows, blockCols int) (nodes []int) {
	seen := make(map[int]struct{})
	for _, dof := range el.RowDOFs {
		seen[dof/blockRows] = struct{}{}
	}
	cols := el.ColDOFs
	if len(cols) == 0 {
		cols = el.RowDOFs
	}
	for _, dof := range cols {
		seen[dof/blockCols] = struct{}{}
	}
	for b := range seen {
		nodes = append(nodes, b)
	}
	return
}

func init() {
	rootCmd.AddCommand(AssembleCmd)
	AssembleCmd.Flags().StringP("inputFile", "I", "", "YAML file describing the assembly job")
	AssembleCmd.Flags().BoolP("verbose", "v", false, "print the job parameters and assembly stats")
}
