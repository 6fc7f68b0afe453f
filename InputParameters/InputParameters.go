package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Element is one element's local contribution: global scalar DOF indices and
// a row-major len(RowDOFs) x len(ColDOFs) dense matrix. ColDOFs may be
// omitted for the symmetric-footprint case, in which case RowDOFs is used
// for both.
type Element struct {
	RowDOFs []int     `yaml:"RowDOFs"`
	ColDOFs []int     `yaml:"ColDOFs"`
	Values  []float64 `yaml:"Values"`
}

// AssemblyParameters describes an assembly job obtained from a YAML input
// file: the block layout, the elements to scatter-add, the constrained DOFs
// for Dirichlet elimination, and where to write the result.
type AssemblyParameters struct {
	Title      string    `yaml:"Title"`
	BlockRows  int       `yaml:"BlockRows"`
	BlockCols  int       `yaml:"BlockCols"`
	NbRows     int       `yaml:"NbRows"`
	NbCols     int       `yaml:"NbCols"`
	Elements   []Element `yaml:"Elements"`
	BCDOFs     []int     `yaml:"BCDOFs"`
	OutputFile string    `yaml:"OutputFile"`
}

func (ap *AssemblyParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ap)
}

// Validate checks the job for the mistakes a hand-written YAML file is
// likely to contain before any assembly work starts.
func (ap *AssemblyParameters) Validate() error {
	if ap.BlockRows < 1 || ap.BlockCols < 1 {
		return fmt.Errorf("block dimensions %dx%d, both must be >= 1", ap.BlockRows, ap.BlockCols)
	}
	if ap.NbRows < 1 || ap.NbCols < 1 {
		return fmt.Errorf("block counts %dx%d, both must be >= 1", ap.NbRows, ap.NbCols)
	}
	for n, el := range ap.Elements {
		cols := el.ColDOFs
		if len(cols) == 0 {
			cols = el.RowDOFs
		}
		if len(el.Values) != len(el.RowDOFs)*len(cols) {
			return fmt.Errorf("element %d: %d values, want %d (%dx%d)",
				n, len(el.Values), len(el.RowDOFs)*len(cols), len(el.RowDOFs), len(cols))
		}
	}
	return nil
}

func (ap *AssemblyParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ap.Title)
	fmt.Printf("[%dx%d]\t\t\t= Block Dimensions\n", ap.BlockRows, ap.BlockCols)
	fmt.Printf("[%dx%d]\t\t\t= Block Counts\n", ap.NbRows, ap.NbCols)
	fmt.Printf("[%d]\t\t\t\t= Elements\n", len(ap.Elements))
	fmt.Printf("[%d]\t\t\t\t= Constrained DOFs\n", len(ap.BCDOFs))
	fmt.Printf("\"%s\"\t\t= Output File\n", ap.OutputFile)
}
