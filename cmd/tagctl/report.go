package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"unsafe"

	"github.com/spf13/cobra"

	"github.com/tagbits/ptrkit/tagref"
)

func init() {
	rootCmd.AddCommand(newReportCmd())
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report alignment and spare-bit budgets for common Go types",
		Long: `The report command prints, for a table of common Go types, the size,
alignment, whether the type can carry two flag bits in its address, and
how many spare low bits its alignment guarantees.

Example:
  tagctl report
  tagctl report --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport()
		},
	}
	return cmd
}

// typeReport describes one row of the alignment table.
type typeReport struct {
	Type      string `json:"type"`
	Size      int    `json:"size"`
	Align     int    `json:"align"`
	Taggable  bool   `json:"taggable"`
	SpareBits int    `json:"spareBits"`
}

func describe[T any](name string) typeReport {
	var v T
	a := unsafe.Alignof(v)
	spare := 0
	for m := a; m&1 == 0; m >>= 1 {
		spare++
	}
	return typeReport{
		Type:      name,
		Size:      int(unsafe.Sizeof(v)),
		Align:     int(a),
		Taggable:  a%tagref.MinAlign == 0,
		SpareBits: spare,
	}
}

func runReport() error {
	printVerbose("Probing alignments on this platform\n")

	rows := []typeReport{
		describe[bool]("bool"),
		describe[int8]("int8"),
		describe[int16]("int16"),
		describe[int32]("int32"),
		describe[int64]("int64"),
		describe[int]("int"),
		describe[float64]("float64"),
		describe[complex128]("complex128"),
		describe[string]("string"),
		describe[[]byte]("[]byte"),
		describe[*int]("*int"),
		describe[map[string]int]("map[string]int"),
		describe[struct{ a, b byte }]("struct{a, b byte}"),
		describe[struct {
			n int32
			b byte
		}]("struct{n int32; b byte}"),
	}

	if jsonOut {
		return printJSON(rows)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tSIZE\tALIGN\tTAGGABLE\tSPARE BITS")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%d\t%d\t%v\t%d\n", r.Type, r.Size, r.Align, r.Taggable, r.SpareBits)
	}
	return w.Flush()
}
