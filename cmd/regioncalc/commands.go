package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/scigolib/region"
	"github.com/scigolib/region/linear"
)

var verbose bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "regioncalc",
		Short: "Evaluate box and region algebra described in YAML",
		Long: `regioncalc reads a document of the form

  dim: 3
  a: [[[0,0,0],[4,4,4]]]
  b: [[[1,1,1],[2,2,2]]]

where each box is a [lower, upper) corner pair, and prints set
operations or linearizations of the regions a and b.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print the boxes of every result")

	root.AddCommand(newAlgebraCmd(), newLinearizeCmd())
	return root
}

func newAlgebraCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algebra FILE",
		Short: "Print intersection, difference, union and symmetric difference of a and b",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			a, b, err := doc.regions()
			if err != nil {
				return err
			}
			return printAlgebra(cmd.OutOrStdout(), a, b)
		},
	}
}

func newLinearizeCmd() *cobra.Command {
	var elemSize int

	cmd := &cobra.Command{
		Use:   "linearize FILE",
		Short: "Assign buffer offsets to the boxes of a in order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if elemSize <= 0 {
				return fmt.Errorf("invalid element size: %d", elemSize)
			}
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			boxes, err := doc.boxes(doc.A)
			if err != nil {
				return fmt.Errorf("a: %w", err)
			}
			return printLinearization(cmd.OutOrStdout(), doc.Dim, boxes, elemSize)
		},
	}
	cmd.Flags().IntVar(&elemSize, "elem-size", 1, "element size in bytes used for byte ranges")
	return cmd
}

func printAlgebra(w io.Writer, a, b region.DRegion[int64]) error {
	results := []struct {
		name string
		r    region.DRegion[int64]
	}{
		{"a", a},
		{"b", b},
		{"a & b", a.Intersection(b)},
		{"a - b", a.Difference(b)},
		{"b - a", b.Difference(a)},
		{"a | b", a.Union(b)},
		{"a ^ b", a.SymmetricDifference(b)},
	}

	for _, res := range results {
		if err := res.r.Invariant(); err != nil {
			return fmt.Errorf("%s: %w", res.name, err)
		}
		size, err := res.r.CheckedSize()
		if err != nil {
			return fmt.Errorf("%s: %w", res.name, err)
		}
		fmt.Fprintf(w, "%-6s size=%d boxes=%d\n", res.name, size, res.r.Len())
		if verbose {
			for _, box := range res.r.Boxes() {
				fmt.Fprintf(w, "         %v\n", box)
			}
		}
	}

	fmt.Fprintf(w, "a <= b: %t\n", a.IsSubsetOf(b))
	fmt.Fprintf(w, "b <= a: %t\n", b.IsSubsetOf(a))
	fmt.Fprintf(w, "a == b: %t\n", a.Equal(b))
	fmt.Fprintf(w, "disjoint: %t\n", a.IsDisjoint(b))
	return nil
}

func printLinearization(w io.Writer, dim int, boxes []region.DBox[int64], elemSize int) error {
	concat, err := linear.MakeDConcatenation[int64](dim)
	if err != nil {
		return err
	}

	for i, box := range boxes {
		lin, err := concat.PushBack(box)
		if err != nil {
			return fmt.Errorf("box %d: %w", i, err)
		}
		e := int64(elemSize)
		fmt.Fprintf(w, "%3d %v offset=%d size=%d bytes=[%d,%d)\n",
			i, box, lin.Pos(), lin.Size(), lin.Pos()*e, lin.End()*e)
	}
	fmt.Fprintf(w, "total=%d\n", concat.Next())
	return nil
}
