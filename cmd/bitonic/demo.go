package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/intel/forGoBitonic/bitonic"
)

var (
	demoColours = []string{
		"Blue", "Yellow", "Almond", "Onyx", "Peach", "Gold", "Red", "Melon",
		"Lava", "Beige", "Aqua", "Lilac", "Capri", "Orange", "Mauve", "Plum",
	}
	demoDoubles = []float64{
		-23.45, 56.23, 67.45, 23.0, 24.78, 13.67, 87.89, 98.0,
		76.283, 87.65, 90.65, 87.87, 324.56, 11334.5, 467.78, 4657.78,
	}
)

func newDemoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Sort the built-in demonstration arrays with both strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, strategy := range []bitonic.Strategy{bitonic.Sequential, bitonic.Parallel} {
				opts := []bitonic.Option{
					bitonic.WithStrategy(strategy),
					bitonic.WithGrainSize(1),
					bitonic.WithLogger(a.logger),
				}
				colours := slices.Clone(demoColours)
				err := demoSort(cmd, out, strategy, colours,
					bitonic.NewSorter[string](opts...), strings.Compare)
				if err != nil {
					return err
				}
				doubles := slices.Clone(demoDoubles)
				err = demoSort(cmd, out, strategy, doubles,
					bitonic.NewSorter[float64](opts...), bitonic.Ascending[float64]())
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func demoSort[T any](
	cmd *cobra.Command,
	out io.Writer,
	strategy bitonic.Strategy,
	data []T,
	sorter *bitonic.Sorter[T],
	cmp bitonic.Comparator[T],
) error {
	if _, err := fmt.Fprintf(out, "Original %s array: %v\n", strategy, data); err != nil {
		return err
	}
	if err := sorter.Sort(cmd.Context(), data, cmp); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "Sorted %s array: %v\n", strategy, data)
	return err
}
