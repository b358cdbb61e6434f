package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/intel/forGoBitonic/bitonic"
)

func newNetworkCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Print the compare-and-swap pairs of the sorting network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			size := a.v.GetInt("size")
			pairs, err := bitonic.Network(size)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, pair := range pairs {
				if _, err := fmt.Fprintln(out, pair[0], pair[1]); err != nil {
					return err
				}
			}
			a.logger.Info("network", "size", size, "comparators", len(pairs))
			return nil
		},
	}
	cmd.Flags().Int("size", 8, "number of elements, a power of two")
	return cmd
}
