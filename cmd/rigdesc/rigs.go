package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nerrad567/rigdesc/internal/rigs"
)

func newRigsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rigs",
		Short: "List the rigs known to write",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, id := range rigs.All() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), id); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
