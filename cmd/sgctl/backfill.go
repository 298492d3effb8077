package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/app"
)

func newBackfillCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "backfill",
		Short: "Refresh coordinates of every shared shop",
		Long: `Re-fetches every shared shop from the HotPepper API and stores its latitude and
longitude when both are valid numbers. Shops missing upstream are left unchanged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), func(ctx context.Context, a *app.App) error {
				updated, err := a.Reconciler.Backfill(ctx)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "updated %d shared shops\n", updated)
				return err
			})
		},
	}
}
