package main

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/app"
	serviceErrors "github.com/danilovkiri/dk_go_sharegourmet/internal/service/errors"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/modelshop"
)

func newSearchCmd(opts *options) *cobra.Command {
	var q modelshop.Query
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search shops and print them normalized as JSON",
		Example: `  sgctl search --keyword ramen --genre G013
  sgctl search --id J001234567`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), func(ctx context.Context, a *app.App) error {
				shops, err := a.Reconciler.Search(ctx, q)
				var malformed *serviceErrors.UpstreamMalformedError
				if err != nil && !errors.As(err, &malformed) {
					return err
				}
				if shops == nil {
					shops = []modelshop.Shop{}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(shops)
			})
		},
	}
	cmd.Flags().StringVar(&q.Keyword, "keyword", "", "Free-text keyword")
	cmd.Flags().StringVar(&q.Genre, "genre", "", "Genre code")
	cmd.Flags().StringVar(&q.SmallArea, "small-area", "", "Small area code")
	cmd.Flags().StringVar(&q.ID, "id", "", "Shop id; other filters are ignored when set")
	return cmd
}
