// Package searcher provides interfaces for types to be in compliance with.
package searcher

import (
	"context"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/modelshop"
)

// Searcher defines a set of methods for types implementing Searcher.
type Searcher interface {
	Search(ctx context.Context, q modelshop.Query) ([]modelshop.RawShop, error)
	Lookup(ctx context.Context, id string) (modelshop.RawShop, error)
	LookupBulk(ctx context.Context, ids []string) map[string]modelshop.RawShop
}
