// Package cache provides interfaces for shop detail caches to be in compliance with.
package cache

import (
	"context"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/modelshop"
)

// ShopCache keeps canonical shops keyed by their external id.
type ShopCache interface {
	Get(ctx context.Context, id string) (modelshop.Shop, bool)
	Put(ctx context.Context, id string, shop modelshop.Shop)
}
