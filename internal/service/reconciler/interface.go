// Package reconciler provides interfaces for types to be in compliance with.
package reconciler

import (
	"context"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/modelauth"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/modelshop"
)

// ResolveOptions selects the store lookup key and whether a gateway result is persisted.
//
// With GroupID set the lookup uses (external id, group); with Private it uses
// (external id, user); otherwise the most recent shared row for the external id is used.
type ResolveOptions struct {
	GroupID string
	Private bool
	Persist bool
}

// Resolver defines a set of methods for types implementing Resolver.
type Resolver interface {
	Resolve(ctx context.Context, auth modelauth.AuthContext, externalID string, opts ResolveOptions) (modelshop.Detail, error)
	ResolveBulk(ctx context.Context, ids []string) map[string]modelshop.Shop
	Search(ctx context.Context, q modelshop.Query) ([]modelshop.Shop, error)
}

// Writer defines a set of methods for types implementing Writer.
type Writer interface {
	Share(ctx context.Context, auth modelauth.AuthContext, shop modelshop.Shop, groupID string) (modelshop.SharedShop, error)
	Save(ctx context.Context, auth modelauth.AuthContext, shop modelshop.Shop) (modelshop.PrivateShop, error)
}

// Lister defines a set of methods for types implementing Lister.
type Lister interface {
	ListShared(ctx context.Context, groupID string) ([]modelshop.SharedShop, error)
	ListPrivate(ctx context.Context, auth modelauth.AuthContext) ([]modelshop.PrivateShop, error)
}

// Grouper defines a set of methods for types implementing Grouper.
type Grouper interface {
	CreateGroup(ctx context.Context, auth modelauth.AuthContext, name string) (modelshop.Group, error)
	ListGroups(ctx context.Context, auth modelauth.AuthContext) ([]modelshop.Group, error)
}

// Memoizer defines a set of methods for types implementing Memoizer.
type Memoizer interface {
	AddMemo(ctx context.Context, auth modelauth.AuthContext, shopID, content string) (modelshop.Memo, error)
	ListMemos(ctx context.Context, shopID string) ([]modelshop.Memo, error)
	DeleteMemo(ctx context.Context, auth modelauth.AuthContext, memoID string) error
}

// Maintainer defines a set of methods for types implementing Maintainer.
type Maintainer interface {
	Backfill(ctx context.Context) (int, error)
	PingDB(ctx context.Context) error
}

// Reconciler defines a set of embedded interfaces for types implementing Reconciler.
type Reconciler interface {
	Resolver
	Writer
	Lister
	Grouper
	Memoizer
	Maintainer
}
