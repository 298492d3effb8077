// Package storage provides interfaces for types to be in compliance with.
package storage

import (
	"context"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/storage/modelstorage"
)

// SharedShopSetter defines a set of methods for types implementing SharedShopSetter.
type SharedShopSetter interface {
	UpsertShared(ctx context.Context, row modelstorage.SharedShopRow) (modelstorage.SharedShopRow, error)
	UpdateCoordinates(ctx context.Context, id string, lat, lng float64) error
}

// SharedShopGetter defines a set of methods for types implementing SharedShopGetter.
type SharedShopGetter interface {
	RetrieveShared(ctx context.Context, key modelstorage.SharedKey) (modelstorage.SharedShopRow, error)
	RetrieveSharedByHotPepperID(ctx context.Context, hotpepperID string) (modelstorage.SharedShopRow, error)
	RetrieveSharedByGroup(ctx context.Context, groupID string) ([]modelstorage.SharedShopRow, error)
	RetrieveAllShared(ctx context.Context) ([]modelstorage.SharedShopRow, error)
}

// PrivateShopSetter defines a set of methods for types implementing PrivateShopSetter.
type PrivateShopSetter interface {
	UpsertPrivate(ctx context.Context, row modelstorage.PrivateShopRow) (modelstorage.PrivateShopRow, error)
}

// PrivateShopGetter defines a set of methods for types implementing PrivateShopGetter.
type PrivateShopGetter interface {
	RetrievePrivate(ctx context.Context, key modelstorage.PrivateKey) (modelstorage.PrivateShopRow, error)
	RetrievePrivateByUser(ctx context.Context, userID string) ([]modelstorage.PrivateShopRow, error)
}

// GroupStorage defines a set of methods for types implementing GroupStorage.
type GroupStorage interface {
	DumpGroup(ctx context.Context, row modelstorage.GroupRow) (modelstorage.GroupRow, error)
	RetrieveGroupsByUser(ctx context.Context, userID string) ([]modelstorage.GroupRow, error)
}

// MemoStorage defines a set of methods for types implementing MemoStorage.
type MemoStorage interface {
	DumpMemo(ctx context.Context, row modelstorage.MemoRow) (modelstorage.MemoRow, error)
	RetrieveMemos(ctx context.Context, shopID string) ([]modelstorage.MemoRow, error)
	DeleteMemo(ctx context.Context, memoID, userID string) error
}

// Pinger defines a set of methods for types implementing Pinger.
type Pinger interface {
	PingDB(ctx context.Context) error
}

// Closer defines a set of methods for types implementing Closer.
type Closer interface {
	CloseDB() error
}

// ShopStorage defines a set of embedded interfaces for types implementing ShopStorage.
type ShopStorage interface {
	SharedShopSetter
	SharedShopGetter
	PrivateShopSetter
	PrivateShopGetter
	GroupStorage
	MemoStorage
	Pinger
	Closer
}
