// Package inmemory provides functionality for keeping shared shops, private shops, groups and
// memos in local maps keyed by their natural keys.
package inmemory

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"go.uber.org/zap"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/storage"
	storageErrors "github.com/danilovkiri/dk_go_sharegourmet/internal/storage/errors"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/storage/modelstorage"
)

// Check interface implementation explicitly
var (
	_ storage.ShopStorage = (*Storage)(nil)
)

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	mu      sync.Mutex
	log     *zap.Logger
	last    time.Time
	shared  map[modelstorage.SharedKey]modelstorage.SharedShopRow
	private map[modelstorage.PrivateKey]modelstorage.PrivateShopRow
	groups  map[string]modelstorage.GroupRow
	memos   map[string]modelstorage.MemoRow
}

// InitStorage initializes a Storage object and sets its attributes.
func InitStorage(log *zap.Logger) *Storage {
	if log == nil {
		log = zap.NewNop()
	}
	return &Storage{
		log:     log,
		shared:  make(map[modelstorage.SharedKey]modelstorage.SharedShopRow),
		private: make(map[modelstorage.PrivateKey]modelstorage.PrivateShopRow),
		groups:  make(map[string]modelstorage.GroupRow),
		memos:   make(map[string]modelstorage.MemoRow),
	}
}

// UpsertShared inserts a shared shop or updates the display fields of the row with the same
// (hotpepper_id, group_id).
func (s *Storage) UpsertShared(ctx context.Context, row modelstorage.SharedShopRow) (modelstorage.SharedShopRow, error) {
	var stored modelstorage.SharedShopRow
	err := s.exec(ctx, "Upserting shared shop", func() error {
		if row.HotPepperID == "" {
			return &storageErrors.ConstraintError{Code: pgerrcode.NotNullViolation, Constraint: "hotpepper_id"}
		}
		if _, ok := s.groups[row.GroupID]; !ok {
			return &storageErrors.ConstraintError{Code: pgerrcode.ForeignKeyViolation, Constraint: "shared_shops_group_id_fkey"}
		}
		key := modelstorage.SharedKey{HotPepperID: row.HotPepperID, GroupID: row.GroupID}
		now := s.now()
		existing, ok := s.shared[key]
		if ok {
			existing.ShopRow = row.ShopRow
			existing.UpdatedAt = now
			stored = existing
		} else {
			row.ID = uuid.NewString()
			row.CreatedAt = now
			row.UpdatedAt = now
			stored = row
		}
		s.shared[key] = stored
		return nil
	})
	if err != nil {
		return modelstorage.SharedShopRow{}, err
	}
	return stored, nil
}

// UpdateCoordinates sets coordinates of a shared shop by its row id.
func (s *Storage) UpdateCoordinates(ctx context.Context, id string, lat, lng float64) error {
	return s.exec(ctx, "Updating coordinates", func() error {
		for key, row := range s.shared {
			if row.ID == id {
				row.Latitude = &lat
				row.Longitude = &lng
				row.UpdatedAt = s.now()
				s.shared[key] = row
				return nil
			}
		}
		return &storageErrors.NotFoundError{Key: id}
	})
}

// RetrieveShared returns the shared shop for a natural key.
func (s *Storage) RetrieveShared(ctx context.Context, key modelstorage.SharedKey) (modelstorage.SharedShopRow, error) {
	var row modelstorage.SharedShopRow
	err := s.exec(ctx, "Retrieving shared shop", func() error {
		found, ok := s.shared[key]
		if !ok {
			return &storageErrors.NotFoundError{Key: key.HotPepperID + "/" + key.GroupID}
		}
		row = found
		return nil
	})
	if err != nil {
		return modelstorage.SharedShopRow{}, err
	}
	return row, nil
}

// RetrieveSharedByHotPepperID returns the most recently updated shared row for an external id.
func (s *Storage) RetrieveSharedByHotPepperID(ctx context.Context, hotpepperID string) (modelstorage.SharedShopRow, error) {
	var row modelstorage.SharedShopRow
	err := s.exec(ctx, "Retrieving shared shop by hotpepper id", func() error {
		found := false
		for _, r := range s.shared {
			if r.HotPepperID != hotpepperID {
				continue
			}
			if !found || r.UpdatedAt.After(row.UpdatedAt) {
				row = r
				found = true
			}
		}
		if !found {
			return &storageErrors.NotFoundError{Key: hotpepperID}
		}
		return nil
	})
	if err != nil {
		return modelstorage.SharedShopRow{}, err
	}
	return row, nil
}

// RetrieveSharedByGroup returns the shops shared into a group, newest first.
func (s *Storage) RetrieveSharedByGroup(ctx context.Context, groupID string) ([]modelstorage.SharedShopRow, error) {
	var rows []modelstorage.SharedShopRow
	err := s.exec(ctx, "Retrieving shared shops by group", func() error {
		for _, r := range s.shared {
			if r.GroupID == groupID {
				rows = append(rows, r)
			}
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// RetrieveAllShared returns every shared shop, oldest first.
func (s *Storage) RetrieveAllShared(ctx context.Context) ([]modelstorage.SharedShopRow, error) {
	var rows []modelstorage.SharedShopRow
	err := s.exec(ctx, "Retrieving all shared shops", func() error {
		for _, r := range s.shared {
			rows = append(rows, r)
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.Before(rows[j].CreatedAt) })
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpsertPrivate inserts a bookmark or updates the row with the same (hotpepper_id, user_id).
func (s *Storage) UpsertPrivate(ctx context.Context, row modelstorage.PrivateShopRow) (modelstorage.PrivateShopRow, error) {
	var stored modelstorage.PrivateShopRow
	err := s.exec(ctx, "Upserting private shop", func() error {
		if row.HotPepperID == "" {
			return &storageErrors.ConstraintError{Code: pgerrcode.NotNullViolation, Constraint: "hotpepper_id"}
		}
		key := modelstorage.PrivateKey{HotPepperID: row.HotPepperID, UserID: row.UserID}
		now := s.now()
		existing, ok := s.private[key]
		if ok {
			existing.ShopRow = row.ShopRow
			existing.UpdatedAt = now
			stored = existing
		} else {
			row.ID = uuid.NewString()
			row.CreatedAt = now
			row.UpdatedAt = now
			stored = row
		}
		s.private[key] = stored
		return nil
	})
	if err != nil {
		return modelstorage.PrivateShopRow{}, err
	}
	return stored, nil
}

// RetrievePrivate returns the bookmark for a natural key.
func (s *Storage) RetrievePrivate(ctx context.Context, key modelstorage.PrivateKey) (modelstorage.PrivateShopRow, error) {
	var row modelstorage.PrivateShopRow
	err := s.exec(ctx, "Retrieving private shop", func() error {
		found, ok := s.private[key]
		if !ok {
			return &storageErrors.NotFoundError{Key: key.HotPepperID + "/" + key.UserID}
		}
		row = found
		return nil
	})
	if err != nil {
		return modelstorage.PrivateShopRow{}, err
	}
	return row, nil
}

// RetrievePrivateByUser returns a user's bookmarks, newest first.
func (s *Storage) RetrievePrivateByUser(ctx context.Context, userID string) ([]modelstorage.PrivateShopRow, error) {
	var rows []modelstorage.PrivateShopRow
	err := s.exec(ctx, "Retrieving private shops by user", func() error {
		for _, r := range s.private {
			if r.UserID == userID {
				rows = append(rows, r)
			}
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DumpGroup stores a new group.
func (s *Storage) DumpGroup(ctx context.Context, row modelstorage.GroupRow) (modelstorage.GroupRow, error) {
	err := s.exec(ctx, "Dumping group", func() error {
		if row.ID == "" {
			row.ID = uuid.NewString()
		}
		row.CreatedAt = s.now()
		s.groups[row.ID] = row
		return nil
	})
	if err != nil {
		return modelstorage.GroupRow{}, err
	}
	return row, nil
}

// RetrieveGroupsByUser returns the groups created by a user, oldest first.
func (s *Storage) RetrieveGroupsByUser(ctx context.Context, userID string) ([]modelstorage.GroupRow, error) {
	var rows []modelstorage.GroupRow
	err := s.exec(ctx, "Retrieving groups by user", func() error {
		for _, g := range s.groups {
			if g.CreatedBy == userID {
				rows = append(rows, g)
			}
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.Before(rows[j].CreatedAt) })
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DumpMemo stores a memo on an existing shared or private row.
func (s *Storage) DumpMemo(ctx context.Context, row modelstorage.MemoRow) (modelstorage.MemoRow, error) {
	err := s.exec(ctx, "Dumping memo", func() error {
		if !s.hasShopRow(row.ShopID) {
			return &storageErrors.NotFoundError{Key: row.ShopID}
		}
		row.ID = uuid.NewString()
		row.CreatedAt = s.now()
		s.memos[row.ID] = row
		return nil
	})
	if err != nil {
		return modelstorage.MemoRow{}, err
	}
	return row, nil
}

// RetrieveMemos returns the memos of a shop row, newest first.
func (s *Storage) RetrieveMemos(ctx context.Context, shopID string) ([]modelstorage.MemoRow, error) {
	var rows []modelstorage.MemoRow
	err := s.exec(ctx, "Retrieving memos", func() error {
		for _, m := range s.memos {
			if m.ShopID == shopID {
				rows = append(rows, m)
			}
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteMemo removes a memo owned by the user.
func (s *Storage) DeleteMemo(ctx context.Context, memoID, userID string) error {
	return s.exec(ctx, "Deleting memo", func() error {
		m, ok := s.memos[memoID]
		if !ok || m.UserID != userID {
			return &storageErrors.NotFoundError{Key: memoID}
		}
		delete(s.memos, memoID)
		return nil
	})
}

// PingDB is a mock for PSQL DB pinger.
func (s *Storage) PingDB(ctx context.Context) error {
	return nil
}

// CloseDB is a mock for PSQL DB closer.
func (s *Storage) CloseDB() error {
	return nil
}

// exec runs fn under the storage lock and returns early when ctx is done first. fn never
// runs once exec has reported a timeout.
func (s *Storage) exec(ctx context.Context, op string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		s.log.Debug(op, zap.Error(err))
		return &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	const (
		pending int32 = iota
		running
		abandoned
	)
	var state atomic.Int32
	done := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if ctx.Err() != nil || !state.CompareAndSwap(pending, running) {
			return
		}
		done <- fn()
	}()
	var err error
	select {
	case <-ctx.Done():
		if state.CompareAndSwap(pending, abandoned) {
			s.log.Debug(op, zap.Error(ctx.Err()))
			return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
		}
		err = <-done
	case err = <-done:
	}
	if err != nil {
		s.log.Debug(op, zap.Error(err))
	}
	return err
}

// hasShopRow reports whether a shared or private row has the given id. Callers hold s.mu.
func (s *Storage) hasShopRow(id string) bool {
	for _, row := range s.shared {
		if row.ID == id {
			return true
		}
	}
	for _, row := range s.private {
		if row.ID == id {
			return true
		}
	}
	return false
}

// now returns a strictly increasing timestamp so that ordering by time is stable.
func (s *Storage) now() time.Time {
	t := time.Now().UTC()
	if !t.After(s.last) {
		t = s.last.Add(time.Nanosecond)
	}
	s.last = t
	return t
}
