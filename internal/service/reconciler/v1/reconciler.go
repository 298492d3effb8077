// Package reconciler provides functionality for resolving shops store-first and persisting
// shares, bookmarks, groups and memos.
package reconciler

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/cache"
	cacheInMemory "github.com/danilovkiri/dk_go_sharegourmet/internal/cache/inmemory"
	serviceErrors "github.com/danilovkiri/dk_go_sharegourmet/internal/service/errors"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/modelauth"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/modelshop"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/normalizer"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/reconciler"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/searcher"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/storage"
	storageErrors "github.com/danilovkiri/dk_go_sharegourmet/internal/storage/errors"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/storage/modelstorage"
)

// Check interface implementation explicitly
var (
	_ reconciler.Reconciler = (*Reconciler)(nil)
)

// Reconciler struct defines data structure handling and provides support for adding new implementations.
type Reconciler struct {
	storage  storage.ShopStorage
	searcher searcher.Searcher
	cache    cache.ShopCache
	inflight singleflight.Group
	log      *zap.Logger
}

// InitReconciler initializes a Reconciler object and sets its attributes. A nil cache is
// replaced with an unbounded in-memory one.
func InitReconciler(st storage.ShopStorage, s searcher.Searcher, c cache.ShopCache, log *zap.Logger) (*Reconciler, error) {
	if st == nil {
		return nil, &serviceErrors.ServiceFoundNilStorage{Msg: "nil storage was passed to service initializer"}
	}
	if s == nil {
		return nil, &serviceErrors.ServiceFoundNilSearcher{Msg: "nil searcher was passed to service initializer"}
	}
	if c == nil {
		c = cacheInMemory.InitCache(0)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Reconciler{
		storage:  st,
		searcher: s,
		cache:    c,
		log:      log,
	}, nil
}

// Resolve returns the shop for an external id, preferring the store over the cache and the
// cache over the search API. Concurrent gateway lookups for the same id share one request.
func (r *Reconciler) Resolve(ctx context.Context, auth modelauth.AuthContext, externalID string, opts reconciler.ResolveOptions) (modelshop.Detail, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return modelshop.Detail{State: modelshop.StateError}, &serviceErrors.ServiceIncorrectInput{Msg: "empty shop id"}
	}
	if opts.Private && !auth.Authenticated() {
		return modelshop.Detail{State: modelshop.StateError}, &serviceErrors.AuthenticationRequiredError{Op: "resolve private"}
	}

	shop, rowID, err := r.fromStore(ctx, auth, externalID, opts)
	switch {
	case err == nil:
		return modelshop.Detail{State: modelshop.StateLoaded, Shop: &shop, Source: modelshop.SourceStore, RowID: rowID}, nil
	case !isNotFound(err):
		r.log.Warn("Store lookup failed, falling back to search API", zap.String("id", externalID), zap.Error(err))
	}

	detail := modelshop.Detail{State: modelshop.StateLoaded, Source: modelshop.SourceCache}
	shop, ok := r.cache.Get(ctx, externalID)
	if !ok {
		detail.Source = modelshop.SourceGateway
		shop, err = r.lookup(ctx, externalID)
		if err != nil {
			return failed(externalID, err)
		}
	}
	detail.Shop = &shop

	if opts.Persist {
		detail.RowID, detail.Persisted = r.persist(ctx, auth, shop, opts)
	}
	return detail, nil
}

// ResolveBulk returns cached shops and fetches the rest from the search API. Ids the API
// cannot resolve are left out.
func (r *Reconciler) ResolveBulk(ctx context.Context, ids []string) map[string]modelshop.Shop {
	result := make(map[string]modelshop.Shop, len(ids))
	seen := make(map[string]struct{}, len(ids))
	var misses []string
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if shop, ok := r.cache.Get(ctx, id); ok {
			result[id] = shop
			continue
		}
		misses = append(misses, id)
	}
	if len(misses) == 0 {
		return result
	}
	for id, raw := range r.searcher.LookupBulk(ctx, misses) {
		shop := normalizer.Normalize(raw)
		r.cache.Put(ctx, id, shop)
		result[id] = shop
	}
	return result
}

// Search normalizes every record returned by the search API and caches it by id. A malformed
// response is returned as an empty list together with the error.
func (r *Reconciler) Search(ctx context.Context, q modelshop.Query) ([]modelshop.Shop, error) {
	raws, err := r.searcher.Search(ctx, q)
	var malformed *serviceErrors.UpstreamMalformedError
	if err != nil && !errors.As(err, &malformed) {
		return nil, err
	}
	shops := make([]modelshop.Shop, 0, len(raws))
	for _, raw := range raws {
		shop := normalizer.Normalize(raw)
		r.cache.Put(ctx, shop.ID, shop)
		shops = append(shops, shop)
	}
	return shops, err
}

// Share upserts the shop into a group on (external id, group).
func (r *Reconciler) Share(ctx context.Context, auth modelauth.AuthContext, shop modelshop.Shop, groupID string) (modelshop.SharedShop, error) {
	if !auth.Authenticated() {
		return modelshop.SharedShop{}, &serviceErrors.AuthenticationRequiredError{Op: "share"}
	}
	shop = normalizer.Normalize(shop.Raw())
	if shop.ID == "" {
		return modelshop.SharedShop{}, &serviceErrors.ServiceIncorrectInput{Msg: "empty shop id"}
	}
	if strings.TrimSpace(groupID) == "" {
		return modelshop.SharedShop{}, &serviceErrors.ServiceIncorrectInput{Msg: "empty group id"}
	}
	row, err := r.storage.UpsertShared(ctx, modelstorage.SharedShopRow{
		GroupID: groupID,
		UserID:  auth.UserID,
		ShopRow: normalizer.ToRow(shop),
	})
	if err != nil {
		return modelshop.SharedShop{}, &serviceErrors.PersistenceError{Op: "share", Err: err}
	}
	r.log.Info("Shop shared", zap.String("id", shop.ID), zap.String("group_id", groupID), zap.String("row_id", row.ID))
	return sharedFromRow(row), nil
}

// Save upserts the shop into the user's bookmarks on (external id, user).
func (r *Reconciler) Save(ctx context.Context, auth modelauth.AuthContext, shop modelshop.Shop) (modelshop.PrivateShop, error) {
	if !auth.Authenticated() {
		return modelshop.PrivateShop{}, &serviceErrors.AuthenticationRequiredError{Op: "save"}
	}
	shop = normalizer.Normalize(shop.Raw())
	if shop.ID == "" {
		return modelshop.PrivateShop{}, &serviceErrors.ServiceIncorrectInput{Msg: "empty shop id"}
	}
	row, err := r.storage.UpsertPrivate(ctx, modelstorage.PrivateShopRow{
		UserID:  auth.UserID,
		ShopRow: normalizer.ToRow(shop),
	})
	if err != nil {
		return modelshop.PrivateShop{}, &serviceErrors.PersistenceError{Op: "save", Err: err}
	}
	r.log.Info("Shop saved", zap.String("id", shop.ID), zap.String("row_id", row.ID))
	return privateFromRow(row), nil
}

// ListShared returns the shops of a group, newest first.
func (r *Reconciler) ListShared(ctx context.Context, groupID string) ([]modelshop.SharedShop, error) {
	if strings.TrimSpace(groupID) == "" {
		return nil, &serviceErrors.ServiceIncorrectInput{Msg: "empty group id"}
	}
	rows, err := r.storage.RetrieveSharedByGroup(ctx, groupID)
	if err != nil {
		return nil, &serviceErrors.PersistenceError{Op: "list shared", Err: err}
	}
	shops := make([]modelshop.SharedShop, 0, len(rows))
	for _, row := range rows {
		shops = append(shops, sharedFromRow(row))
	}
	return shops, nil
}

// ListPrivate returns the caller's bookmarks, newest first.
func (r *Reconciler) ListPrivate(ctx context.Context, auth modelauth.AuthContext) ([]modelshop.PrivateShop, error) {
	if !auth.Authenticated() {
		return nil, &serviceErrors.AuthenticationRequiredError{Op: "list private"}
	}
	rows, err := r.storage.RetrievePrivateByUser(ctx, auth.UserID)
	if err != nil {
		return nil, &serviceErrors.PersistenceError{Op: "list private", Err: err}
	}
	shops := make([]modelshop.PrivateShop, 0, len(rows))
	for _, row := range rows {
		shops = append(shops, privateFromRow(row))
	}
	return shops, nil
}

// CreateGroup stores a new group owned by the caller.
func (r *Reconciler) CreateGroup(ctx context.Context, auth modelauth.AuthContext, name string) (modelshop.Group, error) {
	if !auth.Authenticated() {
		return modelshop.Group{}, &serviceErrors.AuthenticationRequiredError{Op: "create group"}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return modelshop.Group{}, &serviceErrors.ServiceIncorrectInput{Msg: "empty group name"}
	}
	row, err := r.storage.DumpGroup(ctx, modelstorage.GroupRow{Name: name, CreatedBy: auth.UserID})
	if err != nil {
		return modelshop.Group{}, &serviceErrors.PersistenceError{Op: "create group", Err: err}
	}
	return groupFromRow(row), nil
}

// ListGroups returns the groups created by the caller.
func (r *Reconciler) ListGroups(ctx context.Context, auth modelauth.AuthContext) ([]modelshop.Group, error) {
	if !auth.Authenticated() {
		return nil, &serviceErrors.AuthenticationRequiredError{Op: "list groups"}
	}
	rows, err := r.storage.RetrieveGroupsByUser(ctx, auth.UserID)
	if err != nil {
		return nil, &serviceErrors.PersistenceError{Op: "list groups", Err: err}
	}
	groups := make([]modelshop.Group, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, groupFromRow(row))
	}
	return groups, nil
}

// AddMemo attaches a note to a persisted shop row.
func (r *Reconciler) AddMemo(ctx context.Context, auth modelauth.AuthContext, shopID, content string) (modelshop.Memo, error) {
	if !auth.Authenticated() {
		return modelshop.Memo{}, &serviceErrors.AuthenticationRequiredError{Op: "add memo"}
	}
	content = strings.TrimSpace(content)
	if shopID == "" || content == "" {
		return modelshop.Memo{}, &serviceErrors.ServiceIncorrectInput{Msg: "memo requires a shop id and content"}
	}
	row, err := r.storage.DumpMemo(ctx, modelstorage.MemoRow{ShopID: shopID, UserID: auth.UserID, Content: content})
	if isNotFound(err) {
		return modelshop.Memo{}, &serviceErrors.NotFoundError{ID: shopID}
	}
	if err != nil {
		return modelshop.Memo{}, &serviceErrors.PersistenceError{Op: "add memo", Err: err}
	}
	return memoFromRow(row), nil
}

// ListMemos returns the memos of a shop row, newest first.
func (r *Reconciler) ListMemos(ctx context.Context, shopID string) ([]modelshop.Memo, error) {
	rows, err := r.storage.RetrieveMemos(ctx, shopID)
	if err != nil {
		return nil, &serviceErrors.PersistenceError{Op: "list memos", Err: err}
	}
	memos := make([]modelshop.Memo, 0, len(rows))
	for _, row := range rows {
		memos = append(memos, memoFromRow(row))
	}
	return memos, nil
}

// DeleteMemo removes a memo written by the caller.
func (r *Reconciler) DeleteMemo(ctx context.Context, auth modelauth.AuthContext, memoID string) error {
	if !auth.Authenticated() {
		return &serviceErrors.AuthenticationRequiredError{Op: "delete memo"}
	}
	err := r.storage.DeleteMemo(ctx, memoID, auth.UserID)
	if isNotFound(err) {
		return &serviceErrors.NotFoundError{ID: memoID}
	}
	if err != nil {
		return &serviceErrors.PersistenceError{Op: "delete memo", Err: err}
	}
	return nil
}

// Backfill re-fetches every shared shop and stores its coordinates when both are finite.
// It returns the number of updated rows; single row failures are logged and skipped.
func (r *Reconciler) Backfill(ctx context.Context) (int, error) {
	rows, err := r.storage.RetrieveAllShared(ctx)
	if err != nil {
		return 0, &serviceErrors.PersistenceError{Op: "backfill", Err: err}
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.HotPepperID)
	}
	raws := r.searcher.LookupBulk(ctx, ids)
	updated := 0
	for _, row := range rows {
		raw, ok := raws[row.HotPepperID]
		if !ok {
			continue
		}
		shop := normalizer.Normalize(raw)
		if shop.Latitude == nil || shop.Longitude == nil {
			continue
		}
		if err := r.storage.UpdateCoordinates(ctx, row.ID, *shop.Latitude, *shop.Longitude); err != nil {
			r.log.Warn("Backfill could not update coordinates", zap.String("row_id", row.ID), zap.Error(err))
			continue
		}
		updated++
	}
	r.log.Info("Backfill finished", zap.Int("rows", len(rows)), zap.Int("updated", updated))
	return updated, nil
}

// PingDB checks the store connection.
func (r *Reconciler) PingDB(ctx context.Context) error {
	return r.storage.PingDB(ctx)
}

func (r *Reconciler) fromStore(ctx context.Context, auth modelauth.AuthContext, externalID string, opts reconciler.ResolveOptions) (modelshop.Shop, string, error) {
	switch {
	case opts.GroupID != "":
		row, err := r.storage.RetrieveShared(ctx, modelstorage.SharedKey{HotPepperID: externalID, GroupID: opts.GroupID})
		if err != nil {
			return modelshop.Shop{}, "", err
		}
		return normalizer.FromSharedRow(row), row.ID, nil
	case opts.Private:
		row, err := r.storage.RetrievePrivate(ctx, modelstorage.PrivateKey{HotPepperID: externalID, UserID: auth.UserID})
		if err != nil {
			return modelshop.Shop{}, "", err
		}
		return normalizer.FromPrivateRow(row), row.ID, nil
	default:
		row, err := r.storage.RetrieveSharedByHotPepperID(ctx, externalID)
		if err != nil {
			return modelshop.Shop{}, "", err
		}
		return normalizer.FromSharedRow(row), row.ID, nil
	}
}

// lookup fetches and normalizes one shop from the search API and caches it. The shared
// request is detached from the caller's cancellation so that other waiters still get the
// shop when the first caller goes away.
func (r *Reconciler) lookup(ctx context.Context, externalID string) (modelshop.Shop, error) {
	detached := context.WithoutCancel(ctx)
	ch := r.inflight.DoChan(externalID, func() (interface{}, error) {
		raw, err := r.searcher.Lookup(detached, externalID)
		if err != nil {
			return modelshop.Shop{}, err
		}
		shop := normalizer.Normalize(raw)
		r.cache.Put(detached, externalID, shop)
		return shop, nil
	})
	select {
	case <-ctx.Done():
		return modelshop.Shop{}, &serviceErrors.UpstreamUnavailableError{Details: "lookup abandoned", Err: ctx.Err()}
	case res := <-ch:
		if res.Shared {
			r.log.Debug("Shared in-flight lookup", zap.String("id", externalID))
		}
		if res.Err != nil {
			return modelshop.Shop{}, res.Err
		}
		return res.Val.(modelshop.Shop), nil
	}
}

// persist writes a resolved shop according to opts. Failures leave the detail unpersisted.
func (r *Reconciler) persist(ctx context.Context, auth modelauth.AuthContext, shop modelshop.Shop, opts reconciler.ResolveOptions) (string, bool) {
	switch {
	case opts.GroupID != "":
		row, err := r.Share(ctx, auth, shop, opts.GroupID)
		if err != nil {
			r.log.Warn("Resolved shop was not shared", zap.String("id", shop.ID), zap.Error(err))
			return "", false
		}
		return row.RowID, true
	case opts.Private:
		row, err := r.Save(ctx, auth, shop)
		if err != nil {
			r.log.Warn("Resolved shop was not saved", zap.String("id", shop.ID), zap.Error(err))
			return "", false
		}
		return row.RowID, true
	default:
		return "", false
	}
}

// failed maps a gateway error to the detail state. An empty or malformed answer means the
// shop does not exist; any other failure is an error state the caller may retry.
func failed(externalID string, err error) (modelshop.Detail, error) {
	var (
		notFound  *serviceErrors.NotFoundError
		malformed *serviceErrors.UpstreamMalformedError
	)
	if errors.As(err, &notFound) || errors.As(err, &malformed) {
		return modelshop.Detail{State: modelshop.StateNotFound}, &serviceErrors.NotFoundError{ID: externalID}
	}
	return modelshop.Detail{State: modelshop.StateError}, err
}

func isNotFound(err error) bool {
	var notFound *storageErrors.NotFoundError
	return errors.As(err, &notFound)
}

func sharedFromRow(row modelstorage.SharedShopRow) modelshop.SharedShop {
	return modelshop.SharedShop{
		RowID:     row.ID,
		GroupID:   row.GroupID,
		UserID:    row.UserID,
		Shop:      normalizer.FromSharedRow(row),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func privateFromRow(row modelstorage.PrivateShopRow) modelshop.PrivateShop {
	return modelshop.PrivateShop{
		RowID:     row.ID,
		UserID:    row.UserID,
		Shop:      normalizer.FromPrivateRow(row),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func groupFromRow(row modelstorage.GroupRow) modelshop.Group {
	return modelshop.Group{ID: row.ID, Name: row.Name, CreatedBy: row.CreatedBy, CreatedAt: row.CreatedAt}
}

func memoFromRow(row modelstorage.MemoRow) modelshop.Memo {
	return modelshop.Memo{ID: row.ID, ShopID: row.ShopID, UserID: row.UserID, Content: row.Content, CreatedAt: row.CreatedAt}
}
