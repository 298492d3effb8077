// Package inpsql provides functionality for keeping shops, groups and memos in a PostgreSQL database.
package inpsql

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/storage"
	storageErrors "github.com/danilovkiri/dk_go_sharegourmet/internal/storage/errors"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/storage/modelstorage"
)

// Check interface implementation explicitly
var (
	_ storage.ShopStorage = (*Storage)(nil)
)

const shopColumns = `name, address, station, image_url, shop_url, genre, genre_code, budget, budget_code,
	budget_average, lunch_average, middle_area, latitude, longitude`

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	DB  *pgxpool.Pool
	log *zap.Logger
}

// InitStorage connects to the database, creates tables if absent and starts a listener closing
// the pool once ctx is cancelled.
func InitStorage(ctx context.Context, wg *sync.WaitGroup, dsn string, log *zap.Logger) (*Storage, error) {
	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}
	st := Storage{
		DB:  pool,
		log: log,
	}
	if err := st.createTables(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	go func() {
		defer wg.Done()
		<-ctx.Done()
		st.DB.Close()
		log.Info("PSQL DB connection closed successfully")
	}()
	return &st, nil
}

// UpsertShared inserts a shared shop or updates the display fields of the row with the same
// (hotpepper_id, group_id).
func (s *Storage) UpsertShared(ctx context.Context, row modelstorage.SharedShopRow) (modelstorage.SharedShopRow, error) {
	query := `INSERT INTO shared_shops (id, hotpepper_id, group_id, user_id, ` + shopColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (hotpepper_id, group_id) DO UPDATE SET ` + updateSet + `
		RETURNING id, user_id, created_at, updated_at`
	r := row.ShopRow
	err := s.DB.QueryRow(ctx, query, uuid.NewString(), r.HotPepperID, row.GroupID, row.UserID,
		r.Name, r.Address, r.Station, r.ImageURL, r.ShopURL, r.Genre, r.GenreCode, r.Budget, r.BudgetCode,
		r.BudgetAverage, r.LunchAverage, r.MiddleArea, r.Latitude, r.Longitude,
	).Scan(&row.ID, &row.UserID, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return modelstorage.SharedShopRow{}, s.classify(ctx, "Upserting shared shop", err)
	}
	s.log.Debug("Upserting shared shop", zap.String("id", row.ID), zap.String("hotpepper_id", r.HotPepperID))
	return row, nil
}

// UpdateCoordinates sets coordinates of a shared shop by its row id.
func (s *Storage) UpdateCoordinates(ctx context.Context, id string, lat, lng float64) error {
	query := "UPDATE shared_shops SET latitude = $2, longitude = $3, updated_at = now() WHERE id = $1"
	tag, err := s.DB.Exec(ctx, query, id, lat, lng)
	if err != nil {
		return s.classify(ctx, "Updating coordinates", err)
	}
	if tag.RowsAffected() == 0 {
		return &storageErrors.NotFoundError{Key: id}
	}
	return nil
}

// RetrieveShared returns the shared shop for a natural key.
func (s *Storage) RetrieveShared(ctx context.Context, key modelstorage.SharedKey) (modelstorage.SharedShopRow, error) {
	query := sharedSelect + " WHERE hotpepper_id = $1 AND group_id = $2"
	row, err := scanShared(s.DB.QueryRow(ctx, query, key.HotPepperID, key.GroupID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return row, &storageErrors.NotFoundError{Key: key.HotPepperID + "/" + key.GroupID, Err: err}
		}
		return row, s.classify(ctx, "Retrieving shared shop", err)
	}
	return row, nil
}

// RetrieveSharedByHotPepperID returns the most recently updated shared row for an external id.
func (s *Storage) RetrieveSharedByHotPepperID(ctx context.Context, hotpepperID string) (modelstorage.SharedShopRow, error) {
	query := sharedSelect + " WHERE hotpepper_id = $1 ORDER BY updated_at DESC LIMIT 1"
	row, err := scanShared(s.DB.QueryRow(ctx, query, hotpepperID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return row, &storageErrors.NotFoundError{Key: hotpepperID, Err: err}
		}
		return row, s.classify(ctx, "Retrieving shared shop by hotpepper id", err)
	}
	return row, nil
}

// RetrieveSharedByGroup returns the shops shared into a group, newest first.
func (s *Storage) RetrieveSharedByGroup(ctx context.Context, groupID string) ([]modelstorage.SharedShopRow, error) {
	return s.querySharedRows(ctx, "Retrieving shared shops by group", sharedSelect+" WHERE group_id = $1 ORDER BY created_at DESC", groupID)
}

// RetrieveAllShared returns every shared shop, oldest first.
func (s *Storage) RetrieveAllShared(ctx context.Context) ([]modelstorage.SharedShopRow, error) {
	return s.querySharedRows(ctx, "Retrieving all shared shops", sharedSelect+" ORDER BY created_at ASC")
}

// UpsertPrivate inserts a bookmark or updates the row with the same (hotpepper_id, user_id).
func (s *Storage) UpsertPrivate(ctx context.Context, row modelstorage.PrivateShopRow) (modelstorage.PrivateShopRow, error) {
	query := `INSERT INTO private_shops (id, hotpepper_id, user_id, ` + shopColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (hotpepper_id, user_id) DO UPDATE SET ` + updateSet + `
		RETURNING id, created_at, updated_at`
	r := row.ShopRow
	err := s.DB.QueryRow(ctx, query, uuid.NewString(), r.HotPepperID, row.UserID,
		r.Name, r.Address, r.Station, r.ImageURL, r.ShopURL, r.Genre, r.GenreCode, r.Budget, r.BudgetCode,
		r.BudgetAverage, r.LunchAverage, r.MiddleArea, r.Latitude, r.Longitude,
	).Scan(&row.ID, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return modelstorage.PrivateShopRow{}, s.classify(ctx, "Upserting private shop", err)
	}
	s.log.Debug("Upserting private shop", zap.String("id", row.ID), zap.String("hotpepper_id", r.HotPepperID))
	return row, nil
}

// RetrievePrivate returns the bookmark for a natural key.
func (s *Storage) RetrievePrivate(ctx context.Context, key modelstorage.PrivateKey) (modelstorage.PrivateShopRow, error) {
	query := privateSelect + " WHERE hotpepper_id = $1 AND user_id = $2"
	row, err := scanPrivate(s.DB.QueryRow(ctx, query, key.HotPepperID, key.UserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return row, &storageErrors.NotFoundError{Key: key.HotPepperID + "/" + key.UserID, Err: err}
		}
		return row, s.classify(ctx, "Retrieving private shop", err)
	}
	return row, nil
}

// RetrievePrivateByUser returns a user's bookmarks, newest first.
func (s *Storage) RetrievePrivateByUser(ctx context.Context, userID string) ([]modelstorage.PrivateShopRow, error) {
	rows, err := s.DB.Query(ctx, privateSelect+" WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, s.classify(ctx, "Retrieving private shops by user", err)
	}
	defer rows.Close()
	var result []modelstorage.PrivateShopRow
	for rows.Next() {
		row, err := scanPrivate(rows)
		if err != nil {
			return nil, &storageErrors.ScanningPSQLError{Err: err}
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, s.classify(ctx, "Retrieving private shops by user", err)
	}
	return result, nil
}

// DumpGroup stores a new group.
func (s *Storage) DumpGroup(ctx context.Context, row modelstorage.GroupRow) (modelstorage.GroupRow, error) {
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	query := "INSERT INTO groups (id, name, created_by) VALUES ($1, $2, $3) RETURNING created_at"
	if err := s.DB.QueryRow(ctx, query, row.ID, row.Name, row.CreatedBy).Scan(&row.CreatedAt); err != nil {
		return modelstorage.GroupRow{}, s.classify(ctx, "Dumping group", err)
	}
	return row, nil
}

// RetrieveGroupsByUser returns the groups created by a user, oldest first.
func (s *Storage) RetrieveGroupsByUser(ctx context.Context, userID string) ([]modelstorage.GroupRow, error) {
	query := "SELECT id, name, created_by, created_at FROM groups WHERE created_by = $1 ORDER BY created_at ASC"
	rows, err := s.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, s.classify(ctx, "Retrieving groups by user", err)
	}
	defer rows.Close()
	var result []modelstorage.GroupRow
	for rows.Next() {
		var g modelstorage.GroupRow
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedBy, &g.CreatedAt); err != nil {
			return nil, &storageErrors.ScanningPSQLError{Err: err}
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, s.classify(ctx, "Retrieving groups by user", err)
	}
	return result, nil
}

// DumpMemo stores a memo on an existing shared or private row.
func (s *Storage) DumpMemo(ctx context.Context, row modelstorage.MemoRow) (modelstorage.MemoRow, error) {
	row.ID = uuid.NewString()
	query := `INSERT INTO memos (id, shop_id, user_id, content)
		SELECT $1, $2, $3, $4
		WHERE EXISTS (SELECT 1 FROM shared_shops WHERE id = $2) OR EXISTS (SELECT 1 FROM private_shops WHERE id = $2)
		RETURNING created_at`
	if err := s.DB.QueryRow(ctx, query, row.ID, row.ShopID, row.UserID, row.Content).Scan(&row.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return modelstorage.MemoRow{}, &storageErrors.NotFoundError{Key: row.ShopID, Err: err}
		}
		return modelstorage.MemoRow{}, s.classify(ctx, "Dumping memo", err)
	}
	return row, nil
}

// RetrieveMemos returns the memos of a shop row, newest first.
func (s *Storage) RetrieveMemos(ctx context.Context, shopID string) ([]modelstorage.MemoRow, error) {
	query := "SELECT id, shop_id, user_id, content, created_at FROM memos WHERE shop_id = $1 ORDER BY created_at DESC"
	rows, err := s.DB.Query(ctx, query, shopID)
	if err != nil {
		return nil, s.classify(ctx, "Retrieving memos", err)
	}
	defer rows.Close()
	var result []modelstorage.MemoRow
	for rows.Next() {
		var m modelstorage.MemoRow
		if err := rows.Scan(&m.ID, &m.ShopID, &m.UserID, &m.Content, &m.CreatedAt); err != nil {
			return nil, &storageErrors.ScanningPSQLError{Err: err}
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, s.classify(ctx, "Retrieving memos", err)
	}
	return result, nil
}

// DeleteMemo removes a memo owned by the user.
func (s *Storage) DeleteMemo(ctx context.Context, memoID, userID string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM memos WHERE id = $1 AND user_id = $2", memoID, userID)
	if err != nil {
		return s.classify(ctx, "Deleting memo", err)
	}
	if tag.RowsAffected() == 0 {
		return &storageErrors.NotFoundError{Key: memoID}
	}
	return nil
}

// PingDB checks the database connection.
func (s *Storage) PingDB(ctx context.Context) error {
	return s.DB.Ping(ctx)
}

// CloseDB closes the connection pool.
func (s *Storage) CloseDB() error {
	s.DB.Close()
	return nil
}

func (s *Storage) querySharedRows(ctx context.Context, op, query string, args ...interface{}) ([]modelstorage.SharedShopRow, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, s.classify(ctx, op, err)
	}
	defer rows.Close()
	var result []modelstorage.SharedShopRow
	for rows.Next() {
		row, err := scanShared(rows)
		if err != nil {
			return nil, &storageErrors.ScanningPSQLError{Err: err}
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, s.classify(ctx, op, err)
	}
	return result, nil
}

// classify maps driver errors to storage errors.
func (s *Storage) classify(ctx context.Context, op string, err error) error {
	s.log.Warn(op, zap.Error(err))
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code):
		return &storageErrors.ConstraintError{Code: pgErr.Code, Constraint: pgErr.ConstraintName, Err: err}
	case ctx.Err() != nil:
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	default:
		return &storageErrors.ExecutionPSQLError{Err: err}
	}
}

// createTables creates tables for PSQL DB storage if not exist.
func (s *Storage) createTables(ctx context.Context) error {
	_, err := s.DB.Exec(ctx, schema)
	return err
}
