package inpsql

import (
	"github.com/jackc/pgx/v4"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/storage/modelstorage"
)

const schema = `
CREATE TABLE IF NOT EXISTS groups (
	id text PRIMARY KEY,
	name text NOT NULL,
	created_by text NOT NULL,
	created_at timestamptz NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS shared_shops (
	id text PRIMARY KEY,
	hotpepper_id text NOT NULL CHECK (hotpepper_id <> ''),
	group_id text NOT NULL REFERENCES groups (id) ON DELETE CASCADE,
	user_id text NOT NULL,
	name text NOT NULL DEFAULT '',
	address text NOT NULL DEFAULT '',
	station text NOT NULL DEFAULT '',
	image_url text NOT NULL DEFAULT '',
	shop_url text NOT NULL DEFAULT '',
	genre text NOT NULL DEFAULT '',
	genre_code text NOT NULL DEFAULT '',
	budget text NOT NULL DEFAULT '',
	budget_code text NOT NULL DEFAULT '',
	budget_average text NOT NULL DEFAULT '',
	lunch_average text NOT NULL DEFAULT '',
	middle_area text NOT NULL DEFAULT '',
	latitude double precision,
	longitude double precision,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now(),
	UNIQUE (hotpepper_id, group_id)
);
CREATE TABLE IF NOT EXISTS private_shops (
	id text PRIMARY KEY,
	hotpepper_id text NOT NULL CHECK (hotpepper_id <> ''),
	user_id text NOT NULL,
	name text NOT NULL DEFAULT '',
	address text NOT NULL DEFAULT '',
	station text NOT NULL DEFAULT '',
	image_url text NOT NULL DEFAULT '',
	shop_url text NOT NULL DEFAULT '',
	genre text NOT NULL DEFAULT '',
	genre_code text NOT NULL DEFAULT '',
	budget text NOT NULL DEFAULT '',
	budget_code text NOT NULL DEFAULT '',
	budget_average text NOT NULL DEFAULT '',
	lunch_average text NOT NULL DEFAULT '',
	middle_area text NOT NULL DEFAULT '',
	latitude double precision,
	longitude double precision,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now(),
	UNIQUE (hotpepper_id, user_id)
);
ALTER TABLE shared_shops ADD COLUMN IF NOT EXISTS lunch_average text NOT NULL DEFAULT '';
ALTER TABLE private_shops ADD COLUMN IF NOT EXISTS lunch_average text NOT NULL DEFAULT '';
CREATE TABLE IF NOT EXISTS memos (
	id text PRIMARY KEY,
	shop_id text NOT NULL,
	user_id text NOT NULL,
	content text NOT NULL,
	created_at timestamptz NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS memos_shop_id_created_at_idx ON memos (shop_id, created_at DESC);
`

const updateSet = `name = EXCLUDED.name, address = EXCLUDED.address, station = EXCLUDED.station,
	image_url = EXCLUDED.image_url, shop_url = EXCLUDED.shop_url, genre = EXCLUDED.genre,
	genre_code = EXCLUDED.genre_code, budget = EXCLUDED.budget, budget_code = EXCLUDED.budget_code,
	budget_average = EXCLUDED.budget_average, lunch_average = EXCLUDED.lunch_average, middle_area = EXCLUDED.middle_area,
	latitude = EXCLUDED.latitude, longitude = EXCLUDED.longitude, updated_at = now()`

const sharedSelect = `SELECT id, hotpepper_id, group_id, user_id, ` + shopColumns + `, created_at, updated_at FROM shared_shops`

const privateSelect = `SELECT id, hotpepper_id, user_id, ` + shopColumns + `, created_at, updated_at FROM private_shops`

func scanShared(row pgx.Row) (modelstorage.SharedShopRow, error) {
	var r modelstorage.SharedShopRow
	err := row.Scan(&r.ID, &r.HotPepperID, &r.GroupID, &r.UserID,
		&r.Name, &r.Address, &r.Station, &r.ImageURL, &r.ShopURL, &r.Genre, &r.GenreCode, &r.Budget,
		&r.BudgetCode, &r.BudgetAverage, &r.LunchAverage, &r.MiddleArea, &r.Latitude, &r.Longitude,
		&r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func scanPrivate(row pgx.Row) (modelstorage.PrivateShopRow, error) {
	var r modelstorage.PrivateShopRow
	err := row.Scan(&r.ID, &r.HotPepperID, &r.UserID,
		&r.Name, &r.Address, &r.Station, &r.ImageURL, &r.ShopURL, &r.Genre, &r.GenreCode, &r.Budget,
		&r.BudgetCode, &r.BudgetAverage, &r.LunchAverage, &r.MiddleArea, &r.Latitude, &r.Longitude,
		&r.CreatedAt, &r.UpdatedAt)
	return r, err
}
