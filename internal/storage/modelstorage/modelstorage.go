// Package modelstorage provides locally used types and their structure for storage objects.
package modelstorage

import "time"

// ShopRow holds the display fields copied from a canonical shop at the time of persisting.
type ShopRow struct {
	HotPepperID   string   `json:"hotpepper_id" db:"hotpepper_id"`
	Name          string   `json:"name" db:"name"`
	Address       string   `json:"address" db:"address"`
	Station       string   `json:"station" db:"station"`
	ImageURL      string   `json:"image_url" db:"image_url"`
	ShopURL       string   `json:"shop_url" db:"shop_url"`
	Genre         string   `json:"genre" db:"genre"`
	GenreCode     string   `json:"genre_code" db:"genre_code"`
	Budget        string   `json:"budget" db:"budget"`
	BudgetCode    string   `json:"budget_code" db:"budget_code"`
	BudgetAverage string   `json:"budget_average" db:"budget_average"`
	LunchAverage  string   `json:"lunch_average" db:"lunch_average"`
	MiddleArea    string   `json:"middle_area" db:"middle_area"`
	Latitude      *float64 `json:"latitude" db:"latitude"`
	Longitude     *float64 `json:"longitude" db:"longitude"`
}

// SharedShopRow is a shop shared into a group, unique per (hotpepper_id, group_id).
type SharedShopRow struct {
	ID      string `json:"id" db:"id"`
	GroupID string `json:"group_id" db:"group_id"`
	UserID  string `json:"user_id" db:"user_id"`
	ShopRow
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// PrivateShopRow is a personal bookmark, unique per (hotpepper_id, user_id).
type PrivateShopRow struct {
	ID     string `json:"id" db:"id"`
	UserID string `json:"user_id" db:"user_id"`
	ShopRow
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// GroupRow is a named collection of shared shops.
type GroupRow struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedBy string    `json:"created_by" db:"created_by"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// MemoRow is a freeform note attached to a persisted shop row.
type MemoRow struct {
	ID        string    `json:"id" db:"id"`
	ShopID    string    `json:"shop_id" db:"shop_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SharedKey is the natural key of a shared shop.
type SharedKey struct {
	HotPepperID string
	GroupID     string
}

// PrivateKey is the natural key of a private shop.
type PrivateKey struct {
	HotPepperID string
	UserID      string
}
