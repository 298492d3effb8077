// Package shopservice declares the ShopService GRPC messages, service descriptor and client.
// Messages travel as JSON through the codec package.
package shopservice

import "github.com/danilovkiri/dk_go_sharegourmet/internal/service/modelshop"

// SearchRequest carries search filters; ID takes precedence, IDs requests a bulk lookup.
type SearchRequest struct {
	Keyword   string   `json:"keyword,omitempty"`
	Genre     string   `json:"genre,omitempty"`
	SmallArea string   `json:"small_area,omitempty"`
	ID        string   `json:"id,omitempty"`
	IDs       []string `json:"ids,omitempty"`
}

// SearchResponse carries either a result list or, for bulk lookups, shops by id.
type SearchResponse struct {
	Shops []modelshop.Shop          `json:"shops,omitempty"`
	ByID  map[string]modelshop.Shop `json:"by_id,omitempty"`
}

// ResolveRequest identifies one shop and where to look it up.
type ResolveRequest struct {
	ID      string `json:"id"`
	GroupID string `json:"group_id,omitempty"`
	Private bool   `json:"private,omitempty"`
	Persist bool   `json:"persist,omitempty"`
}

// ResolveResponse carries the resolved detail.
type ResolveResponse struct {
	Detail modelshop.Detail `json:"detail"`
}

// ShareRequest shares a shop into a group.
type ShareRequest struct {
	GroupID string         `json:"group_id"`
	Shop    modelshop.Shop `json:"shop"`
}

// ShareResponse carries the upserted row.
type ShareResponse struct {
	Shared modelshop.SharedShop `json:"shared"`
}

// SaveRequest bookmarks a shop for the caller.
type SaveRequest struct {
	Shop modelshop.Shop `json:"shop"`
}

// SaveResponse carries the upserted row.
type SaveResponse struct {
	Saved modelshop.PrivateShop `json:"saved"`
}

// PingDBRequest is empty.
type PingDBRequest struct{}

// PingDBResponse is empty.
type PingDBResponse struct{}

// GetUptimeRequest is empty.
type GetUptimeRequest struct{}

// GetUptimeResponse carries seconds since server start.
type GetUptimeResponse struct {
	Uptime int64 `json:"uptime"`
}
