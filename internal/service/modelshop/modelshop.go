// Package modelshop provides locally used types and their structure for shop handling between modules.
package modelshop

import (
	"fmt"
	"time"
)

// Query defines search parameters accepted by the gourmet search API.
type Query struct {
	Keyword   string
	Genre     string
	SmallArea string
	ID        string
}

// RawShop is a shop record as returned by the gourmet search API or rebuilt from a persisted row.
type RawShop struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	StationName string     `json:"station_name"`
	ImageURL    string     `json:"image_url,omitempty"`
	Photo       Photo      `json:"photo"`
	LogoImage   string     `json:"logo_image"`
	Genre       LabelField `json:"genre"`
	Budget      LabelField `json:"budget"`
	Lunch       LabelField `json:"lunch"`
	MiddleArea  LabelField `json:"middle_area"`
	URLs        URLs       `json:"urls"`
	Lat         Coordinate `json:"lat"`
	Lng         Coordinate `json:"lng"`
}

// Photo holds photo URL variants.
type Photo struct {
	PC     PhotoSet `json:"pc"`
	Mobile PhotoSet `json:"mobile"`
}

// PhotoSet holds sized photo URLs.
type PhotoSet struct {
	L string `json:"l,omitempty"`
	M string `json:"m,omitempty"`
	S string `json:"s,omitempty"`
}

// URLs holds shop page links.
type URLs struct {
	PC string `json:"pc,omitempty"`
}

// Shop is the canonical, display-ready shop.
type Shop struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Station       string   `json:"station"`
	ImageURL      string   `json:"image_url"`
	Genre         string   `json:"genre"`
	GenreCode     string   `json:"genre_code,omitempty"`
	Budget        string   `json:"budget"`
	BudgetCode    string   `json:"budget_code,omitempty"`
	BudgetAverage string   `json:"budget_average,omitempty"`
	LunchAverage  string   `json:"lunch_average,omitempty"`
	MiddleArea    string   `json:"middle_area,omitempty"`
	ShopURL       string   `json:"shop_url,omitempty"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

// Raw converts a canonical shop back to the raw shape.
func (s Shop) Raw() RawShop {
	raw := RawShop{
		ID:          s.ID,
		Name:        s.Name,
		Address:     s.Address,
		StationName: s.Station,
		ImageURL:    s.ImageURL,
		URLs:        URLs{PC: s.ShopURL},
		Lat:         CoordinateOf(s.Latitude),
		Lng:         CoordinateOf(s.Longitude),
	}
	if s.GenreCode != "" {
		raw.Genre = Structured(s.Genre, s.GenreCode)
	} else {
		raw.Genre = Flat(s.Genre)
	}
	if s.BudgetCode != "" || s.BudgetAverage != "" {
		raw.Budget = Structured(s.Budget, s.BudgetCode)
		raw.Budget.Average = s.BudgetAverage
	} else {
		raw.Budget = Flat(s.Budget)
	}
	if s.LunchAverage != "" {
		raw.Lunch = LabelField{Average: s.LunchAverage, Structured: true, Present: true}
	}
	if s.MiddleArea != "" {
		raw.MiddleArea = Flat(s.MiddleArea)
	}
	return raw
}

// ViewState is the lifecycle of a shop detail view.
type ViewState int

const (
	StateIdle ViewState = iota
	StateLoading
	StateLoaded
	StateNotFound
	StateError
)

func (s ViewState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateNotFound:
		return "not_found"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by name.
func (s ViewState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name.
func (s *ViewState) UnmarshalText(b []byte) error {
	for _, st := range []ViewState{StateIdle, StateLoading, StateLoaded, StateNotFound, StateError} {
		if st.String() == string(b) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown view state %q", string(b))
}

// Source tells where a resolved shop came from.
type Source string

const (
	SourceStore   Source = "store"
	SourceCache   Source = "cache"
	SourceGateway Source = "gateway"
)

// Detail is the outcome of resolving one external identifier.
type Detail struct {
	State  ViewState `json:"state"`
	Shop   *Shop     `json:"shop,omitempty"`
	Source Source    `json:"source,omitempty"`
	RowID  string    `json:"row_id,omitempty"`
	// Persisted is set when the resolved shop was written to the store during this call.
	Persisted bool `json:"persisted,omitempty"`
}

// SharedShop is a shop shared into a group.
type SharedShop struct {
	RowID     string    `json:"id"`
	GroupID   string    `json:"group_id"`
	UserID    string    `json:"user_id"`
	Shop      Shop      `json:"shop"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PrivateShop is a personal bookmark.
type PrivateShop struct {
	RowID     string    `json:"id"`
	UserID    string    `json:"user_id"`
	Shop      Shop      `json:"shop"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Group is a named collection of shared shops.
type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// Memo is a note attached to a persisted shop row.
type Memo struct {
	ID        string    `json:"id"`
	ShopID    string    `json:"shop_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
