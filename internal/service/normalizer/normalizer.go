// Package normalizer turns raw gourmet search records and persisted rows into canonical shops.
//
// Every function here is total: missing or malformed optional fields resolve to a defined
// fallback instead of an error.
package normalizer

import (
	"math"
	"strconv"
	"strings"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/modelshop"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/storage/modelstorage"
)

const (
	PlaceholderImageURL = "https://images.unsplash.com/photo-1555992336-c47a0c5141a6?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80"
	UnknownGenre        = "unknown genre"
	UnknownBudget       = "unknown budget"
)

// Normalize maps a raw record to a canonical shop.
func Normalize(raw modelshop.RawShop) modelshop.Shop {
	return modelshop.Shop{
		ID:            strings.TrimSpace(raw.ID),
		Name:          raw.Name,
		Address:       raw.Address,
		Station:       raw.StationName,
		ImageURL:      ResolveImage(raw),
		Genre:         ResolveGenre(raw.Genre),
		GenreCode:     raw.Genre.Code,
		Budget:        ResolveBudget(raw.Budget),
		BudgetCode:    raw.Budget.Code,
		BudgetAverage: raw.Budget.Average,
		LunchAverage:  raw.Lunch.Average,
		MiddleArea:    ResolveLabel(raw.MiddleArea, ""),
		ShopURL:       raw.URLs.PC,
		Latitude:      ResolveCoordinate(raw.Lat),
		Longitude:     ResolveCoordinate(raw.Lng),
	}
}

// ResolveImage returns the first non-empty photo candidate or the placeholder.
func ResolveImage(raw modelshop.RawShop) string {
	candidates := []string{
		raw.ImageURL,
		raw.Photo.PC.L,
		raw.Photo.PC.M,
		raw.Photo.PC.S,
		raw.Photo.Mobile.L,
		raw.Photo.Mobile.S,
		raw.LogoImage,
	}
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			return c
		}
	}
	return PlaceholderImageURL
}

// ResolveGenre resolves a genre label.
func ResolveGenre(f modelshop.LabelField) string {
	return ResolveLabel(f, UnknownGenre)
}

// ResolveBudget resolves a budget label.
func ResolveBudget(f modelshop.LabelField) string {
	return ResolveLabel(f, UnknownBudget)
}

// ResolveLabel takes the name of a structured field or a flat label verbatim; empty or
// absent values resolve to unknown.
func ResolveLabel(f modelshop.LabelField, unknown string) string {
	if !f.Present || f.Name == "" {
		return unknown
	}
	return f.Name
}

// ResolveCoordinate parses a coordinate only when it is a finite number.
func ResolveCoordinate(c modelshop.Coordinate) *float64 {
	if !c.Present {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(c.Raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// ToRow copies the display fields of a canonical shop into a storage row.
func ToRow(shop modelshop.Shop) modelstorage.ShopRow {
	return modelstorage.ShopRow{
		HotPepperID:   shop.ID,
		Name:          shop.Name,
		Address:       shop.Address,
		Station:       shop.Station,
		ImageURL:      shop.ImageURL,
		ShopURL:       shop.ShopURL,
		Genre:         shop.Genre,
		GenreCode:     shop.GenreCode,
		Budget:        shop.Budget,
		BudgetCode:    shop.BudgetCode,
		BudgetAverage: shop.BudgetAverage,
		LunchAverage:  shop.LunchAverage,
		MiddleArea:    shop.MiddleArea,
		Latitude:      shop.Latitude,
		Longitude:     shop.Longitude,
	}
}

// FromRow maps a persisted row back to a canonical shop, applying the usual fallbacks to
// rows written before a field was populated.
func FromRow(row modelstorage.ShopRow) modelshop.Shop {
	return Normalize(modelshop.Shop{
		ID:            row.HotPepperID,
		Name:          row.Name,
		Address:       row.Address,
		Station:       row.Station,
		ImageURL:      row.ImageURL,
		Genre:         row.Genre,
		GenreCode:     row.GenreCode,
		Budget:        row.Budget,
		BudgetCode:    row.BudgetCode,
		BudgetAverage: row.BudgetAverage,
		LunchAverage:  row.LunchAverage,
		MiddleArea:    row.MiddleArea,
		ShopURL:       row.ShopURL,
		Latitude:      finite(row.Latitude),
		Longitude:     finite(row.Longitude),
	}.Raw())
}

func finite(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	return v
}

// FromSharedRow maps a group-shared row to a canonical shop.
func FromSharedRow(row modelstorage.SharedShopRow) modelshop.Shop {
	return FromRow(row.ShopRow)
}

// FromPrivateRow maps a bookmark row to a canonical shop.
func FromPrivateRow(row modelstorage.PrivateShopRow) modelshop.Shop {
	return FromRow(row.ShopRow)
}
