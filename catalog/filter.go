// Package catalog implements the storefront's catalogue view: pure
// filtering and sorting of product lists, plus the demonstration seed set
// the API falls back to when the store is empty.
package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/SOf1AN3/myks-sports-bolt/models"
)

// SortKey selects the comparator applied after filtering.
type SortKey string

const (
	SortNameAsc   SortKey = "name"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNewest    SortKey = "newest"
)

// FilterSelection is one snapshot of the catalogue controls. Dimensions
// combine conjunctively; values within a dimension disjunctively. Nil price
// bounds mean "no bound".
type FilterSelection struct {
	Search     string
	Sort       SortKey
	Categories []string
	Sizes      []string
	Colors     []string
	MinPrice   *float64
	MaxPrice   *float64
}

// Active reports whether any filter dimension is constrained, so callers
// can tell an empty result apart from "no filters applied yet".
func (f FilterSelection) Active() bool {
	return f.Search != "" ||
		len(f.Categories) > 0 ||
		len(f.Sizes) > 0 ||
		len(f.Colors) > 0 ||
		f.MinPrice != nil ||
		f.MaxPrice != nil
}

// Product names are French; the catalogue sorts them accordingly.
var nameCollator = collate.New(language.French, collate.Loose)

// Apply derives the visible product list for a selection. The input is
// never mutated; the result is always non-nil, and empty when nothing
// matches. Sorting is stable, so ties keep their filtered order.
func Apply(products []models.Product, sel FilterSelection) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matches(p, sel) {
			filtered = append(filtered, p)
		}
	}

	switch sel.Sort {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case SortNewest:
		// New arrivals first; no ordering promise within either group.
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].IsNew && !filtered[j].IsNew
		})
	case SortNameAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return nameCollator.CompareString(filtered[i].Name, filtered[j].Name) < 0
		})
	}

	return filtered
}

func matches(p models.Product, sel FilterSelection) bool {
	if sel.Search != "" {
		q := strings.ToLower(sel.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) {
			return false
		}
	}

	if len(sel.Categories) > 0 && !containsString(sel.Categories, p.Category) {
		return false
	}

	if len(sel.Sizes) > 0 && !intersects(p.Sizes, sel.Sizes) {
		return false
	}

	if len(sel.Colors) > 0 && !intersects(p.Colors, sel.Colors) {
		return false
	}

	if sel.MinPrice != nil && p.Price < *sel.MinPrice {
		return false
	}
	if sel.MaxPrice != nil && p.Price > *sel.MaxPrice {
		return false
	}

	return true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func intersects(have models.StringList, want []string) bool {
	for _, w := range want {
		if have.Contains(w) {
			return true
		}
	}
	return false
}
