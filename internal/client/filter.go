package client

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"propmart/internal/domain/entity"
)

// PropertyFilter narrows a listing collection. Set fields compose with
// AND; zero-valued string fields and nil numeric fields are ignored. The
// same filter serves two paths: Query() forwards it verbatim as query
// parameters for server-side listing, and Apply() re-filters a cached
// collection locally for instant narrowing.
type PropertyFilter struct {
	Search          string
	City            string
	PropertyType    string
	TransactionType entity.TransactionType
	Bedrooms        *int
	MinPrice        *float64
	MaxPrice        *float64
}

// Query renders the filter as opaque query parameters.
func (f PropertyFilter) Query() url.Values {
	values := url.Values{}
	if f.Search != "" {
		values.Set("search", f.Search)
	}
	if f.City != "" {
		values.Set("city", f.City)
	}
	if f.PropertyType != "" {
		values.Set("property_type", f.PropertyType)
	}
	if f.TransactionType != "" {
		values.Set("transaction_type", f.TransactionType.String())
	}
	if f.Bedrooms != nil {
		values.Set("bedrooms", strconv.Itoa(*f.Bedrooms))
	}
	if f.MinPrice != nil {
		values.Set("minPrice", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		values.Set("maxPrice", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}

	return values
}

// Match reports whether a single listing passes every set constraint.
func (f PropertyFilter) Match(p entity.Property) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) &&
			!strings.Contains(strings.ToLower(p.Location.City), needle) &&
			!strings.Contains(strings.ToLower(p.Location.Area), needle) {
			return false
		}
	}

	if f.City != "" && p.Location.City != f.City {
		return false
	}
	if f.PropertyType != "" && p.PropertyType != f.PropertyType {
		return false
	}
	if f.TransactionType != "" && p.TransactionType != f.TransactionType {
		return false
	}
	if f.Bedrooms != nil && p.Bedrooms != *f.Bedrooms {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}

	return true
}

// Apply returns the listings passing the filter, preserving order.
func (f PropertyFilter) Apply(properties []entity.Property) []entity.Property {
	filtered := make([]entity.Property, 0, len(properties))
	for _, p := range properties {
		if f.Match(p) {
			filtered = append(filtered, p)
		}
	}

	return filtered
}

// Cities returns the distinct cities present in the listings, in first
// appearance order. List views use it to build the city dropdown.
func Cities(properties []entity.Property) []string {
	return distinct(properties, func(p entity.Property) string { return p.Location.City })
}

// PropertyTypes returns the distinct property types present in the
// listings, in first appearance order.
func PropertyTypes(properties []entity.Property) []string {
	return distinct(properties, func(p entity.Property) string { return p.PropertyType })
}

func distinct(properties []entity.Property, key func(entity.Property) string) []string {
	var out []string
	for _, p := range properties {
		k := key(p)
		if k == "" || slices.Contains(out, k) {
			continue
		}
		out = append(out, k)
	}

	return out
}
