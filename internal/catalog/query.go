package catalog

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Query applies the filter pipeline and sort to a product list and returns a
// new slice. The input is never mutated. Stages run in a fixed order:
// search, availability, price range, color, rating, sort. A stage whose
// criterion is empty passes everything through unchanged.
func Query(products []Product, criteria FilterCriteria, sortKey SortKey) []Product {
	filtered := append([]Product(nil), products...)

	filtered = applySearch(filtered, criteria.Search)
	filtered = applyAvailability(filtered, criteria.Availability)
	filtered = applyPriceRange(filtered, criteria.PriceFrom, criteria.PriceTo)
	filtered = applyColors(filtered, criteria.Colors)
	filtered = applyRating(filtered, criteria.MinRating)
	filtered = applySort(filtered, sortKey)

	return filtered
}

func applySearch(products []Product, search string) []Product {
	if search == "" {
		return products
	}

	term := strings.ToLower(search)
	out := products[:0]
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			out = append(out, p)
			continue
		}
		if p.Description != nil && strings.Contains(strings.ToLower(*p.Description), term) {
			out = append(out, p)
		}
	}
	return out
}

func applyAvailability(products []Product, availability []Availability) []Product {
	if len(availability) == 0 {
		return products
	}

	inStockSelected := false
	outOfStockSelected := false
	for _, a := range availability {
		switch a {
		case AvailabilityInStock:
			inStockSelected = true
		case AvailabilityOutOfStock:
			outOfStockSelected = true
		}
	}

	if inStockSelected && outOfStockSelected {
		return products
	}

	out := products[:0]
	for _, p := range products {
		switch {
		case inStockSelected && p.InStock:
			out = append(out, p)
		case outOfStockSelected && !p.InStock:
			out = append(out, p)
		}
	}
	return out
}

func applyPriceRange(products []Product, from, to string) []Product {
	fromPrice := parsePriceBound(from, 0)
	toPrice := parsePriceBound(to, math.Inf(1))

	out := products[:0]
	for _, p := range products {
		if p.Price >= fromPrice && p.Price <= toPrice {
			out = append(out, p)
		}
	}
	return out
}

// parsePriceBound is intentionally permissive: empty or malformed input
// falls back to the given default instead of erroring.
func parsePriceBound(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

func applyColors(products []Product, colors []string) []Product {
	if len(colors) == 0 {
		return products
	}

	wanted := make(map[string]struct{}, len(colors))
	for _, c := range colors {
		wanted[strings.ToLower(c)] = struct{}{}
	}

	out := products[:0]
	for _, p := range products {
		for _, c := range p.Colors {
			if _, ok := wanted[strings.ToLower(c)]; ok {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func applyRating(products []Product, minRating float64) []Product {
	if minRating <= 0 {
		return products
	}

	out := products[:0]
	for _, p := range products {
		if p.Rating != nil && *p.Rating >= minRating {
			out = append(out, p)
		}
	}
	return out
}

func applySort(products []Product, key SortKey) []Product {
	if key.IsZero() {
		return products
	}

	var cmp func(a, b Product) int
	switch key.Field {
	case SortByName:
		coll := collate.New(language.English)
		cmp = func(a, b Product) int { return coll.CompareString(a.Name, b.Name) }
	case SortByPrice:
		cmp = func(a, b Product) int { return compareFloats(a.Price, b.Price) }
	case SortByRating:
		cmp = func(a, b Product) int { return compareFloats(ratingOf(a), ratingOf(b)) }
	default:
		return products
	}

	// Descending reverses the ascending comparator rather than using a
	// separate one; sort.SliceStable keeps ties in pre-sort order either way.
	sort.SliceStable(products, func(i, j int) bool {
		if key.Direction == SortDesc {
			return cmp(products[i], products[j]) > 0
		}
		return cmp(products[i], products[j]) < 0
	})

	return products
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func ratingOf(p Product) float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

// ParseSortKey turns a "Field,Direction" token (e.g. "Price,ASC") into a
// SortKey. Unknown fields or directions yield the zero key, which keeps
// input order.
func ParseSortKey(s string) SortKey {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return SortKey{}
	}

	var field SortField
	switch strings.ToLower(strings.TrimSpace(parts[0])) {
	case "name", "title":
		field = SortByName
	case "price":
		field = SortByPrice
	case "rating":
		field = SortByRating
	default:
		return SortKey{}
	}

	dir := SortAsc
	if strings.EqualFold(strings.TrimSpace(parts[1]), "desc") {
		dir = SortDesc
	}

	return SortKey{Field: field, Direction: dir}
}
