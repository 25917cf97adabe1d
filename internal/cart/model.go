package cart

import (
	"sort"
	"strings"
)

// LineItem is one row in a cart. Name, Price and Image are snapshots taken
// at add time; they are not re-synced if the catalog changes later.
type LineItem struct {
	ProductID int     `json:"productId"`
	Variant   string  `json:"variant,omitempty"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// VariantSignature normalizes a color selection into the secondary cart key:
// lower-cased, sorted, comma-joined. An empty selection yields "".
func VariantSignature(colors []string) string {
	if len(colors) == 0 {
		return ""
	}

	normalized := make([]string, 0, len(colors))
	for _, c := range colors {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" {
			normalized = append(normalized, c)
		}
	}
	sort.Strings(normalized)

	return strings.Join(normalized, ",")
}
