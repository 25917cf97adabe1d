package catalog

// Product is one storefront record. The catalog is read-only after load,
// so products are shared freely by value.
type Product struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	DiscountedPrice *float64 `json:"discountedPrice,omitempty"`
	Category        string   `json:"category,omitempty"`
	Image           string   `json:"image"`
	InStock         bool     `json:"inStock"`
	Colors          []string `json:"colors"`
	Description     *string  `json:"description,omitempty"`
	Rating          *float64 `json:"rating,omitempty"`
}

// Availability is one of the two stock states a filter can select.
type Availability string

const (
	AvailabilityInStock    Availability = "In Stock"
	AvailabilityOutOfStock Availability = "Out of Stock"
)

// FilterCriteria carries the active filters for one query. Price bounds are
// kept as raw strings: malformed or empty values fall back to 0 / +Inf
// instead of failing.
type FilterCriteria struct {
	Search       string
	Availability []Availability
	PriceFrom    string
	PriceTo      string
	Colors       []string
	MinRating    float64
}

type SortField string

const (
	SortByName   SortField = "Name"
	SortByPrice  SortField = "Price"
	SortByRating SortField = "Rating"
)

type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// SortKey selects the ordering of query results. The zero value means
// "keep input order".
type SortKey struct {
	Field     SortField
	Direction SortDirection
}

func (k SortKey) IsZero() bool {
	return k.Field == ""
}
