package domain

type (
	Product struct {
		ID            int
		Title         string
		Description   string
		Price         float64
		OriginalPrice float64
		Category      string
		Image         string
		Stock         int
		Rating        float64
		Reviews       []ProductReview
		Features      []string
		Colors        []string
	}

	ProductReview struct {
		UserID  int
		Comment string
		Rating  float64
	}

	Category struct {
		ID   int
		Name string
		Icon string
	}
)

// ProductPatch carries optional fields for a partial product update.
// Nil fields are left untouched.
type ProductPatch struct {
	Title         *string
	Description   *string
	Price         *float64
	OriginalPrice *float64
	Category      *string
	Image         *string
	Stock         *int
	Rating        *float64
	Reviews       []ProductReview
	Features      []string
	Colors        []string
}

type ProductFilter struct {
	Category  string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
}

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
)
