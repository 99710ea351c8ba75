package domain

type (
	// CartLine is the bare ledger record: at most one line per product.
	CartLine struct {
		ProductID int
		Quantity  int
	}

	// CartProduct is a cart line enriched with the current catalog
	// snapshot of the product. Lines whose product no longer resolves
	// are dropped during enrichment.
	CartProduct struct {
		ProductID   int
		Title       string
		Description string
		Price       float64
		Category    string
		Image       string
		Quantity    int
	}
)
