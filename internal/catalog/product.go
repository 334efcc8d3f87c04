package catalog

// Product is an editable catalog record. ID is assigned by the Store on create
// and never changes afterwards.
type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

// Rating mirrors the nested rating object of the seed API.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Name returns the display name used for searching and sorting.
func (p Product) Name() string {
	return p.Title
}

func cloneProducts(items []Product) []Product {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Product, len(items))
	copy(dup, items)
	return dup
}
