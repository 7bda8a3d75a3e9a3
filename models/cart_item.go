package models

// CartItem lives in the cart store, not in MySQL. A product appears at most
// once per cart; there is no quantity field.
type CartItem struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
}
