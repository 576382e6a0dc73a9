package cart

// Product is a marketplace listing as the remote backend describes it.
// Everything except the two prices is inert display metadata.
//
// By convention a listing is priced in money or in EcoPoints, not both.
// The backend does not enforce this and neither do we; totals simply sum
// whichever side is set.
type Product struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	PriceCents         int64   `json:"price_cents"`
	OriginalPriceCents int64   `json:"original_price_cents"`
	Points             int64   `json:"points"`
	Rating             float64 `json:"rating"`
	Reviews            int     `json:"reviews"`
	Seller             string  `json:"seller"`
	Image              string  `json:"image"`
	Condition          string  `json:"condition"`
	Warranty           string  `json:"warranty"`
}

// Item is a product the user intends to buy, with how many of it.
type Item struct {
	Product
	Quantity int `json:"quantity"`
}
