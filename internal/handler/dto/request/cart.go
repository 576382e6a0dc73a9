package request

import (
	"ecocollect/internal/domain/cart"
)

// AddToCartRequest carries the full listing payload. The cart keeps a
// snapshot of the product as it looked when added, matching what the
// marketplace page showed.
type AddToCartRequest struct {
	ID                 string  `json:"id" binding:"required"`
	Name               string  `json:"name" binding:"required"`
	Description        string  `json:"description"`
	PriceCents         int64   `json:"price_cents" binding:"min=0"`
	OriginalPriceCents int64   `json:"original_price_cents" binding:"min=0"`
	Points             int64   `json:"points" binding:"min=0"`
	Rating             float64 `json:"rating"`
	Reviews            int     `json:"reviews"`
	Seller             string  `json:"seller"`
	Image              string  `json:"image"`
	Condition          string  `json:"condition"`
	Warranty           string  `json:"warranty"`
}

func (r *AddToCartRequest) ToDomain() cart.Product {
	return cart.Product{
		ID:                 r.ID,
		Name:               r.Name,
		Description:        r.Description,
		PriceCents:         r.PriceCents,
		OriginalPriceCents: r.OriginalPriceCents,
		Points:             r.Points,
		Rating:             r.Rating,
		Reviews:            r.Reviews,
		Seller:             r.Seller,
		Image:              r.Image,
		Condition:          r.Condition,
		Warranty:           r.Warranty,
	}
}

// Quantity is a pointer so zero survives binding; zero or less removes
// the item.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
