//go:build unit

package builder

import (
	"fmt"

	"ecocollect/internal/domain/cart"
)

type ProductBuilder struct {
	ID                 string
	Name               string
	Description        string
	PriceCents         int64
	OriginalPriceCents int64
	Points             int64
	Rating             float64
	Reviews            int
	Seller             string
	Image              string
	Condition          string
	Warranty           string
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:                 "dev-001",
		Name:               "Refurbished Laptop",
		Description:        "14-inch refurbished laptop, grade A",
		PriceCents:         45000,
		OriginalPriceCents: 89900,
		Rating:             4.5,
		Reviews:            12,
		Seller:             "EcoTech Store",
		Image:              "https://example.com/laptop.jpg",
		Condition:          "Refurbished",
		Warranty:           "6 months",
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) WithID(id string) *ProductBuilder {
	b.ID = id
	return b
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.Name = name
	return b
}

func (b *ProductBuilder) WithPriceCents(cents int64) *ProductBuilder {
	b.PriceCents = cents
	return b
}

// AsPointsPriced turns the listing into a points-only reward item.
func (b *ProductBuilder) AsPointsPriced(pts int64) *ProductBuilder {
	b.PriceCents = 0
	b.OriginalPriceCents = 0
	b.Points = pts
	return b
}

func (b *ProductBuilder) BuildDomain() cart.Product {
	return cart.Product{
		ID:                 b.ID,
		Name:               b.Name,
		Description:        b.Description,
		PriceCents:         b.PriceCents,
		OriginalPriceCents: b.OriginalPriceCents,
		Points:             b.Points,
		Rating:             b.Rating,
		Reviews:            b.Reviews,
		Seller:             b.Seller,
		Image:              b.Image,
		Condition:          b.Condition,
		Warranty:           b.Warranty,
	}
}

// BuildMany returns n distinct products with sequential ids.
func (b *ProductBuilder) BuildMany(n int) []cart.Product {
	out := make([]cart.Product, n)
	for i := range out {
		p := b.BuildDomain()
		p.ID = fmt.Sprintf("%s-%d", b.ID, i)
		p.Name = fmt.Sprintf("%s #%d", b.Name, i)
		out[i] = p
	}
	return out
}
