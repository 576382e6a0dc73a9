package queries

import "time"

// Read models (DTO for read side)

type CartItemView struct {
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
	Quantity           int     `json:"quantity"`
}

type CartView struct {
	Items       []CartItemView `json:"items"`
	TotalCents  int64          `json:"total_cents"`
	TotalPoints int64          `json:"total_points"`
	ItemCount   int            `json:"item_count"`
}

type TransactionView struct {
	ID            string    `json:"id"`
	Direction     string    `json:"direction"`
	Amount        int64     `json:"amount"`
	Description   string    `json:"description"`
	CorrelationID string    `json:"correlation_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type BalanceView struct {
	Balance     int64 `json:"balance"`
	TotalEarned int64 `json:"total_earned"`
	TotalSpent  int64 `json:"total_spent"`
}

type ListingView struct {
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
	InCart             bool    `json:"in_cart"`
	CartQuantity       int     `json:"cart_quantity"`
}

type CollectionItemView struct {
	Type            string `json:"type"`
	Brand           string `json:"brand,omitempty"`
	Model           string `json:"model,omitempty"`
	Condition       string `json:"condition"`
	Quantity        int    `json:"quantity"`
	EstimatedPoints int64  `json:"estimated_points"`
}

type CollectionListItem struct {
	ID              string               `json:"id"`
	Status          string               `json:"status"`
	Items           []CollectionItemView `json:"items"`
	Address         string               `json:"address"`
	PreferredDate   string               `json:"preferred_date"`
	PreferredTime   string               `json:"preferred_time"`
	EstimatedPoints int64                `json:"estimated_points"`
	PointsCredited  bool                 `json:"points_credited"`
	CreatedAt       time.Time            `json:"created_at"`
}

type SessionView struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}
