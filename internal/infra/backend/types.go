package backend

import (
	"time"

	"ecocollect/internal/domain/cart"
	"ecocollect/internal/domain/collection"
)

// User is the account record the backend returns on login.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Avatar  string `json:"avatar,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Points  int64  `json:"points,omitempty"`
}

type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CollectionView is a pickup request as the backend tracks it. Status moves
// through pending -> collected -> processing -> completed (or cancelled) on
// the admin side; we only read it.
type CollectionView struct {
	ID              string            `json:"id"`
	UserID          string            `json:"user_id"`
	Status          string            `json:"status"`
	Items           []collection.Item `json:"items"`
	Address         string            `json:"address"`
	PreferredDate   string            `json:"preferred_date"`
	PreferredTime   string            `json:"preferred_time"`
	Instructions    string            `json:"instructions,omitempty"`
	EstimatedPoints int64             `json:"estimated_points"`
	CreatedAt       time.Time         `json:"created_at"`
}

type CreateCollectionRequest struct {
	Items         []collection.Item `json:"items"`
	Address       string            `json:"address"`
	PreferredDate string            `json:"preferred_date"`
	PreferredTime string            `json:"preferred_time"`
	Instructions  string            `json:"instructions,omitempty"`
}

// CreatePurchaseRequest is the payload for POST /api/purchases. Money
// settlement happens on the backend.
type CreatePurchaseRequest struct {
	UserID          string      `json:"user_id"`
	Items           []cart.Item `json:"items"`
	TotalCents      int64       `json:"total_cents"`
	TotalPoints     int64       `json:"total_points"`
	PaymentMethod   string      `json:"payment_method"`
	ShippingAddress string      `json:"shipping_address"`
}

type PurchaseView struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
