package points

import (
	"time"

	"github.com/google/uuid"
)

type Direction string

const (
	DirectionEarned Direction = "earned"
	DirectionSpent  Direction = "spent"
)

// Transaction is one entry in a user's EcoPoints history. CorrelationID
// carries the collection or order the points relate to; empty means none.
type Transaction struct {
	ID            uuid.UUID `json:"id"`
	Direction     Direction `json:"direction"`
	Amount        int64     `json:"amount"`
	Description   string    `json:"description"`
	CorrelationID string    `json:"correlation_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
