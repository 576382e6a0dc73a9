package response

import "ecocollect/internal/usecase/queries"

type TransactionResponse struct {
	Transaction *queries.TransactionView `json:"transaction"`
	Balance     int64                    `json:"balance"`
}

type AffordabilityResponse struct {
	Amount     int64 `json:"amount"`
	Affordable bool  `json:"affordable"`
}
