package response

import "ecocollect/internal/usecase/commands"

type CheckoutResponse struct {
	PurchaseID  string `json:"purchase_id"`
	TotalCents  int64  `json:"total_cents"`
	PointsSpent int64  `json:"points_spent"`
	Notice      string `json:"notice"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		PurchaseID:  r.PurchaseID,
		TotalCents:  r.TotalCents,
		PointsSpent: r.PointsSpent,
		Notice:      "Order placed",
	}
}
