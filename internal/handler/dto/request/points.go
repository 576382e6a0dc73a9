package request

type EarnPointsRequest struct {
	Amount        int64  `json:"amount" binding:"required,min=1"`
	Description   string `json:"description" binding:"required,max=200"`
	CorrelationID string `json:"correlation_id" binding:"omitempty,max=100"`
}

type SpendPointsRequest struct {
	Amount        int64  `json:"amount" binding:"required,min=1"`
	Description   string `json:"description" binding:"required,max=200"`
	CorrelationID string `json:"correlation_id" binding:"omitempty,max=100"`
}
