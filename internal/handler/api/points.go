package api

import (
	"net/http"
	"strconv"

	reqdto "ecocollect/internal/handler/dto/request"
	resdto "ecocollect/internal/handler/dto/response"
	"ecocollect/internal/handler/httperr"
	"ecocollect/internal/usecase/commands"
	"ecocollect/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PointsHandler struct {
	cmds commands.PointsCommands
	q    queries.PointsQueries
}

func NewPointsHandler(cmds commands.PointsCommands, q queries.PointsQueries) *PointsHandler {
	return &PointsHandler{cmds: cmds, q: q}
}

// @Summary Point balance
// @Description Current balance plus lifetime earned and spent totals
// @Tags points
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.BalanceView
// @Failure 401 {object} map[string]string
// @Router /points/balance [get]
func (h *PointsHandler) Balance(c *gin.Context) {
	view, err := h.q.Balance(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load balance")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Transaction history
// @Description All point transactions, newest first
// @Tags points
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.TransactionView
// @Failure 401 {object} map[string]string
// @Router /points/history [get]
func (h *PointsHandler) History(c *gin.Context) {
	views, err := h.q.History(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load history")
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Affordability check
// @Description Whether the balance covers the given amount
// @Tags points
// @Security BearerAuth
// @Produce json
// @Param amount query int true "Amount in points"
// @Success 200 {object} resdto.AffordabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /points/affordability [get]
func (h *PointsHandler) CanAfford(c *gin.Context) {
	amount, err := strconv.ParseInt(c.Query("amount"), 10, 64)
	if err != nil || amount < 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid amount", nil)
		return
	}

	ok, err := h.q.CanAfford(c.Request.Context(), amount)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to check affordability")
		return
	}
	c.JSON(http.StatusOK, resdto.AffordabilityResponse{Amount: amount, Affordable: ok})
}

// @Summary Earn points
// @Description Credit points to the ledger
// @Tags points
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.EarnPointsRequest true "Credit request"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /points/earn [post]
func (h *PointsHandler) Earn(c *gin.Context) {
	var req reqdto.EarnPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	txn, err := h.cmds.Earn(c.Request.Context(), req.Amount, req.Description, req.CorrelationID)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to earn points")
		return
	}
	h.respondWithTransaction(c, txn.ID.String())
}

// @Summary Spend points
// @Description Debit points from the ledger; fails when the balance is short
// @Tags points
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SpendPointsRequest true "Debit request"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /points/spend [post]
func (h *PointsHandler) Spend(c *gin.Context) {
	var req reqdto.SpendPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	txn, err := h.cmds.Spend(c.Request.Context(), req.Amount, req.Description, req.CorrelationID)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to spend points")
		return
	}
	h.respondWithTransaction(c, txn.ID.String())
}

func (h *PointsHandler) respondWithTransaction(c *gin.Context, txnID string) {
	views, err := h.q.History(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load transaction")
		return
	}
	balance, err := h.q.Balance(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load balance")
		return
	}
	for i := range views {
		if views[i].ID == txnID {
			c.JSON(http.StatusOK, resdto.TransactionResponse{Transaction: &views[i], Balance: balance.Balance})
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Transaction not found after write", nil)
}
