package api

import (
	"net/http"

	reqdto "ecocollect/internal/handler/dto/request"
	resdto "ecocollect/internal/handler/dto/response"
	"ecocollect/internal/handler/httperr"
	"ecocollect/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Checkout
// @Description Submit the cart as a purchase, debit points and clear the cart
// @Tags checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Checkout(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Checkout failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}
