package api

import (
	"net/http"

	"ecocollect/internal/domain/cart"
	reqdto "ecocollect/internal/handler/dto/request"
	resdto "ecocollect/internal/handler/dto/response"
	"ecocollect/internal/handler/httperr"
	"ecocollect/internal/usecase/commands"
	"ecocollect/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Description The current cart with recomputed totals
// @Tags cart
// @Produce json
// @Success 200 {object} queries.CartView
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	view, err := h.q.Get(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load cart")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Add to cart
// @Description Add a listing to the cart, or bump its quantity when already there
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddToCartRequest true "Listing to add"
// @Success 200 {object} resdto.CartMutationResponse
// @Failure 400 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) Add(c *gin.Context) {
	var req reqdto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	ev, err := h.cmds.Add(c.Request.Context(), req.ToDomain())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to add to cart")
		return
	}
	h.respondWithCart(c, ev)
}

// @Summary Remove from cart
// @Description Remove a product entirely, whatever its quantity
// @Tags cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.CartMutationResponse
// @Failure 404 {object} map[string]string
// @Router /cart/items/{id} [delete]
func (h *CartHandler) Remove(c *gin.Context) {
	ev, err := h.cmds.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to remove from cart")
		return
	}
	h.respondWithCart(c, ev)
}

// @Summary Set quantity
// @Description Set a cart line's quantity; zero or less removes the line
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body reqdto.SetQuantityRequest true "New quantity"
// @Success 200 {object} resdto.CartMutationResponse
// @Failure 400 {object} map[string]string
// @Router /cart/items/{id} [put]
func (h *CartHandler) SetQuantity(c *gin.Context) {
	var req reqdto.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	ev, err := h.cmds.SetQuantity(c.Request.Context(), c.Param("id"), *req.Quantity)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to update quantity")
		return
	}
	h.respondWithCart(c, ev)
}

// @Summary Clear cart
// @Description Remove every item from the cart
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartMutationResponse
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	ev, err := h.cmds.Clear(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to clear cart")
		return
	}
	h.respondWithCart(c, ev)
}

func (h *CartHandler) respondWithCart(c *gin.Context, ev cart.Event) {
	view, err := h.q.Get(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load cart")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartEvent(ev, view))
}
