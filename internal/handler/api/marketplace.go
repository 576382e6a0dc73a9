package api

import (
	"net/http"

	"ecocollect/internal/handler/httperr"
	"ecocollect/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MarketplaceHandler struct {
	q queries.MarketplaceQueries
}

func NewMarketplaceHandler(q queries.MarketplaceQueries) *MarketplaceHandler {
	return &MarketplaceHandler{q: q}
}

// @Summary List devices
// @Description Refurbished devices for sale, annotated with cart membership
// @Tags marketplace
// @Produce json
// @Success 200 {array} queries.ListingView
// @Failure 502 {object} map[string]string
// @Router /marketplace/listings [get]
func (h *MarketplaceHandler) Listings(c *gin.Context) {
	views, err := h.q.Listings(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load listings")
		return
	}
	c.JSON(http.StatusOK, views)
}
