package api

import (
	"net/http"

	reqdto "ecocollect/internal/handler/dto/request"
	resdto "ecocollect/internal/handler/dto/response"
	"ecocollect/internal/handler/httperr"
	"ecocollect/internal/usecase/commands"
	"ecocollect/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CollectionHandler struct {
	cmds commands.CollectionCommands
	q    queries.CollectionQueries
}

func NewCollectionHandler(cmds commands.CollectionCommands, q queries.CollectionQueries) *CollectionHandler {
	return &CollectionHandler{cmds: cmds, q: q}
}

// @Summary Schedule a pickup
// @Description Submit an e-waste collection request with locally estimated points
// @Tags collections
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitCollectionRequest true "Collection request"
// @Success 201 {object} resdto.CollectionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /collections [post]
func (h *CollectionHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Submit(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to schedule collection")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCollectionView(view))
}

// @Summary List pickups
// @Description The user's collection requests with credit status
// @Tags collections
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.CollectionListItem
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /collections [get]
func (h *CollectionHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load collections")
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Sync completed pickups
// @Description Credit points for completed pickups not yet in the ledger
// @Tags collections
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.SyncCollectionsResponse
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /collections/sync [post]
func (h *CollectionHandler) Sync(c *gin.Context) {
	credited, err := h.cmds.SyncCompleted(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to sync collections")
		return
	}
	c.JSON(http.StatusOK, resdto.SyncCollectionsResponse{Credited: credited})
}
