package api

import (
	"net/http"
	"time"

	reqdto "ecocollect/internal/handler/dto/request"
	resdto "ecocollect/internal/handler/dto/response"
	"ecocollect/internal/handler/httperr"
	"ecocollect/internal/pkg/clock"
	"ecocollect/internal/pkg/config"
	"ecocollect/internal/pkg/cookie"
	"ecocollect/internal/usecase/commands"
	"ecocollect/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	cmds  commands.SessionCommands
	q     queries.SessionQueries
	clock clock.Clock
	cfg   config.SessionConfig
}

func NewSessionHandler(cmds commands.SessionCommands, q queries.SessionQueries, clk clock.Clock, cfg config.SessionConfig) *SessionHandler {
	return &SessionHandler{cmds: cmds, q: q, clock: clk, cfg: cfg}
}

// @Summary Log in
// @Description Authenticate against the EcoTech backend and start a local session
// @Tags session
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /session/login [post]
func (h *SessionHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	outcome, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Login failed")
		return
	}

	ttl := outcome.ExpiresAt.Sub(h.clock.Now())
	if ttl < time.Minute {
		ttl = time.Minute
	}
	cookie.SetSessionCookie(c, h.cfg, outcome.Token, ttl)

	c.JSON(http.StatusOK, resdto.FromUser(&outcome.User, outcome.ExpiresAt))
}

// @Summary Log out
// @Description Persist the point ledger and end the session
// @Tags session
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /session/logout [post]
func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.cmds.Logout(c.Request.Context()); err != nil {
		httperr.AbortWithDomainError(c, err, "Logout failed")
		return
	}
	cookie.ClearSessionCookie(c, h.cfg)
	c.Status(http.StatusNoContent)
}

// @Summary Current session
// @Description The logged-in user and session expiry
// @Tags session
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.SessionView
// @Failure 401 {object} map[string]string
// @Router /session/me [get]
func (h *SessionHandler) Me(c *gin.Context) {
	view, err := h.q.Current(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load session")
		return
	}
	c.JSON(http.StatusOK, view)
}
