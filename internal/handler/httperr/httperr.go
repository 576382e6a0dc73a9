package httperr

import (
	"errors"
	"net/http"

	"ecocollect/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError translates usecase sentinel errors into HTTP status
// codes so handlers do not repeat the same switch.
func AbortWithDomainError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, errs.ErrNotLoggedIn):
		AbortWithError(c, http.StatusUnauthorized, err, "Not logged in", nil)
	case errors.Is(err, errs.ErrSessionExpired):
		AbortWithError(c, http.StatusUnauthorized, err, "Session expired", nil)
	case errors.Is(err, errs.ErrInvalidCredentials):
		AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
	case errors.Is(err, errs.ErrInsufficientPoints):
		AbortWithError(c, http.StatusConflict, err, "Not enough EcoPoints", nil)
	case errors.Is(err, errs.ErrEmptyCart):
		AbortWithError(c, http.StatusConflict, err, "Cart is empty", nil)
	case errors.Is(err, errs.ErrProductNotInCart):
		AbortWithError(c, http.StatusNotFound, err, "Product not in cart", nil)
	case errors.Is(err, errs.ErrBackendUnavailable):
		AbortWithError(c, http.StatusBadGateway, err, "EcoTech backend is unavailable", nil)
	case errors.Is(err, errs.ErrBackendRejected):
		AbortWithError(c, http.StatusBadRequest, err, "EcoTech backend rejected the request", nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, fallbackMsg, nil)
	}
}
