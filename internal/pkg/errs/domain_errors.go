package errs

import "errors"

// Sentinel errors shared across usecase layers
var (
	// Session errors
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionExpired     = errors.New("session expired")

	// Cart errors
	ErrProductNotInCart = errors.New("product not in cart")

	// Points errors
	ErrInsufficientPoints = errors.New("insufficient points")

	// Checkout errors
	ErrEmptyCart = errors.New("cart is empty")

	// Collaborator errors
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrBackendRejected    = errors.New("backend rejected request")
)
