package commands

import (
	"context"
	"log/slog"

	"ecocollect/internal/domain/cart"
	"ecocollect/internal/infra"
	"ecocollect/internal/infra/backend"
	"ecocollect/internal/infra/snapshot"
	"ecocollect/internal/pkg/clock"
	"ecocollect/internal/pkg/errs"
	"ecocollect/internal/usecase/shared"
)

type Purchaser interface {
	CreatePurchase(ctx context.Context, token string, req backend.CreatePurchaseRequest) (*backend.PurchaseView, error)
}

type CheckoutInput struct {
	PaymentMethod   string
	ShippingAddress string
}

type CheckoutResult struct {
	PurchaseID  string
	TotalCents  int64
	PointsSpent int64
}

type CheckoutCommands interface {
	// Checkout submits the cart as a purchase, debits any point-priced
	// items from the ledger and clears the cart. The points check happens
	// before the backend call so a short balance never reaches the server.
	Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	backend Purchaser
	store   *cart.Store
	repo    snapshot.Repository
	session *shared.SessionState
	clock   clock.Clock
}

func NewCheckoutCommands(
	backendClient Purchaser,
	store *cart.Store,
	repo snapshot.Repository,
	session *shared.SessionState,
	clk clock.Clock,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		backend: backendClient,
		store:   store,
		repo:    repo,
		session: session,
		clock:   clk,
	}
}

func (c *checkoutCommandsImpl) Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error) {
	user, ok := c.session.User()
	if !ok {
		return nil, errs.ErrNotLoggedIn
	}
	tok, _ := c.session.Token()
	ledger, ok := c.session.Ledger()
	if !ok {
		return nil, errs.ErrNotLoggedIn
	}

	if c.store.ItemCount() == 0 {
		return nil, errs.ErrEmptyCart
	}

	totalCents := c.store.TotalCents()
	totalPoints := c.store.TotalPoints()
	if totalPoints > 0 && !ledger.CanAfford(totalPoints) {
		return nil, errs.ErrInsufficientPoints
	}

	req := backend.CreatePurchaseRequest{
		UserID:          user.ID,
		Items:           c.store.Items(),
		TotalCents:      totalCents,
		TotalPoints:     totalPoints,
		PaymentMethod:   input.PaymentMethod,
		ShippingAddress: input.ShippingAddress,
	}
	view, err := c.backend.CreatePurchase(ctx, tok, req)
	if err != nil {
		if infra.IsKind(err, infra.KindUnavailable) {
			return nil, errs.Mark(err, errs.ErrBackendUnavailable)
		}
		return nil, errs.Mark(err, errs.ErrBackendRejected)
	}

	if totalPoints > 0 {
		if _, ok := ledger.Spend(totalPoints, "Marketplace purchase", view.ID, c.clock.Now()); !ok {
			// Pre-checked above; only reachable on a concurrent spend.
			slog.Warn("point debit failed after purchase", "purchase_id", view.ID)
			return nil, errs.ErrInsufficientPoints
		}
		PersistLedger(ctx, c.repo, user.ID, ledger)
	}

	c.store.Clear()
	PersistCartStore(ctx, c.repo, c.store)

	slog.Info("checkout completed",
		"purchase_id", view.ID, "total_cents", totalCents, "total_points", totalPoints)

	return &CheckoutResult{
		PurchaseID:  view.ID,
		TotalCents:  totalCents,
		PointsSpent: totalPoints,
	}, nil
}
