//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"ecocollect/internal/domain/cart"
	"ecocollect/internal/infra"
	"ecocollect/internal/infra/backend"
	"ecocollect/internal/infra/snapshot"
	"ecocollect/internal/pkg/clock"
	"ecocollect/internal/pkg/errs"
	"ecocollect/internal/usecase/commands"
	"ecocollect/internal/usecase/shared"
	"ecocollect/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPurchaser struct {
	view   *backend.PurchaseView
	err    error
	gotReq backend.CreatePurchaseRequest
	gotTok string
	calls  int
}

func (s *stubPurchaser) CreatePurchase(_ context.Context, token string, req backend.CreatePurchaseRequest) (*backend.PurchaseView, error) {
	s.calls++
	s.gotTok = token
	s.gotReq = req
	return s.view, s.err
}

func checkoutFixture(t *testing.T, startingPoints int64) (*stubPurchaser, *cart.Store, *snapshot.MemStore, *shared.SessionState, commands.CheckoutCommands) {
	t.Helper()
	purchaser := &stubPurchaser{view: &backend.PurchaseView{ID: "order-1", Status: "confirmed"}}
	store := cart.NewStore()
	repo := snapshot.NewMemStore()
	session := newTestSession(startingPoints)
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	cmds := commands.NewCheckoutCommands(purchaser, store, repo, session, clk)
	return purchaser, store, repo, session, cmds
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()
	input := commands.CheckoutInput{PaymentMethod: "card", ShippingAddress: "Main St 1"}

	t.Run("submits the cart, debits points and clears", func(t *testing.T) {
		purchaser, store, repo, session, cmds := checkoutFixture(t, 1000)
		store.Add(builder.NewProductBuilder().WithPriceCents(45000).BuildDomain())
		store.Add(builder.NewProductBuilder().WithID("dev-002").AsPointsPriced(300).BuildDomain())

		result, err := cmds.Checkout(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "order-1", result.PurchaseID)
		assert.Equal(t, int64(45000), result.TotalCents)
		assert.Equal(t, int64(300), result.PointsSpent)

		assert.Equal(t, "token", purchaser.gotTok)
		assert.Equal(t, "user-1", purchaser.gotReq.UserID)
		assert.Len(t, purchaser.gotReq.Items, 2)

		ledger, _ := session.Ledger()
		assert.Equal(t, int64(700), ledger.Balance())
		require.Len(t, ledger.History(), 1)
		assert.Equal(t, "order-1", ledger.History()[0].CorrelationID)

		assert.Equal(t, 0, store.ItemCount())
		_, err = repo.Load(ctx, snapshot.CartKey)
		assert.NoError(t, err)
	})

	t.Run("rejects an empty cart", func(t *testing.T) {
		purchaser, _, _, _, cmds := checkoutFixture(t, 1000)

		_, err := cmds.Checkout(ctx, input)
		assert.ErrorIs(t, err, errs.ErrEmptyCart)
		assert.Zero(t, purchaser.calls)
	})

	t.Run("rejects a short balance before calling the backend", func(t *testing.T) {
		purchaser, store, _, session, cmds := checkoutFixture(t, 100)
		store.Add(builder.NewProductBuilder().AsPointsPriced(300).BuildDomain())

		_, err := cmds.Checkout(ctx, input)
		assert.ErrorIs(t, err, errs.ErrInsufficientPoints)
		assert.Zero(t, purchaser.calls)

		ledger, _ := session.Ledger()
		assert.Equal(t, int64(100), ledger.Balance())
		assert.Equal(t, 1, store.ItemCount())
	})

	t.Run("keeps the cart when the backend is down", func(t *testing.T) {
		purchaser, store, _, _, cmds := checkoutFixture(t, 1000)
		purchaser.view = nil
		purchaser.err = infra.WrapRepoErr("purchase", errs.New("503"), infra.KindUnavailable)
		store.Add(builder.NewProductBuilder().BuildDomain())

		_, err := cmds.Checkout(ctx, input)
		assert.ErrorIs(t, err, errs.ErrBackendUnavailable)
		assert.Equal(t, 1, store.ItemCount())
	})

	t.Run("requires a session", func(t *testing.T) {
		purchaser := &stubPurchaser{}
		cmds := commands.NewCheckoutCommands(purchaser, cart.NewStore(), snapshot.NewMemStore(), shared.NewSessionState(), clock.NewRealClock())

		_, err := cmds.Checkout(ctx, input)
		assert.ErrorIs(t, err, errs.ErrNotLoggedIn)
	})
}
