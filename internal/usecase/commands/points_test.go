//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"ecocollect/internal/domain/points"
	"ecocollect/internal/infra/backend"
	"ecocollect/internal/infra/snapshot"
	"ecocollect/internal/pkg/clock"
	"ecocollect/internal/pkg/errs"
	"ecocollect/internal/usecase/commands"
	"ecocollect/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(startingPoints int64) *shared.SessionState {
	session := shared.NewSessionState()
	session.Begin(
		backend.User{ID: "user-1", Email: "jan@example.com", Points: startingPoints},
		"token",
		time.Time{},
		points.NewLedger(startingPoints),
	)
	return session
}

func TestPointsCommands_Earn(t *testing.T) {
	ctx := context.Background()
	repo := snapshot.NewMemStore()
	session := newTestSession(100)
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	cmds := commands.NewPointsCommands(session, repo, clk)

	txn, err := cmds.Earn(ctx, 180, "E-waste collection", "col-1")
	require.NoError(t, err)
	assert.Equal(t, points.DirectionEarned, txn.Direction)
	assert.Equal(t, int64(180), txn.Amount)
	assert.Equal(t, clk.Now(), txn.OccurredAt)

	ledger, ok := session.Ledger()
	require.True(t, ok)
	assert.Equal(t, int64(280), ledger.Balance())

	// Earning persists the ledger under the user's key.
	_, err = repo.Load(ctx, snapshot.LedgerKey("user-1"))
	assert.NoError(t, err)
}

func TestPointsCommands_SpendInsufficient(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(50)
	cmds := commands.NewPointsCommands(session, snapshot.NewMemStore(), clock.NewRealClock())

	_, err := cmds.Spend(ctx, 100, "Marketplace purchase", "order-1")
	require.ErrorIs(t, err, errs.ErrInsufficientPoints)

	ledger, _ := session.Ledger()
	assert.Equal(t, int64(50), ledger.Balance())
	assert.Empty(t, ledger.History())
}

func TestPointsCommands_NotLoggedIn(t *testing.T) {
	ctx := context.Background()
	cmds := commands.NewPointsCommands(shared.NewSessionState(), snapshot.NewMemStore(), clock.NewRealClock())

	_, err := cmds.Earn(ctx, 10, "x", "")
	assert.ErrorIs(t, err, errs.ErrNotLoggedIn)

	_, err = cmds.Spend(ctx, 10, "x", "")
	assert.ErrorIs(t, err, errs.ErrNotLoggedIn)
}

func TestRestoreLedger(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds from starting points when nothing persisted", func(t *testing.T) {
		ledger := commands.RestoreLedger(ctx, snapshot.NewMemStore(), "user-1", 1250)
		assert.Equal(t, int64(1250), ledger.Balance())
		assert.Empty(t, ledger.History())
	})

	t.Run("persisted snapshot wins over starting points", func(t *testing.T) {
		repo := snapshot.NewMemStore()
		saved := points.NewLedger(1250)
		_, err := saved.Earn(200, "E-waste collection", "col-9", time.Now())
		require.NoError(t, err)
		commands.PersistLedger(ctx, repo, "user-1", saved)

		ledger := commands.RestoreLedger(ctx, repo, "user-1", 1250)
		assert.Equal(t, int64(1450), ledger.Balance())
		require.Len(t, ledger.History(), 1)
		assert.Equal(t, "col-9", ledger.History()[0].CorrelationID)
	})

	t.Run("corrupt snapshot falls back to starting points", func(t *testing.T) {
		repo := snapshot.NewMemStore()
		require.NoError(t, repo.Save(ctx, snapshot.LedgerKey("user-1"), []byte("???")))

		ledger := commands.RestoreLedger(ctx, repo, "user-1", 300)
		assert.Equal(t, int64(300), ledger.Balance())
	})
}
