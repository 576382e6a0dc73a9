//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"ecocollect/internal/domain/points"
	"ecocollect/internal/infra"
	"ecocollect/internal/infra/backend"
	"ecocollect/internal/infra/snapshot"
	"ecocollect/internal/pkg/clock"
	"ecocollect/internal/pkg/config"
	"ecocollect/internal/pkg/errs"
	"ecocollect/internal/usecase/commands"
	"ecocollect/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthenticator struct {
	result *backend.LoginResult
	err    error
}

func (s *stubAuthenticator) Login(_ context.Context, _, _ string) (*backend.LoginResult, error) {
	return s.result, s.err
}

func TestSessionCommands_Login(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cfg := config.NewTestConfig().Session

	t.Run("seeds the ledger from the backend balance", func(t *testing.T) {
		auth := &stubAuthenticator{result: &backend.LoginResult{
			Token: "opaque-token",
			User:  backend.User{ID: "user-1", Email: "jan@example.com", Points: 1250},
		}}
		session := shared.NewSessionState()
		cmds := commands.NewSessionCommands(auth, snapshot.NewMemStore(), session, clock.NewMockClock(now), cfg)

		outcome, err := cmds.Login(ctx, "jan@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "user-1", outcome.User.ID)
		assert.Equal(t, "opaque-token", outcome.Token)

		ledger, ok := session.Ledger()
		require.True(t, ok)
		assert.Equal(t, int64(1250), ledger.Balance())

		// Opaque token falls back to the configured TTL.
		assert.Equal(t, now.Add(cfg.TokenTTL), session.ExpiresAt())
	})

	t.Run("prefers the persisted ledger", func(t *testing.T) {
		repo := snapshot.NewMemStore()
		saved := points.NewLedger(1250)
		_, err := saved.Earn(180, "E-waste collection", "col-1", now)
		require.NoError(t, err)
		commands.PersistLedger(ctx, repo, "user-1", saved)

		auth := &stubAuthenticator{result: &backend.LoginResult{
			Token: "token",
			User:  backend.User{ID: "user-1", Points: 1250},
		}}
		session := shared.NewSessionState()
		cmds := commands.NewSessionCommands(auth, repo, session, clock.NewMockClock(now), cfg)

		_, err = cmds.Login(ctx, "jan@example.com", "secret")
		require.NoError(t, err)

		ledger, _ := session.Ledger()
		assert.Equal(t, int64(1430), ledger.Balance())
	})

	t.Run("maps a backend rejection to invalid credentials", func(t *testing.T) {
		auth := &stubAuthenticator{err: infra.WrapRepoErr("login", errs.New("401"), infra.KindRejected)}
		cmds := commands.NewSessionCommands(auth, snapshot.NewMemStore(), shared.NewSessionState(), clock.NewMockClock(now), cfg)

		_, err := cmds.Login(ctx, "jan@example.com", "wrong")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("maps an outage to backend unavailable", func(t *testing.T) {
		auth := &stubAuthenticator{err: infra.WrapRepoErr("login", errs.New("503"), infra.KindUnavailable)}
		cmds := commands.NewSessionCommands(auth, snapshot.NewMemStore(), shared.NewSessionState(), clock.NewMockClock(now), cfg)

		_, err := cmds.Login(ctx, "jan@example.com", "secret")
		assert.ErrorIs(t, err, errs.ErrBackendUnavailable)
	})
}

func TestSessionCommands_Logout(t *testing.T) {
	ctx := context.Background()
	repo := snapshot.NewMemStore()
	session := newTestSession(500)
	cmds := commands.NewSessionCommands(&stubAuthenticator{}, repo, session, clock.NewRealClock(), config.NewTestConfig().Session)

	require.NoError(t, cmds.Logout(ctx))

	_, ok := session.User()
	assert.False(t, ok)

	// The ledger outlives the session.
	_, err := repo.Load(ctx, snapshot.LedgerKey("user-1"))
	assert.NoError(t, err)

	assert.ErrorIs(t, cmds.Logout(ctx), errs.ErrNotLoggedIn)
}
