package commands

import (
	"context"
	"log/slog"
	"time"

	"ecocollect/internal/infra"
	"ecocollect/internal/infra/backend"
	"ecocollect/internal/infra/snapshot"
	"ecocollect/internal/pkg/clock"
	"ecocollect/internal/pkg/config"
	"ecocollect/internal/pkg/errs"
	"ecocollect/internal/pkg/token"
	"ecocollect/internal/usecase/shared"
)

type Authenticator interface {
	Login(ctx context.Context, email, password string) (*backend.LoginResult, error)
}

type LoginOutcome struct {
	User      backend.User
	Token     string
	ExpiresAt time.Time
}

type SessionCommands interface {
	// Login authenticates against the backend and restores the user's
	// point ledger from the local snapshot store.
	Login(ctx context.Context, email, password string) (*LoginOutcome, error)
	// Logout persists the ledger and drops the session.
	Logout(ctx context.Context) error
}

type sessionCommandsImpl struct {
	backend Authenticator
	repo    snapshot.Repository
	session *shared.SessionState
	clock   clock.Clock
	cfg     config.SessionConfig
}

func NewSessionCommands(
	backendClient Authenticator,
	repo snapshot.Repository,
	session *shared.SessionState,
	clk clock.Clock,
	cfg config.SessionConfig,
) SessionCommands {
	return &sessionCommandsImpl{
		backend: backendClient,
		repo:    repo,
		session: session,
		clock:   clk,
		cfg:     cfg,
	}
}

func (s *sessionCommandsImpl) Login(ctx context.Context, email, password string) (*LoginOutcome, error) {
	result, err := s.backend.Login(ctx, email, password)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindUnavailable):
			return nil, errs.Mark(err, errs.ErrBackendUnavailable)
		case infra.IsKind(err, infra.KindRejected), infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, errs.ErrInvalidCredentials)
		default:
			return nil, errs.Wrap(err, "login failed")
		}
	}

	now := s.clock.Now()
	expiresAt := token.ExpiryOf(result.Token, s.cfg.TokenTTL, now)

	// The backend reports the user's current balance; the local snapshot
	// wins when present so offline history survives re-login.
	ledger := RestoreLedger(ctx, s.repo, result.User.ID, result.User.Points)

	s.session.Begin(result.User, result.Token, expiresAt, ledger)
	slog.Info("session started", "user_id", result.User.ID, "expires_at", expiresAt)

	return &LoginOutcome{User: result.User, Token: result.Token, ExpiresAt: expiresAt}, nil
}

func (s *sessionCommandsImpl) Logout(ctx context.Context) error {
	user, ok := s.session.User()
	if !ok {
		return errs.ErrNotLoggedIn
	}
	if ledger, ok := s.session.Ledger(); ok {
		PersistLedger(ctx, s.repo, user.ID, ledger)
	}
	s.session.End()
	slog.Info("session ended", "user_id", user.ID)
	return nil
}
