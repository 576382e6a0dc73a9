package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"ecocollect/internal/domain/points"
	"ecocollect/internal/infra"
	"ecocollect/internal/infra/snapshot"
	"ecocollect/internal/pkg/clock"
	"ecocollect/internal/pkg/errs"
	"ecocollect/internal/usecase/shared"
)

type PointsCommands interface {
	// Earn credits points to the logged-in user.
	Earn(ctx context.Context, amount int64, description, correlationID string) (*points.Transaction, error)
	// Spend debits points; ErrInsufficientPoints when the balance is short,
	// leaving the ledger untouched.
	Spend(ctx context.Context, amount int64, description, correlationID string) (*points.Transaction, error)
}

type pointsCommandsImpl struct {
	session *shared.SessionState
	repo    snapshot.Repository
	clock   clock.Clock
}

func NewPointsCommands(session *shared.SessionState, repo snapshot.Repository, clock clock.Clock) PointsCommands {
	return &pointsCommandsImpl{session: session, repo: repo, clock: clock}
}

func (p *pointsCommandsImpl) Earn(ctx context.Context, amount int64, description, correlationID string) (*points.Transaction, error) {
	user, ok := p.session.User()
	if !ok {
		return nil, errs.ErrNotLoggedIn
	}
	ledger, ok := p.session.Ledger()
	if !ok {
		return nil, errs.ErrNotLoggedIn
	}

	txn, err := ledger.Earn(amount, description, correlationID, p.clock.Now())
	if err != nil {
		return nil, err
	}
	PersistLedger(ctx, p.repo, user.ID, ledger)
	return &txn, nil
}

func (p *pointsCommandsImpl) Spend(ctx context.Context, amount int64, description, correlationID string) (*points.Transaction, error) {
	user, ok := p.session.User()
	if !ok {
		return nil, errs.ErrNotLoggedIn
	}
	ledger, ok := p.session.Ledger()
	if !ok {
		return nil, errs.ErrNotLoggedIn
	}

	txn, ok := ledger.Spend(amount, description, correlationID, p.clock.Now())
	if !ok {
		return nil, errs.ErrInsufficientPoints
	}
	PersistLedger(ctx, p.repo, user.ID, ledger)
	return &txn, nil
}

// RestoreLedger loads the user's persisted ledger, or seeds a fresh one
// from the backend-supplied starting balance when there is no usable
// snapshot.
func RestoreLedger(ctx context.Context, repo snapshot.Repository, userID string, startingPoints int64) *points.Ledger {
	blob, err := repo.Load(ctx, snapshot.LedgerKey(userID))
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("failed to load ledger snapshot, seeding from starting balance", "user_id", userID, "error", err)
		}
		return points.NewLedger(startingPoints)
	}

	var snap points.Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		slog.Warn("corrupt ledger snapshot, seeding from starting balance", "user_id", userID, "error", err)
		return points.NewLedger(startingPoints)
	}
	return points.NewLedgerFromSnapshot(snap)
}

// PersistLedger writes the ledger snapshot under the user's key,
// best-effort.
func PersistLedger(ctx context.Context, repo snapshot.Repository, userID string, ledger *points.Ledger) {
	blob, err := json.Marshal(ledger.Snapshot())
	if err != nil {
		slog.Warn("failed to encode ledger snapshot", "user_id", userID, "error", err)
		return
	}
	if err := repo.Save(ctx, snapshot.LedgerKey(userID), blob); err != nil {
		slog.Warn("failed to save ledger snapshot", "user_id", userID, "error", err)
	}
}
