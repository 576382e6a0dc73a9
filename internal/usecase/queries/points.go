package queries

import (
	"context"

	"ecocollect/internal/pkg/errs"
	"ecocollect/internal/usecase/shared"
)

type PointsQueries interface {
	Balance(ctx context.Context) (*BalanceView, error)
	History(ctx context.Context) ([]TransactionView, error)
	CanAfford(ctx context.Context, amount int64) (bool, error)
}

type pointsQueriesImpl struct {
	session *shared.SessionState
}

func NewPointsQueries(session *shared.SessionState) PointsQueries {
	return &pointsQueriesImpl{session: session}
}

func (q *pointsQueriesImpl) Balance(_ context.Context) (*BalanceView, error) {
	ledger, ok := q.session.Ledger()
	if !ok {
		return nil, errs.ErrNotLoggedIn
	}
	return &BalanceView{
		Balance:     ledger.Balance(),
		TotalEarned: ledger.TotalEarned(),
		TotalSpent:  ledger.TotalSpent(),
	}, nil
}

func (q *pointsQueriesImpl) History(_ context.Context) ([]TransactionView, error) {
	ledger, ok := q.session.Ledger()
	if !ok {
		return nil, errs.ErrNotLoggedIn
	}

	txns := ledger.History()
	views := make([]TransactionView, len(txns))
	for i, txn := range txns {
		views[i] = TransactionView{
			ID:            txn.ID.String(),
			Direction:     string(txn.Direction),
			Amount:        txn.Amount,
			Description:   txn.Description,
			CorrelationID: txn.CorrelationID,
			OccurredAt:    txn.OccurredAt,
		}
	}
	return views, nil
}

func (q *pointsQueriesImpl) CanAfford(_ context.Context, amount int64) (bool, error) {
	ledger, ok := q.session.Ledger()
	if !ok {
		return false, errs.ErrNotLoggedIn
	}
	return ledger.CanAfford(amount), nil
}
