package queries

import (
	"context"

	"ecocollect/internal/domain/collection"
	"ecocollect/internal/domain/points"
	"ecocollect/internal/infra"
	"ecocollect/internal/infra/backend"
	"ecocollect/internal/pkg/errs"
	"ecocollect/internal/usecase/shared"
)

type CollectionLister interface {
	ListCollections(ctx context.Context, token string) ([]backend.CollectionView, error)
}

type CollectionQueries interface {
	List(ctx context.Context) ([]CollectionListItem, error)
}

type collectionQueriesImpl struct {
	backend CollectionLister
	session *shared.SessionState
}

func NewCollectionQueries(backendClient CollectionLister, session *shared.SessionState) CollectionQueries {
	return &collectionQueriesImpl{backend: backendClient, session: session}
}

func (q *collectionQueriesImpl) List(ctx context.Context) ([]CollectionListItem, error) {
	tok, ok := q.session.Token()
	if !ok {
		return nil, errs.ErrNotLoggedIn
	}

	views, err := q.backend.ListCollections(ctx, tok)
	if err != nil {
		if infra.IsKind(err, infra.KindUnavailable) {
			return nil, errs.Mark(err, errs.ErrBackendUnavailable)
		}
		return nil, errs.Mark(err, errs.ErrBackendRejected)
	}

	credited := q.creditedCollections()

	items := make([]CollectionListItem, len(views))
	for i, v := range views {
		items[i] = CollectionListItem{
			ID:              v.ID,
			Status:          v.Status,
			Items:           mapCollectionItems(v.Items),
			Address:         v.Address,
			PreferredDate:   v.PreferredDate,
			PreferredTime:   v.PreferredTime,
			EstimatedPoints: v.EstimatedPoints,
			PointsCredited:  credited[v.ID],
			CreatedAt:       v.CreatedAt,
		}
	}
	return items, nil
}

// creditedCollections reads the ledger history for collection ids that
// already earned their points.
func (q *collectionQueriesImpl) creditedCollections() map[string]bool {
	credited := make(map[string]bool)
	ledger, ok := q.session.Ledger()
	if !ok {
		return credited
	}
	for _, txn := range ledger.History() {
		if txn.Direction == points.DirectionEarned && txn.CorrelationID != "" {
			credited[txn.CorrelationID] = true
		}
	}
	return credited
}

func mapCollectionItems(items []collection.Item) []CollectionItemView {
	views := make([]CollectionItemView, len(items))
	for i, it := range items {
		views[i] = CollectionItemView{
			Type:            string(it.Type),
			Brand:           it.Brand,
			Model:           it.Model,
			Condition:       string(it.Condition),
			Quantity:        it.Quantity,
			EstimatedPoints: it.EstimatedPoints,
		}
	}
	return views
}
