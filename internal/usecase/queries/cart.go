package queries

import (
	"context"

	"ecocollect/internal/domain/cart"
	"ecocollect/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

type CartQueries interface {
	Get(ctx context.Context) (*CartView, error)
	Contains(ctx context.Context, productID string) (bool, error)
	Quantity(ctx context.Context, productID string) (int, error)
}

type cartQueriesImpl struct {
	store *cart.Store
}

func NewCartQueries(store *cart.Store) CartQueries {
	return &cartQueriesImpl{store: store}
}

func (q *cartQueriesImpl) Get(_ context.Context) (*CartView, error) {
	items := q.store.Items()
	views := make([]CartItemView, len(items))
	for i := range items {
		if err := copier.Copy(&views[i], &items[i].Product); err != nil {
			return nil, errs.Wrap(err, "failed to map cart item")
		}
		views[i].Quantity = items[i].Quantity
	}
	return &CartView{
		Items:       views,
		TotalCents:  q.store.TotalCents(),
		TotalPoints: q.store.TotalPoints(),
		ItemCount:   q.store.ItemCount(),
	}, nil
}

func (q *cartQueriesImpl) Contains(_ context.Context, productID string) (bool, error) {
	return q.store.Contains(productID), nil
}

func (q *cartQueriesImpl) Quantity(_ context.Context, productID string) (int, error) {
	return q.store.Quantity(productID), nil
}
