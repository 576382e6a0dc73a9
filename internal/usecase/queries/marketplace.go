package queries

import (
	"context"

	"ecocollect/internal/domain/cart"
	"ecocollect/internal/infra"
	"ecocollect/internal/pkg/errs"

	"github.com/jinzhu/copier"
	"golang.org/x/sync/singleflight"
)

var ErrListingsUnavailable = errs.New("listings unavailable")

type DeviceLister interface {
	ListDevices(ctx context.Context) ([]cart.Product, error)
}

type MarketplaceQueries interface {
	Listings(ctx context.Context) ([]ListingView, error)
}

type marketplaceQueriesImpl struct {
	backend DeviceLister
	store   *cart.Store
	sfg     singleflight.Group // collapses concurrent listing fetches
}

func NewMarketplaceQueries(backend DeviceLister, store *cart.Store) MarketplaceQueries {
	return &marketplaceQueriesImpl{backend: backend, store: store}
}

func (q *marketplaceQueriesImpl) Listings(ctx context.Context) ([]ListingView, error) {
	v, err, _ := q.sfg.Do("devices", func() (any, error) {
		return q.backend.ListDevices(ctx)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindUnavailable) {
			return nil, errs.Mark(err, errs.ErrBackendUnavailable)
		}
		return nil, errs.Mark(err, ErrListingsUnavailable)
	}

	products := v.([]cart.Product)
	views := make([]ListingView, len(products))
	for i := range products {
		if err := copier.Copy(&views[i], &products[i]); err != nil {
			return nil, errs.Wrap(err, "failed to map listing")
		}
		views[i].InCart = q.store.Contains(products[i].ID)
		views[i].CartQuantity = q.store.Quantity(products[i].ID)
	}
	return views, nil
}
