package components

import (
	"ecocollect/internal/handler"
	"ecocollect/internal/handler/api"
	"ecocollect/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSessionHandler,
		api.NewCartHandler,
		api.NewPointsHandler,
		api.NewMarketplaceHandler,
		api.NewCollectionHandler,
		api.NewCheckoutHandler,
		middleware.NewSessionMiddleware,
		func(
			session *api.SessionHandler,
			cart *api.CartHandler,
			points *api.PointsHandler,
			marketplace *api.MarketplaceHandler,
			collection *api.CollectionHandler,
			checkout *api.CheckoutHandler,
		) handler.Handlers {
			return handler.Handlers{
				Session:     session,
				Cart:        cart,
				Points:      points,
				Marketplace: marketplace,
				Collection:  collection,
				Checkout:    checkout,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
