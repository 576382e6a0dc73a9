package components

import (
	"context"

	"ecocollect/internal/domain/cart"
	"ecocollect/internal/infra/snapshot"
	"ecocollect/internal/usecase/commands"
	"ecocollect/internal/usecase/shared"

	"go.uber.org/fx"
)

// StateModule owns the long-lived in-process state: the cart store and
// the session. The cart is restored from its snapshot at startup and
// flushed once more on shutdown.
var StateModule = fx.Module("state",
	fx.Provide(
		shared.NewSessionState,
		NewCartStore,
	),
)

func NewCartStore(lc fx.Lifecycle, repo snapshot.Repository) *cart.Store {
	store := commands.RestoreCartStore(context.Background(), repo)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			commands.PersistCartStore(ctx, repo, store)
			return nil
		},
	})

	return store
}
