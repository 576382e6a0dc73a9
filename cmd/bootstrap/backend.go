package bootstrap

import (
	"ecocollect/internal/infra/backend"
	"ecocollect/internal/usecase/commands"
	"ecocollect/internal/usecase/queries"

	"go.uber.org/fx"
)

var BackendModule = fx.Module("backend",
	fx.Provide(
		backend.NewClient,
		func(c *backend.Client) commands.Authenticator { return c },
		func(c *backend.Client) commands.Purchaser { return c },
		func(c *backend.Client) commands.CollectionScheduler { return c },
		func(c *backend.Client) queries.DeviceLister { return c },
		func(c *backend.Client) queries.CollectionLister { return c },
	),
)
