package components

import (
	"ecocollect/internal/pkg/clock"
	"ecocollect/internal/usecase/commands"
	"ecocollect/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSessionCommands,
		commands.NewCartCommands,
		commands.NewPointsCommands,
		commands.NewCheckoutCommands,
		commands.NewCollectionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSessionQueries,
		queries.NewCartQueries,
		queries.NewPointsQueries,
		queries.NewMarketplaceQueries,
		queries.NewCollectionQueries,
	),
)
