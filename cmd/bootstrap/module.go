package bootstrap

import (
	"ecocollect/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	StorageModule,
	BackendModule,
	components.StateModule,
	components.UseCaseModule,
	components.HandlerModule,
)
