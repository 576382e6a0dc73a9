package bootstrap

import (
	"ecocollect/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.SessionConfig { return cfg.Session },
		func(cfg config.Config) config.BackendConfig { return cfg.Backend },
		func(cfg config.Config) config.StorageConfig { return cfg.Storage },
	),
)
