package bootstrap

import (
	"context"

	"ecocollect/internal/infra/snapshot"
	"ecocollect/internal/pkg/config"
	"ecocollect/internal/pkg/errs"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewSnapshotRepository,
	),
)

func NewSnapshotRepository(lc fx.Lifecycle, cfg config.StorageConfig) (snapshot.Repository, error) {
	switch cfg.Driver {
	case "file":
		return snapshot.NewFileStore(cfg.Dir)
	case "sqlite":
		store, err := snapshot.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return store.Close()
			},
		})
		return store, nil
	case "memory":
		return snapshot.NewMemStore(), nil
	default:
		return nil, errs.Newf("unknown storage driver: %s", cfg.Driver)
	}
}
