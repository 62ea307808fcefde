package dbfx

import (
	"context"

	"refurbmart/internal/infra"
	"refurbmart/pkg/config"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(provideDatabase)

func provideDatabase(lc fx.Lifecycle, cfg *config.Config) *gorm.DB {
	db := infra.InitPostgresql(cfg.PostgresURL)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})

	return db
}
