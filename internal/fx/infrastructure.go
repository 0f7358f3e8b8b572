package fx

import (
	"Feira/config"
	"Feira/internal/infrastructure"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newUserRepository,
		newListRepository,
		newResourceCounter,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newUserRepository(db *gorm.DB) *infrastructure.UserRepository {
	return &infrastructure.UserRepository{DB: db}
}

func newListRepository(db *gorm.DB) *infrastructure.ListRepository {
	return &infrastructure.ListRepository{DB: db}
}

func newResourceCounter(db *gorm.DB) *infrastructure.ResourceCounter {
	return &infrastructure.ResourceCounter{DB: db}
}
