package components

import (
	"tablebook/internal/infra/repository"
	"tablebook/internal/infra/uow"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		repository.NewIdempotencyRepository,
		uow.NewMemoryUoW,
	),
)
