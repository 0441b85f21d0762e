package bootstrap

import (
	"tablebook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module wires everything except the listening server, so tests can drive
// the engine in-process.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	LedgerModule,
	EngineModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	WorkerModule,
)
