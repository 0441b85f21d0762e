package components

import (
	"tablebook/internal/handler"
	"tablebook/internal/handler/api"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/handler/middleware"
	"tablebook/internal/pkg/config"
	"tablebook/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		resdto.NewPresenter,
		api.NewReservationHandler,
	),
	fx.Invoke(registerRoutes),
)

type routerDeps struct {
	fx.In

	Engine             *gin.Engine
	Config             config.Config
	Logger             *middleware.Logger
	Metrics            *metrics.Metrics
	Gatherer           prometheus.Gatherer
	ReservationHandler *api.ReservationHandler
}

func registerRoutes(d routerDeps) {
	handler.NewRouter(handler.RouterParams{
		Engine:             d.Engine,
		Config:             d.Config,
		Logger:             d.Logger,
		Metrics:            d.Metrics,
		Gatherer:           d.Gatherer,
		ReservationHandler: d.ReservationHandler,
	})
}
