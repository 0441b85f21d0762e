//go:build e2e

package e2e

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"tablebook/cmd/bootstrap"
	"tablebook/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Builds the full application in-process with a fresh ledger.
// Returns router, config, and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(t *testing.T, cfg config.Config) (*gin.Engine, *fx.App) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var router *gin.Engine

	app := fx.New(
		bootstrap.Module,
		fx.Replace(cfg),
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")
	require.NotNil(t, router, "router was not built")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return router, app
}

type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Config config.Config
}

// SetupTest gives every test method its own ledger; subtests share it.
func (s *SharedSuite) SetupTest() {
	s.Config = config.NewTestConfig()
	s.Router, _ = buildE2EApp(s.T(), s.Config)
}
