// Package di provides dependency injection configuration for the scholingskalender server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/loacademie/academie-server/internal/assistant"
	"github.com/loacademie/academie-server/internal/auth"
	"github.com/loacademie/academie-server/internal/config"
	"github.com/loacademie/academie-server/internal/di/providers"
	"github.com/loacademie/academie-server/internal/logger"
	"github.com/loacademie/academie-server/internal/service"
	"github.com/loacademie/academie-server/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideSSEManager)
	do.Provide(injector, providers.ProvideStore)

	// Business services
	do.Provide(injector, providers.ProvideValidator)
	do.Provide(injector, providers.ProvideAuthService)
	do.Provide(injector, providers.ProvideCatalogService)
	do.Provide(injector, providers.ProvideAssistantClient)

	// Workers
	do.Provide(injector, providers.ProvideMaintenance)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.SSEManagerHandle](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)

	// Business services
	_ = do.MustInvoke[*validation.Validator](injector)
	_ = do.MustInvoke[*auth.Service](injector)
	_ = do.MustInvoke[*service.CatalogService](injector)
	_ = do.MustInvoke[*assistant.Client](injector)

	// Workers
	_ = do.MustInvoke[*providers.MaintenanceHandle](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
