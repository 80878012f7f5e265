package providers

import (
	"context"
	"errors"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/loacademie/academie-server/internal/api"
	"github.com/loacademie/academie-server/internal/assistant"
	"github.com/loacademie/academie-server/internal/auth"
	"github.com/loacademie/academie-server/internal/config"
	"github.com/loacademie/academie-server/internal/logger"
	"github.com/loacademie/academie-server/internal/maintenance"
	"github.com/loacademie/academie-server/internal/service"
	"github.com/loacademie/academie-server/internal/sse"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	sseHandle := do.MustInvoke[*SSEManagerHandle](i)

	catalogService := do.MustInvoke[*service.CatalogService](i)
	authService := do.MustInvoke[*auth.Service](i)
	assistantClient := do.MustInvoke[*assistant.Client](i)

	sseHandler := sse.NewHandler(sseHandle.Manager, log)

	handler := api.NewServer(storeHandle.Store, catalogService, authService,
		assistantClient, sseHandler, cfg.Server.AllowedOrigins, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("Server running", "addr", srv.Addr)

	return &HTTPServerHandle{Server: srv}, nil
}

// MaintenanceHandle wraps the maintenance scheduler with Shutdownable.
type MaintenanceHandle struct {
	*maintenance.Scheduler
}

// Shutdown implements do.Shutdownable.
func (h *MaintenanceHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Scheduler.Shutdown(ctx)
}

// ProvideMaintenance provides the scheduled housekeeping jobs.
func ProvideMaintenance(i do.Injector) (*MaintenanceHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	scheduler, err := maintenance.NewScheduler(storeHandle.Store, cfg.Maintenance.GCSchedule, log)
	if err != nil {
		return nil, err
	}
	scheduler.Start()

	return &MaintenanceHandle{Scheduler: scheduler}, nil
}
