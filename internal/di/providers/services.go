package providers

import (
	"github.com/samber/do/v2"

	"github.com/loacademie/academie-server/internal/assistant"
	"github.com/loacademie/academie-server/internal/auth"
	"github.com/loacademie/academie-server/internal/config"
	"github.com/loacademie/academie-server/internal/logger"
	"github.com/loacademie/academie-server/internal/service"
	"github.com/loacademie/academie-server/internal/validation"
)

// ProvideValidator provides the request validator.
func ProvideValidator(do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvideAuthService provides the admin gate.
func ProvideAuthService(i do.Injector) (*auth.Service, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if cfg.Admin.PasswordHash == "" {
		log.Warn("no admin password hash configured, admin login disabled")
	}

	return auth.NewService(cfg.Admin.PasswordHash, cfg.Admin.TokenTTL, log), nil
}

// ProvideCatalogService provides the catalog business logic.
func ProvideCatalogService(i do.Injector) (*service.CatalogService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCatalogService(storeHandle.Store, validator, log)
}

// ProvideAssistantClient provides the Gemini-backed assistant.
func ProvideAssistantClient(i do.Injector) (*assistant.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := assistant.NewClient(assistant.Config{
		APIKey:  cfg.Assistant.APIKey,
		BaseURL: cfg.Assistant.BaseURL,
		Model:   cfg.Assistant.Model,
		Timeout: cfg.Assistant.Timeout,
	}, log)

	if !client.Enabled() {
		log.Info("assistant API key not configured, endpoint will report unavailable")
	}

	return client, nil
}
