package handlers

import (
	"gorm.io/gorm"

	"hotsprings/domain/services"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	Registry *RegistryHandler
	Health   *HealthHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(registryService services.RegistryService, db *gorm.DB) *Handlers {
	return &Handlers{
		Registry: NewRegistryHandler(registryService),
		Health:   NewHealthHandler(db),
	}
}
