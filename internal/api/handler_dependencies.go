package api

import (
	"github.com/voltshift/ampere/internal/db"
	"github.com/voltshift/ampere/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.scheduleService = services.NewScheduleService(handler.repositories.Schedules)
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}

	if handler.authService == nil {
		handler.authService = services.NewAuthService(handler.repositories.Users)
	}
	if handler.scheduleService == nil {
		handler.scheduleService = services.NewScheduleService(handler.repositories.Schedules)
	}
}
