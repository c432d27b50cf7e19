package preference

import (
	"surfplan-api/core/database"
	"surfplan-api/core/middleware"
	"surfplan-api/modules/preference/controller"
	"surfplan-api/modules/preference/repository"
	"surfplan-api/modules/preference/router"
	"surfplan-api/modules/preference/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the preference module, registers routes and returns the
// service so the planner can consume preferences and availability.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) *service.PreferenceService {
	prefRepo := repository.NewPreferenceRepository(db)
	availRepo := repository.NewAvailabilityRepository(db)
	svc := service.NewPreferenceService(prefRepo, availRepo)
	ctrl := controller.NewPreferenceController(svc)
	rtr := router.NewPreferenceRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
