package planner

import (
	"surfplan-api/core/config"
	"surfplan-api/core/middleware"
	"surfplan-api/modules/planner/controller"
	"surfplan-api/modules/planner/router"
	"surfplan-api/modules/planner/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the planner module and registers routes. The briefer is
// only wired when a Gemini API key is configured.
func Init(e *echo.Echo, mw *middleware.Middleware, cfg *config.Config, prefs service.PreferenceSource, forecasts service.ForecastSource) *service.PlannerService {
	var briefer service.Briefer
	if cfg.Gemini.APIKey != "" {
		briefer = service.NewGeminiBriefer(cfg.Gemini.APIKey, cfg.Gemini.Model)
	}

	svc := service.NewPlannerService(prefs, forecasts, briefer)
	ctrl := controller.NewPlannerController(svc)
	rtr := router.NewPlannerRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
