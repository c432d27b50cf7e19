package router

import (
	"surfplan-api/core/middleware"
	"surfplan-api/modules/forecast/controller"

	"github.com/labstack/echo/v4"
)

// ForecastRouter handles forecast routes
type ForecastRouter struct {
	ForecastController *controller.ForecastController
}

func NewForecastRouter(forecastController *controller.ForecastController) *ForecastRouter {
	return &ForecastRouter{ForecastController: forecastController}
}

// Setup registers forecast routes
func (r *ForecastRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	privateRoutes.GET("/spots/:id/forecast", r.ForecastController.GetSpotForecast, mw.AuthMiddleware())
}
