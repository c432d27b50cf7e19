package router

import (
	"surfplan-api/core/middleware"
	"surfplan-api/modules/spot/controller"

	"github.com/labstack/echo/v4"
)

// SpotRouter handles surf spot routes
type SpotRouter struct {
	SpotController *controller.SpotController
}

func NewSpotRouter(spotController *controller.SpotController) *SpotRouter {
	return &SpotRouter{SpotController: spotController}
}

// Setup registers spot routes
func (r *SpotRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	spotRoutes := privateRoutes.Group("/spots", mw.AuthMiddleware())
	spotRoutes.GET("", r.SpotController.ListSpots)
	spotRoutes.GET("/:id", r.SpotController.GetSpot)
	spotRoutes.POST("", r.SpotController.CreateSpot)
}
