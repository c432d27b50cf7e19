package router

import (
	"surfplan-api/core/middleware"
	"surfplan-api/modules/preference/controller"

	"github.com/labstack/echo/v4"
)

// PreferenceRouter handles preference and availability routes
type PreferenceRouter struct {
	PreferenceController *controller.PreferenceController
}

func NewPreferenceRouter(preferenceController *controller.PreferenceController) *PreferenceRouter {
	return &PreferenceRouter{PreferenceController: preferenceController}
}

// Setup registers preference routes
func (r *PreferenceRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	prefRoutes := privateRoutes.Group("/preferences", mw.AuthMiddleware())
	prefRoutes.GET("", r.PreferenceController.ListPreferences)
	prefRoutes.GET("/:spotId", r.PreferenceController.GetPreference)
	prefRoutes.PUT("/:spotId", r.PreferenceController.UpsertPreference)
	prefRoutes.DELETE("/:spotId", r.PreferenceController.DeletePreference)

	availRoutes := privateRoutes.Group("/availability", mw.AuthMiddleware())
	availRoutes.GET("", r.PreferenceController.GetAvailability)
	availRoutes.PUT("", r.PreferenceController.SetAvailability)
}
