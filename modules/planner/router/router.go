package router

import (
	"surfplan-api/core/middleware"
	"surfplan-api/modules/planner/controller"

	"github.com/labstack/echo/v4"
)

// PlannerRouter handles planner routes
type PlannerRouter struct {
	PlannerController *controller.PlannerController
}

func NewPlannerRouter(plannerController *controller.PlannerController) *PlannerRouter {
	return &PlannerRouter{PlannerController: plannerController}
}

// Setup registers planner routes
func (r *PlannerRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private", mw.AuthMiddleware())

	privateRoutes.GET("/planner/sessions", r.PlannerController.PlanSessions)
	privateRoutes.POST("/planner/sessions/brief", r.PlannerController.BriefSessions)
}
