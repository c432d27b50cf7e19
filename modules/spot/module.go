package spot

import (
	"surfplan-api/core/database"
	"surfplan-api/core/middleware"
	"surfplan-api/modules/spot/controller"
	"surfplan-api/modules/spot/repository"
	"surfplan-api/modules/spot/router"
	"surfplan-api/modules/spot/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the spot module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewSpotRepository(db)
	svc := service.NewSpotService(repo)
	ctrl := controller.NewSpotController(svc)
	rtr := router.NewSpotRouter(ctrl)

	rtr.Setup(e, mw)
}
