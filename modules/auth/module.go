package auth

import (
	"surfplan-api/core/cache"
	"surfplan-api/core/config"
	"surfplan-api/core/database"
	"surfplan-api/core/middleware"
	"surfplan-api/modules/auth/controller"
	"surfplan-api/modules/auth/repository"
	"surfplan-api/modules/auth/router"
	"surfplan-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the auth module and registers routes
func Init(e *echo.Echo, db database.Database, c *cache.Cache, mw *middleware.Middleware, cfg *config.Config) {
	users := repository.NewUserRepository(db)
	svc := service.NewAuthService(users, c, cfg)
	ctrl := controller.NewAuthController(svc)
	rtr := router.NewAuthRouter(ctrl)

	rtr.Setup(e, mw)
}
