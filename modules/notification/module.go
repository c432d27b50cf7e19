package notification

import (
	"surfplan-api/core/database"
	"surfplan-api/core/middleware"
	"surfplan-api/modules/notification/controller"
	"surfplan-api/modules/notification/repository"
	"surfplan-api/modules/notification/router"
	"surfplan-api/modules/notification/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the notification module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Setup(e, mw)

	return svc
}
