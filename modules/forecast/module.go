package forecast

import (
	"time"

	"surfplan-api/core/cache"
	"surfplan-api/core/config"
	"surfplan-api/core/database"
	"surfplan-api/core/middleware"
	"surfplan-api/modules/forecast/client"
	"surfplan-api/modules/forecast/controller"
	"surfplan-api/modules/forecast/repository"
	"surfplan-api/modules/forecast/router"
	"surfplan-api/modules/forecast/service"
	spotrepo "surfplan-api/modules/spot/repository"

	"github.com/labstack/echo/v4"
)

// Init initializes the forecast module and registers routes
func Init(e *echo.Echo, db database.Database, c *cache.Cache, mw *middleware.Middleware, cfg *config.Config) *service.ForecastService {
	spots := spotrepo.NewSpotRepository(db)
	fcCache := repository.NewForecastCache(c, time.Duration(cfg.Forecast.CacheTTLMinutes)*time.Minute)
	provider := client.NewOpenMeteoClient(cfg.Forecast.MarineBaseURL, cfg.Forecast.WeatherBaseURL)

	svc := service.NewForecastService(spots, fcCache, provider)
	ctrl := controller.NewForecastController(svc)
	rtr := router.NewForecastRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
