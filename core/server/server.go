package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"surfplan-api/core/cache"
	"surfplan-api/core/config"
	"surfplan-api/core/database"
	"surfplan-api/core/logger"
	"surfplan-api/core/middleware"
	"surfplan-api/core/utils"
	"surfplan-api/core/validator"
	"surfplan-api/core/worker"
	"surfplan-api/modules/auth"
	"surfplan-api/modules/forecast"
	fctask "surfplan-api/modules/forecast/task"
	"surfplan-api/modules/notification"
	notifrepo "surfplan-api/modules/notification/repository"
	"surfplan-api/modules/planner"
	"surfplan-api/modules/preference"
	prefrepo "surfplan-api/modules/preference/repository"
	"surfplan-api/modules/spot"
	spotrepo "surfplan-api/modules/spot/repository"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run wires the whole application together and blocks until shutdown.
func Run() error {
	cfg := config.Load()
	logger.Init(cfg.Server.LogLevel)
	if err := cfg.Validate(); err != nil {
		return err
	}
	utils.InitTokens(cfg.JWT.Secret, cfg.JWT.AccessTTLMinutes, cfg.JWT.RefreshTTLHours)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}

	c, err := cache.InitCache(cfg.Redis)
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: cfg.Server.AllowOrigins}))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.String(),
			)
			return nil
		},
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	mw := middleware.New(c)

	// Modules
	auth.Init(e, db, c, mw, cfg)
	spot.Init(e, db, mw)
	prefSvc := preference.Init(e, db, mw)
	fcSvc := forecast.Init(e, db, c, mw, cfg)
	planner.Init(e, mw, cfg, prefSvc, fcSvc)
	notification.Init(e, db, mw)

	// Background forecast refresh + alerting
	refresh := fctask.NewRefreshHandler(
		spotrepo.NewSpotRepository(db),
		prefrepo.NewPreferenceRepository(db),
		prefrepo.NewAvailabilityRepository(db),
		notifrepo.NewNotificationRepository(db),
		fcSvc,
	)
	mux := asynq.NewServeMux()
	mux.HandleFunc(fctask.TypeForecastRefresh, refresh.ProcessTask)
	stopWorker := worker.Start(cfg.Redis, mux, []worker.PeriodicTask{
		{Spec: cfg.Forecast.RefreshCron, Task: fctask.NewForecastRefreshTask()},
	})

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		logger.Info("Server listening", "addr", addr)
		if err := e.Start(addr); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	stopWorker()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
