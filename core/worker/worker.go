package worker

import (
	"surfplan-api/core/config"
	"surfplan-api/core/logger"

	"github.com/hibiken/asynq"
)

// PeriodicTask pairs a cron spec with the task it enqueues.
type PeriodicTask struct {
	Spec string
	Task *asynq.Task
}

func RedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}
}

func NewClient(cfg config.RedisConfig) *asynq.Client {
	return asynq.NewClient(RedisOpt(cfg))
}

// Start launches the asynq worker and the periodic scheduler in background
// goroutines and returns a function that stops both.
func Start(cfg config.RedisConfig, mux *asynq.ServeMux, periodic []PeriodicTask) func() {
	srv := asynq.NewServer(RedisOpt(cfg), asynq.Config{
		Concurrency: 4,
	})
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Error("worker: asynq server stopped", err)
		}
	}()

	sched := asynq.NewScheduler(RedisOpt(cfg), nil)
	for _, p := range periodic {
		if _, err := sched.Register(p.Spec, p.Task); err != nil {
			logger.Error("worker: failed to register periodic task", "spec", p.Spec, "error", err)
		}
	}
	go func() {
		if err := sched.Run(); err != nil {
			logger.Error("worker: scheduler stopped", err)
		}
	}()

	return func() {
		sched.Shutdown()
		srv.Shutdown()
	}
}
