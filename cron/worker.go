package cron

import (
	"context"
	"log"
	"time"

	"myadvisor/config"
	"myadvisor/services/booking"
	"myadvisor/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeAppointmentSweep = "appointment:sweep"

// InitSweepWorker starts the background worker and scheduler that mark past
// appointments as completed.
func InitSweepWorker(bookingSvc booking.BookingService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSweepDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAppointmentSweep, handleSweepTask(bookingSvc))

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{
		Location: time.UTC,
	})
	if _, err := scheduler.Register("@every 10m", asynq.NewTask(TypeAppointmentSweep, nil)); err != nil {
		log.Fatalf("[SweepWorker] failed to register sweep schedule: %v", err)
	}

	go func() {
		log.Println("[SweepWorker] starting scheduler...")
		if err := scheduler.Run(); err != nil {
			log.Fatalf("[SweepWorker] scheduler failed: %v", err)
		}
	}()

	// Start async worker with retry logic
	go func() {
		log.Println("[SweepWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SweepWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SweepWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleSweepTask(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		swept, err := bookingSvc.CompletePastAppointments()
		if err != nil {
			utils.GetLogger().Error("appointment sweep failed", zap.Error(err))
			return err
		}
		if swept > 0 {
			utils.GetLogger().Info("appointment sweep completed", zap.Int64("marked", swept))
		}
		return nil
	}
}
