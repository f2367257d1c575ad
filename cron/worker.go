package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"voyago/config"
	bookingRepo "voyago/database/repository/booking"
	"voyago/services/tasks"
	"voyago/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(bookings bookingRepo.BookingRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
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
	mux.HandleFunc(tasks.TypeReminderSend, handleReminderTask(bookings))

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting reminder worker")

		const maxAttempts = 5
		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("reminder worker failed to start",
					zap.Int("attempt", attempts), zap.Error(err))
				if attempts == maxAttempts {
					log.Fatal("reminder worker: max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(bookings bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p struct {
			BookingID string `json:"bookingId"`
			UserID    string `json:"userId"`
			Title     string `json:"title"`
			Body      string `json:"body"`
		}
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("reminder task has invalid payload", zap.Error(err))
			return err
		}

		booking, err := bookings.GetByID(ctx, p.BookingID)
		if err != nil {
			return err
		}
		if booking == nil || booking.Status != "confirmed" {
			// Cancelled or vanished bookings get no reminder.
			return nil
		}

		logger.Info("booking reminder fired",
			zap.String("bookingID", p.BookingID),
			zap.String("userID", p.UserID),
			zap.String("title", p.Title),
			zap.String("body", p.Body))

		return bookings.MarkReminderSent(ctx, p.BookingID, time.Now())
	}
}
