package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"voyago/models"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// NewReminderTask builds the asynq task for one booking reminder.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReminderSend, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues pre-trip reminders a day before the
// booking's start date.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

// ScheduleBookingReminder enqueues the reminder task for one booking.
// Bookings starting within the next day get no reminder.
func (s *AsynqReminderScheduler) ScheduleBookingReminder(booking *models.Booking) error {
	checkIn, err := time.Parse("2006-01-02", booking.CheckIn)
	if err != nil {
		return fmt.Errorf("booking %s has no parsable start date: %w", booking.ID, err)
	}

	fireAt := checkIn.Add(-24 * time.Hour)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID: booking.ID,
		UserID:    booking.UserID,
		Title:     fmt.Sprintf("Upcoming %s booking", booking.ProductKind),
		Body:      fmt.Sprintf("%s starts on %s (ref %s)", booking.ProductName, booking.CheckIn, booking.Reference),
		FireDate:  fireAt.Format(time.RFC3339),
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", booking.ID, err)
	}
	return nil
}
