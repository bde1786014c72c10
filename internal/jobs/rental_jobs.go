package jobs

import (
	"context"

	"carrental-backend/internal/logger"
)

// SendOverdueReminders emails every customer holding an open rental whose
// due date has passed. It never mutates rental state; a rental stays open
// until the car is actually returned.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()
		today := jr.clock.Now().Format("2006-01-02")

		overdue, err := jr.store.Rentals().ListOverdue(ctx, today)
		if err != nil {
			logger.Error("Failed to list overdue rentals", "error", err)
			return
		}

		count := 0
		for _, rt := range overdue {
			customer, err := jr.store.Customers().GetByID(ctx, rt.CustomerID)
			if err != nil {
				logger.Error("Failed to load customer for overdue rental", "error", err, "rental_id", rt.ID)
				continue
			}
			car, err := jr.store.Cars().GetByRegistration(ctx, rt.CarRegistration)
			if err != nil {
				logger.Error("Failed to load car for overdue rental", "error", err, "rental_id", rt.ID)
				continue
			}

			if err := jr.emailSvc.SendOverdueReminder(ctx, customer.ContactInfo, customer.Name, car.Model, rt.DueDate); err != nil {
				logger.Error("Failed to send overdue reminder", "error", err, "rental_id", rt.ID)
				continue
			}
			count++
			logger.Debug("Sent overdue reminder",
				"rental_id", rt.ID,
				"customer_id", rt.CustomerID,
				"registration", rt.CarRegistration,
				"due_date", rt.DueDate)
		}

		logger.Info("Sent overdue reminders", "count", count, "overdue", len(overdue))
	})
}
