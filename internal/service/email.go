package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"carrental-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewEmailService returns a SendGrid-backed email service. With an empty
// API key sending becomes a no-op, which is how the memory storage mode
// runs locally.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	if s.apiKey == "" {
		logger.Debug("Email sending disabled, skipping", "to", to, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	logger.ExternalServiceResult("sendgrid", "send", err, "to", to, "subject", subject)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendRentalReceipt(ctx context.Context, email, name, model string, days, totalCostCents int32) error {
	subject := fmt.Sprintf("Rental receipt: %s", model)
	body := fmt.Sprintf("Hello %s,\n\nYou have rented the %s for %d day(s).\nTotal cost: %s.\n\nSafe driving,\nThe Rental Team",
		name, model, days, formatCents(totalCostCents))
	return s.send(email, name, subject, body)
}

func (s *emailService) SendReturnConfirmation(ctx context.Context, email, name, model, returnDate string) error {
	subject := fmt.Sprintf("Return confirmed: %s", model)
	body := fmt.Sprintf("Hello %s,\n\nWe have recorded the return of the %s on %s.\n\nThank you,\nThe Rental Team",
		name, model, returnDate)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendOverdueReminder(ctx context.Context, email, name, model, dueDate string) error {
	subject := fmt.Sprintf("Overdue rental: %s", model)
	body := fmt.Sprintf("Hello %s,\n\nThe %s was due back on %s and has not been returned yet.\nPlease return it as soon as possible.\n\nThe Rental Team",
		name, model, dueDate)
	return s.send(email, name, subject, body)
}

func formatCents(cents int32) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
