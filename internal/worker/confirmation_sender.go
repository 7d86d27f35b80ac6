package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/Heman1223/bhuvik-enterprises/internal/config"
	"github.com/Heman1223/bhuvik-enterprises/internal/queue/task"
	emailProvider "github.com/Heman1223/bhuvik-enterprises/pkg/email"
	"github.com/Heman1223/bhuvik-enterprises/pkg/logger"
	"github.com/Heman1223/bhuvik-enterprises/pkg/receipt"

	"go.uber.org/zap"
)

type confirmationSender struct {
	sender   emailProvider.Sender
	receipts *receipt.Generator
	config   *config.Config
}

func newConfirmationSender(
	sender emailProvider.Sender,
	receipts *receipt.Generator,
	config *config.Config,
) *confirmationSender {
	return &confirmationSender{
		sender:   sender,
		receipts: receipts,
		config:   config,
	}
}

type confirmationEmailInput struct {
	Name         string
	SerialNumber string
	Amount       int64
	Currency     string
	WhatsappLink string
}

func (s *confirmationSender) SendRegistrationConfirmation(ctx context.Context, data task.RegistrationConfirmation) error {
	subject := fmt.Sprintf("Registration confirmed: %s", data.SerialNumber)

	templateInput := confirmationEmailInput{
		Name:         data.Name,
		SerialNumber: data.SerialNumber,
		Amount:       data.Amount,
		Currency:     s.config.Registration.Currency,
		WhatsappLink: s.config.Registration.WhatsappLink,
	}
	sendInput := emailProvider.SendEmailInput{Subject: subject, To: data.Email}

	if err := sendInput.GenerateBodyFromHTML(s.config.Email.Templates.Confirmation, templateInput); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	// The receipt is a nicety; a generator failure should not block the
	// confirmation itself.
	if s.receipts != nil {
		pdfBytes, err := s.receipts.Generate(receipt.Input{
			SerialNumber: data.SerialNumber,
			Name:         data.Name,
			Email:        data.Email,
			Amount:       data.Amount,
			Currency:     s.config.Registration.Currency,
			PaidAt:       time.Now(),
		})
		if err != nil {
			logger.Warn("generate receipt pdf failed", zap.String("serial", data.SerialNumber), zap.Error(err))
		} else {
			sendInput.AttachmentName = data.SerialNumber + ".pdf"
			sendInput.Attachment = pdfBytes
		}
	}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}
