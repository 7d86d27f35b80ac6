package worker

import (
	"context"

	"github.com/Heman1223/bhuvik-enterprises/internal/config"
	"github.com/Heman1223/bhuvik-enterprises/internal/queue/task"
	emailProvider "github.com/Heman1223/bhuvik-enterprises/pkg/email"
	"github.com/Heman1223/bhuvik-enterprises/pkg/receipt"
)

type Workers struct {
	ConfirmationSender ConfirmationSender
}

type Deps struct {
	EmailProvider emailProvider.Sender
	Receipts      *receipt.Generator
	Config        *config.Config
}

type ConfirmationSender interface {
	SendRegistrationConfirmation(ctx context.Context, data task.RegistrationConfirmation) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		ConfirmationSender: newConfirmationSender(deps.EmailProvider, deps.Receipts, deps.Config),
	}
}
