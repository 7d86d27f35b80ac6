package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Heman1223/bhuvik-enterprises/internal/queue/task"
	"github.com/Heman1223/bhuvik-enterprises/internal/worker"

	"github.com/hibiken/asynq"
)

type registrationConfirmationProcessor struct {
	workers *worker.Workers
}

func NewRegistrationConfirmationProcessor(workers *worker.Workers) *registrationConfirmationProcessor {
	return &registrationConfirmationProcessor{
		workers: workers,
	}
}

func (p *registrationConfirmationProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.RegistrationConfirmation
	err := json.Unmarshal(t.Payload(), &data)
	if err != nil {
		return fmt.Errorf("process registration confirmation task json unmarshal failed: %w", err)
	}

	if err = p.workers.ConfirmationSender.SendRegistrationConfirmation(ctx, data); err != nil {
		return fmt.Errorf("send registration confirmation failed: %w", err)
	}

	return nil
}
