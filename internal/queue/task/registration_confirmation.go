package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	RegistrationConfirmationTaskName  = "registrationConfirmationTask"
	RegistrationConfirmationQueueName = "registrationConfirmationQueue"
)

type RegistrationConfirmation struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	SerialNumber string `json:"serial_number"`
	Amount       int64  `json:"amount"`
}

func NewRegistrationConfirmationTask(email, name, serialNumber string, amount int64) (*asynq.Task, error) {
	data := RegistrationConfirmation{
		Email:        email,
		Name:         name,
		SerialNumber: serialNumber,
		Amount:       amount,
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		RegistrationConfirmationTaskName,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue(RegistrationConfirmationQueueName),
	), nil
}
