package repository

import (
	"context"

	"github.com/Heman1223/bhuvik-enterprises/internal/domain"

	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Registrations Registrations
	Leads         Leads
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Registrations: newRegistrationRepository(db),
		Leads:         newLeadRepository(db),
	}
}

type Registrations interface {
	// CreatePaid allocates the next serial for the registration's year and
	// inserts the row, both inside one transaction. It fills
	// reg.SerialNumber on success. A payment order id that was already
	// committed yields domain.ErrDuplicateEntry; counter-store failures are
	// wrapped with domain.ErrSerialUnavailable.
	CreatePaid(ctx context.Context, reg *domain.Registration, serialPrefix string) error
	GetByOrderID(ctx context.Context, orderID string) (*domain.Registration, error)
	GetAllPaid(ctx context.Context) ([]domain.Registration, error)
}

type Leads interface {
	Create(ctx context.Context, lead *domain.Lead) error
	GetAll(ctx context.Context) ([]domain.Lead, error)
}
