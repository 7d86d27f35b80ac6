package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Heman1223/bhuvik-enterprises/internal/domain"
	"github.com/Heman1223/bhuvik-enterprises/internal/repository"

	"github.com/google/uuid"
)

type leadService struct {
	repo repository.Leads
}

func newLeadService(repo repository.Leads) *leadService {
	return &leadService{
		repo: repo,
	}
}

type LeadInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

func (s *leadService) Create(ctx context.Context, input LeadInput) (*domain.Lead, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate lead id: %w", err)
	}

	lead := &domain.Lead{
		ID:        id,
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:     strings.TrimSpace(input.Phone),
		Message:   strings.TrimSpace(input.Message),
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("create lead: %w", err)
	}

	return lead, nil
}

func (s *leadService) GetAll(ctx context.Context) ([]domain.Lead, error) {
	leads, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get leads: %w", err)
	}

	return leads, nil
}
