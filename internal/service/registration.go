package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/Heman1223/bhuvik-enterprises/internal/config"
	"github.com/Heman1223/bhuvik-enterprises/internal/domain"
	"github.com/Heman1223/bhuvik-enterprises/internal/gateway/razorpay"
	qclient "github.com/Heman1223/bhuvik-enterprises/internal/queue/client"
	"github.com/Heman1223/bhuvik-enterprises/internal/queue/task"
	"github.com/Heman1223/bhuvik-enterprises/internal/repository"
	"github.com/Heman1223/bhuvik-enterprises/internal/upload"
	"github.com/Heman1223/bhuvik-enterprises/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type registrationService struct {
	repo    repository.Registrations
	gateway PaymentGateway
	resumes ResumeStore
	config  *config.Config
}

func newRegistrationService(repo repository.Registrations,
	gateway PaymentGateway,
	resumes ResumeStore,
	config *config.Config,
) *registrationService {
	return &registrationService{
		repo:    repo,
		gateway: gateway,
		resumes: resumes,
		config:  config,
	}
}

// PaymentProof is the triple the gateway hands the client after a successful
// charge.
type PaymentProof struct {
	OrderID   string
	PaymentID string
	Signature string
}

// CommitInput carries everything a single registration attempt submits: the
// payment proof, the form fields and the resume file.
type CommitInput struct {
	Proof PaymentProof

	Name        string
	Phone       string
	Email       string
	Gender      domain.Gender
	DateOfBirth time.Time

	CollegeName     string
	Course          string
	Specialization  string
	YearOfPassing   int
	CurrentSemester string

	KeySkills         string
	InterestedJobRole string
	PreferredLocation string
	HasExperience     bool

	Consent bool

	Resume *multipart.FileHeader
}

type OrderOutput struct {
	OrderID  string
	Amount   int64
	Currency string
	KeyID    string
}

type PublicConfig struct {
	KeyID        string
	Amount       int64
	Currency     string
	WhatsappLink string
}

// CreateOrder registers a fixed-price order with the gateway. The returned
// amount is in the smallest currency unit, as the checkout widget expects.
func (s *registrationService) CreateOrder(ctx context.Context) (*OrderOutput, error) {
	amount := s.config.Registration.Amount * 100
	receipt := fmt.Sprintf("receipt_%d", time.Now().UnixMilli())

	order, err := s.gateway.CreateOrder(ctx, amount, s.config.Registration.Currency, receipt)
	if err != nil {
		if errors.Is(err, razorpay.ErrGatewayUnavailable) || errors.Is(err, razorpay.ErrNotConfigured) {
			return nil, fmt.Errorf("%w: %s", ErrPaymentSystemUnavailable, err)
		}
		return nil, fmt.Errorf("create gateway order: %w", err)
	}

	return &OrderOutput{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    s.gateway.KeyID(),
	}, nil
}

// Commit runs the registration pipeline to a terminal state: accept the
// resume file, verify the payment signature, allocate a serial and persist
// the row. The file is on disk before verification because it arrives in the
// same request as the payment proof, so every failure past acceptance
// discards it exactly once; the success path never discards.
func (s *registrationService) Commit(ctx context.Context, input CommitInput) (*domain.Registration, error) {
	if !input.Consent {
		return nil, ErrConsentRequired
	}

	stored, err := s.resumes.Accept(input.Resume)
	if err != nil {
		if errors.Is(err, upload.ErrInvalidFile) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err)
		}
		return nil, fmt.Errorf("accept resume: %w", err)
	}

	if !s.gateway.VerifySignature(input.Proof.OrderID, input.Proof.PaymentID, input.Proof.Signature) {
		s.resumes.Discard(stored.Name)
		return nil, ErrPaymentVerificationFailed
	}

	id, err := uuid.NewV7()
	if err != nil {
		s.resumes.Discard(stored.Name)
		return nil, fmt.Errorf("%w: generate id: %s", ErrPersistenceFailed, err)
	}

	reg := &domain.Registration{
		ID:          id,
		Name:        strings.TrimSpace(input.Name),
		Phone:       strings.TrimSpace(input.Phone),
		Email:       strings.ToLower(strings.TrimSpace(input.Email)),
		Gender:      input.Gender,
		DateOfBirth: input.DateOfBirth,

		CollegeName:     strings.TrimSpace(input.CollegeName),
		Course:          strings.TrimSpace(input.Course),
		Specialization:  strings.TrimSpace(input.Specialization),
		YearOfPassing:   input.YearOfPassing,
		CurrentSemester: strings.TrimSpace(input.CurrentSemester),

		KeySkills:         strings.TrimSpace(input.KeySkills),
		InterestedJobRole: strings.TrimSpace(input.InterestedJobRole),
		PreferredLocation: strings.TrimSpace(input.PreferredLocation),
		HasExperience:     input.HasExperience,

		ResumePath:         stored.Name,
		ResumeOriginalName: stored.OriginalName,
		Consent:            input.Consent,

		PaymentOrderID:   input.Proof.OrderID,
		PaymentID:        input.Proof.PaymentID,
		PaymentSignature: input.Proof.Signature,
		PaymentStatus:    domain.PaymentStatusPaid,
		Amount:           s.config.Registration.Amount,

		CreatedAt: time.Now(),
	}

	if err := s.repo.CreatePaid(ctx, reg, s.config.Registration.SerialPrefix); err != nil {
		s.resumes.Discard(stored.Name)

		switch {
		case errors.Is(err, domain.ErrDuplicateEntry):
			// The same payment proof was already committed. Return the
			// existing row instead of allocating a second serial.
			existing, getErr := s.repo.GetByOrderID(ctx, input.Proof.OrderID)
			if getErr != nil {
				return nil, fmt.Errorf("%w: lookup committed order: %s", ErrPersistenceFailed, getErr)
			}
			logger.Info("payment order already committed",
				zap.String("order_id", input.Proof.OrderID),
				zap.String("serial", existing.SerialNumber))
			return existing, nil
		case errors.Is(err, domain.ErrSerialUnavailable):
			return nil, fmt.Errorf("%w: %s", ErrAllocationFailed, err)
		default:
			return nil, fmt.Errorf("%w: %s", ErrPersistenceFailed, err)
		}
	}

	s.enqueueConfirmation(ctx, reg)

	return reg, nil
}

// enqueueConfirmation schedules the confirmation email. Best effort: the
// registration is already durable, so a queue failure is logged, not
// returned.
func (s *registrationService) enqueueConfirmation(ctx context.Context, reg *domain.Registration) {
	if !s.config.Email.Enabled {
		return
	}

	client := qclient.GetClient(ctx)
	if client == nil {
		logger.Warn("queue client not configured, confirmation email skipped",
			zap.String("serial", reg.SerialNumber))
		return
	}

	t, err := task.NewRegistrationConfirmationTask(reg.Email, reg.Name, reg.SerialNumber, reg.Amount)
	if err != nil {
		logger.Error("build confirmation task failed", zap.Error(err))
		return
	}

	if _, err := client.EnqueueContext(ctx, t); err != nil {
		logger.Error("enqueue confirmation task failed",
			zap.String("serial", reg.SerialNumber), zap.Error(err))
	}
}

func (s *registrationService) GetAllPaid(ctx context.Context) ([]domain.Registration, error) {
	regs, err := s.repo.GetAllPaid(ctx)
	if err != nil {
		return nil, fmt.Errorf("get paid registrations: %w", err)
	}

	return regs, nil
}

func (s *registrationService) ResumeFile(name string) (string, error) {
	path, err := s.resumes.Resolve(name)
	if err != nil {
		if errors.Is(err, upload.ErrNotFound) {
			return "", ErrResumeNotFound
		}
		return "", fmt.Errorf("resolve resume: %w", err)
	}

	return path, nil
}

func (s *registrationService) ResumeText(name string) (string, error) {
	text, err := s.resumes.ExtractText(name)
	if err != nil {
		if errors.Is(err, upload.ErrNotFound) {
			return "", ErrResumeNotFound
		}
		return "", fmt.Errorf("%w: %s", ErrResumeUnreadable, err)
	}

	return text, nil
}

func (s *registrationService) PublicConfig() PublicConfig {
	return PublicConfig{
		KeyID:        s.gateway.KeyID(),
		Amount:       s.config.Registration.Amount,
		Currency:     s.config.Registration.Currency,
		WhatsappLink: s.config.Registration.WhatsappLink,
	}
}
