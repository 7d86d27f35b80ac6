package service

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/Heman1223/bhuvik-enterprises/internal/config"
	"github.com/Heman1223/bhuvik-enterprises/internal/domain"
	"github.com/Heman1223/bhuvik-enterprises/internal/gateway/razorpay"
	"github.com/Heman1223/bhuvik-enterprises/internal/repository"
	"github.com/Heman1223/bhuvik-enterprises/internal/upload"
	"github.com/Heman1223/bhuvik-enterprises/pkg/auth"
	"github.com/Heman1223/bhuvik-enterprises/pkg/hash"
	"github.com/Heman1223/bhuvik-enterprises/pkg/otp"
)

type Services struct {
	Registrations Registrations
	Leads         Leads
	Admins        Admins
}

type Deps struct {
	Config       *config.Config
	Repos        *repository.Repositories
	Gateway      PaymentGateway
	Resumes      ResumeStore
	Hasher       hash.PasswordHasher
	TokenManager auth.TokenManager
	OtpGenerator otp.Generator
}

func NewServices(deps Deps) *Services {
	return &Services{
		Registrations: newRegistrationService(deps.Repos.Registrations,
			deps.Gateway,
			deps.Resumes,
			deps.Config,
		),
		Leads:  newLeadService(deps.Repos.Leads),
		Admins: newAdminService(deps.Hasher, deps.TokenManager, deps.OtpGenerator, deps.Config.Admin),
	}
}

// PaymentGateway abstracts the payment provider so tests can inject a fake
// verifier/initiator; the production implementation is razorpay.Client.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency string, receipt string) (*razorpay.Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
	KeyID() string
}

// ResumeStore is the upload custodian as the coordinator sees it.
type ResumeStore interface {
	Accept(fh *multipart.FileHeader) (*upload.StoredResume, error)
	Discard(name string)
	Resolve(name string) (string, error)
	ExtractText(name string) (string, error)
}

type Registrations interface {
	CreateOrder(ctx context.Context) (*OrderOutput, error)
	Commit(ctx context.Context, input CommitInput) (*domain.Registration, error)
	GetAllPaid(ctx context.Context) ([]domain.Registration, error)
	ResumeFile(name string) (string, error)
	ResumeText(name string) (string, error)
	PublicConfig() PublicConfig
}

type Leads interface {
	Create(ctx context.Context, input LeadInput) (*domain.Lead, error)
	GetAll(ctx context.Context) ([]domain.Lead, error)
}

type Admins interface {
	Login(password string, otpCode string) (string, time.Duration, error)
}
