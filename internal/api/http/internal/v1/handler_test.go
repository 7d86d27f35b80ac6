package v1

import (
	"bytes"
	"context"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"github.com/Heman1223/bhuvik-enterprises/internal/config"
	"github.com/Heman1223/bhuvik-enterprises/internal/domain"
	"github.com/Heman1223/bhuvik-enterprises/internal/service"
	"github.com/Heman1223/bhuvik-enterprises/pkg/auth"
	pkgvalidator "github.com/Heman1223/bhuvik-enterprises/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRegistrations struct {
	mock.Mock
}

func (m *mockRegistrations) CreateOrder(ctx context.Context) (*service.OrderOutput, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.OrderOutput), args.Error(1)
}

func (m *mockRegistrations) Commit(ctx context.Context, input service.CommitInput) (*domain.Registration, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Registration), args.Error(1)
}

func (m *mockRegistrations) GetAllPaid(ctx context.Context) ([]domain.Registration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Registration), args.Error(1)
}

func (m *mockRegistrations) ResumeFile(name string) (string, error) {
	args := m.Called(name)

	return args.String(0), args.Error(1)
}

func (m *mockRegistrations) ResumeText(name string) (string, error) {
	args := m.Called(name)

	return args.String(0), args.Error(1)
}

func (m *mockRegistrations) PublicConfig() service.PublicConfig {
	args := m.Called()

	return args.Get(0).(service.PublicConfig)
}

type mockLeads struct {
	mock.Mock
}

func (m *mockLeads) Create(ctx context.Context, input service.LeadInput) (*domain.Lead, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *mockLeads) GetAll(ctx context.Context) ([]domain.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Lead), args.Error(1)
}

type mockAdmins struct {
	mock.Mock
}

func (m *mockAdmins) Login(password string, otpCode string) (string, time.Duration, error) {
	args := m.Called(password, otpCode)

	return args.String(0), args.Get(1).(time.Duration), args.Error(2)
}

type testEnv struct {
	router        *gin.Engine
	registrations *mockRegistrations
	leads         *mockLeads
	admins        *mockAdmins
	tokenManager  auth.TokenManager
}

var registerValidatorOnce sync.Once

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)
	registerValidatorOnce.Do(pkgvalidator.RegisterGinValidator)

	tokenManager, err := auth.NewManager(config.JWTConfig{
		SigningKey:     "signing-key",
		AccessTokenTTL: time.Hour,
	})
	require.NoError(t, err)

	registrations := new(mockRegistrations)
	leads := new(mockLeads)
	admins := new(mockAdmins)

	cfg := &config.Config{
		Registration: config.RegistrationConfig{
			Amount:       99,
			Currency:     "INR",
			SerialPrefix: "JF",
			WhatsappLink: "https://chat.whatsapp.com/test",
		},
	}

	handler := NewHandler(&service.Services{
		Registrations: registrations,
		Leads:         leads,
		Admins:        admins,
	}, tokenManager, cfg)

	router := gin.New()
	handler.Init(router.Group("/api"))

	return &testEnv{
		router:        router,
		registrations: registrations,
		leads:         leads,
		admins:        admins,
		tokenManager:  tokenManager,
	}
}

func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()

	token, _, err := e.tokenManager.NewJWT("admin")
	require.NoError(t, err)

	return token
}

func commitFormFields() map[string]string {
	return map[string]string{
		"orderId":           "order_MkCeIonV2OuzZr",
		"paymentId":         "pay_MkCfVENUNAtcFw",
		"signature":         "deadbeef",
		"name":              "Asha Rao",
		"phone":             "9876543210",
		"email":             "asha.rao@example.com",
		"gender":            "Female",
		"dateOfBirth":       "2002-04-12",
		"collegeName":       "Model Engineering College",
		"course":            "B.Tech",
		"specialization":    "Computer Science",
		"yearOfPassing":     "2024",
		"currentSemester":   "8",
		"keySkills":         "Go, SQL",
		"interestedJobRole": "Backend Developer",
		"preferredLocation": "Kochi",
		"hasExperience":     "false",
		"consent":           "true",
	}
}

func multipartBody(t *testing.T, fields map[string]string, withResume bool) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}

	if withResume {
		part, err := w.CreateFormFile("resume", "resume.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4\n%%EOF\n"))
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())

	return &body, w.FormDataContentType()
}
