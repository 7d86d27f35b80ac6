package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Heman1223/bhuvik-enterprises/internal/domain"
	"github.com/Heman1223/bhuvik-enterprises/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCommitRegistrationCreated(t *testing.T) {
	env := newTestEnv(t)

	env.registrations.On("Commit", mock.Anything, mock.MatchedBy(func(input service.CommitInput) bool {
		return input.Proof.OrderID == "order_MkCeIonV2OuzZr" &&
			input.Proof.PaymentID == "pay_MkCfVENUNAtcFw" &&
			input.Gender == domain.GenderFemale &&
			input.Consent &&
			input.Resume != nil
	})).Return(&domain.Registration{
		SerialNumber: "JF2026-001",
		Name:         "Asha Rao",
		Email:        "asha.rao@example.com",
	}, nil).Once()

	body, contentType := multipartBody(t, commitFormFields(), true)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/registrations", body)
	req.Header.Set("Content-Type", contentType)
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp registrationCommittedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "JF2026-001", resp.SerialNumber)
	assert.Equal(t, "asha.rao@example.com", resp.Email)
	assert.Equal(t, "https://chat.whatsapp.com/test", resp.WhatsappLink)

	env.registrations.AssertExpectations(t)
}

func TestCommitRegistrationMissingResume(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartBody(t, commitFormFields(), false)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/registrations", body)
	req.Header.Set("Content-Type", contentType)
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorStruct
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ErrorCode(InvalidResumeFileCode), resp.ErrorCode)

	env.registrations.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything)
}

func TestCommitRegistrationValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(fields map[string]string)
	}{
		{name: "missing consent", mutate: func(f map[string]string) { f["consent"] = "false" }},
		{name: "missing order id", mutate: func(f map[string]string) { delete(f, "orderId") }},
		{name: "missing signature", mutate: func(f map[string]string) { delete(f, "signature") }},
		{name: "bad email", mutate: func(f map[string]string) { f["email"] = "not-an-email" }},
		{name: "bad phone", mutate: func(f map[string]string) { f["phone"] = "12345" }},
		{name: "bad gender", mutate: func(f map[string]string) { f["gender"] = "Robot" }},
		{name: "bad date", mutate: func(f map[string]string) { f["dateOfBirth"] = "12-04-2002" }},
		{name: "year too small", mutate: func(f map[string]string) { f["yearOfPassing"] = "1950" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			fields := commitFormFields()
			tt.mutate(fields)

			body, contentType := multipartBody(t, fields, true)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/registrations", body)
			req.Header.Set("Content-Type", contentType)
			env.router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			env.registrations.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything)
		})
	}
}

func TestCommitRegistrationServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"invalid file", service.ErrInvalidFile, http.StatusBadRequest, InvalidResumeFileCode},
		{"consent required", service.ErrConsentRequired, http.StatusBadRequest, ConsentRequiredCode},
		{"bad signature", service.ErrPaymentVerificationFailed, http.StatusBadRequest, PaymentVerificationFailedCode},
		{"gateway down", service.ErrPaymentSystemUnavailable, http.StatusInternalServerError, PaymentSystemUnavailableCode},
		{"allocation failed", service.ErrAllocationFailed, http.StatusInternalServerError, SerialAllocationFailedCode},
		{"persistence failed", service.ErrPersistenceFailed, http.StatusInternalServerError, PersistenceFailedCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			env.registrations.On("Commit", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			body, contentType := multipartBody(t, commitFormFields(), true)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/registrations", body)
			req.Header.Set("Content-Type", contentType)
			env.router.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)

			var resp ErrorStruct
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, ErrorCode(tt.wantCode), resp.ErrorCode)
		})
	}
}

func TestCreateOrderEndpoint(t *testing.T) {
	env := newTestEnv(t)

	env.registrations.On("CreateOrder", mock.Anything).Return(&service.OrderOutput{
		OrderID:  "order_1",
		Amount:   9900,
		Currency: "INR",
		KeyID:    "rzp_test_key",
	}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", nil)
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp orderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "order_1", resp.OrderID)
	assert.Equal(t, int64(9900), resp.Amount)
	assert.Equal(t, "rzp_test_key", resp.KeyID)
}

func TestCreateOrderEndpointGatewayDown(t *testing.T) {
	env := newTestEnv(t)

	env.registrations.On("CreateOrder", mock.Anything).
		Return(nil, service.ErrPaymentSystemUnavailable).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", nil)
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestPublicConfigEndpoint(t *testing.T) {
	env := newTestEnv(t)

	env.registrations.On("PublicConfig").Return(service.PublicConfig{
		KeyID:        "rzp_test_key",
		Amount:       99,
		Currency:     "INR",
		WhatsappLink: "https://chat.whatsapp.com/test",
	}).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/config", nil)
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp publicConfigResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "rzp_test_key", resp.KeyID)
	assert.Equal(t, int64(99), resp.Amount)
}

func TestListRegistrationsRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/registrations", nil)
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env.registrations.AssertNotCalled(t, "GetAllPaid", mock.Anything)
}

func TestListRegistrationsRejectsForeignSubject(t *testing.T) {
	env := newTestEnv(t)

	token, _, err := env.tokenManager.NewJWT("someone-else")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/registrations", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListRegistrations(t *testing.T) {
	env := newTestEnv(t)

	env.registrations.On("GetAllPaid", mock.Anything).Return([]domain.Registration{
		{
			Name:             "Asha Rao",
			Email:            "asha.rao@example.com",
			PaymentOrderID:   "order_1",
			PaymentSignature: "super-secret-signature",
			PaymentStatus:    domain.PaymentStatusPaid,
			SerialNumber:     "JF2026-002",
			CreatedAt:        time.Now(),
		},
		{
			Name:          "Ravi Kumar",
			Email:         "ravi@example.com",
			PaymentStatus: domain.PaymentStatusPaid,
			SerialNumber:  "JF2026-001",
		},
	}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/registrations", nil)
	req.Header.Set("Authorization", "Bearer "+env.adminToken(t))
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp registrationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Data, 2)

	// The signature must never reach a client, admin or not.
	assert.NotContains(t, w.Body.String(), "super-secret-signature")
	assert.NotContains(t, w.Body.String(), "payment_signature")
}

func TestResumeTextEndpoint(t *testing.T) {
	env := newTestEnv(t)

	env.registrations.On("ResumeText", "stored.pdf").Return("extracted text", nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/registrations/resume/stored.pdf/text", nil)
	req.Header.Set("Authorization", "Bearer "+env.adminToken(t))
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "extracted text"))
}

func TestResumeTextEndpointErrors(t *testing.T) {
	env := newTestEnv(t)

	env.registrations.On("ResumeText", "missing.pdf").Return("", service.ErrResumeNotFound).Once()
	env.registrations.On("ResumeText", "corrupt.pdf").Return("", service.ErrResumeUnreadable).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/registrations/resume/missing.pdf/text", nil)
	req.Header.Set("Authorization", "Bearer "+env.adminToken(t))
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/registrations/resume/corrupt.pdf/text", nil)
	req.Header.Set("Authorization", "Bearer "+env.adminToken(t))
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDownloadResumeNotFound(t *testing.T) {
	env := newTestEnv(t)

	env.registrations.On("ResumeFile", "missing.pdf").Return("", service.ErrResumeNotFound).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/registrations/resume/missing.pdf", nil)
	req.Header.Set("Authorization", "Bearer "+env.adminToken(t))
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
