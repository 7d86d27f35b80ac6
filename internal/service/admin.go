package service

import (
	"time"

	"github.com/Heman1223/bhuvik-enterprises/internal/config"
	"github.com/Heman1223/bhuvik-enterprises/pkg/auth"
	"github.com/Heman1223/bhuvik-enterprises/pkg/hash"
	"github.com/Heman1223/bhuvik-enterprises/pkg/otp"
)

const adminSubject = "admin"

type adminService struct {
	hasher       hash.PasswordHasher
	tokenManager auth.TokenManager
	otpGenerator otp.Generator
	config       config.AdminConfig
}

func newAdminService(hasher hash.PasswordHasher,
	tokenManager auth.TokenManager,
	otpGenerator otp.Generator,
	config config.AdminConfig,
) *adminService {
	return &adminService{
		hasher:       hasher,
		tokenManager: tokenManager,
		otpGenerator: otpGenerator,
		config:       config,
	}
}

// Login checks the admin password against the configured salted hash and,
// when a TOTP secret is configured, the one-time code as well. On success it
// issues a bearer token for the admin endpoints.
func (s *adminService) Login(password string, otpCode string) (string, time.Duration, error) {
	if !s.hasher.Compare(password, s.config.PasswordHash) {
		return "", 0, ErrInvalidAdminCredentials
	}

	if s.config.TOTPSecret != "" && !s.otpGenerator.Verify(otpCode, s.config.TOTPSecret) {
		return "", 0, ErrInvalidAdminCredentials
	}

	return s.tokenManager.NewJWT(adminSubject)
}
