package otp

import (
	"time"

	"github.com/xlzd/gotp"
)

// Generator validates time-based one-time passwords.
type Generator interface {
	Verify(code string, secret string) bool
}

type GOTPGenerator struct{}

func NewGOTPGenerator() *GOTPGenerator {
	return &GOTPGenerator{}
}

func (g *GOTPGenerator) Verify(code string, secret string) bool {
	if code == "" || secret == "" {
		return false
	}

	return gotp.NewDefaultTOTP(secret).Verify(code, time.Now().Unix())
}
