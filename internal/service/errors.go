package service

import "errors"

// Commit pipeline failure taxonomy. Every failure inside the pipeline is
// mapped to exactly one of these at the coordinator boundary; nothing below
// it leaks to the transport layer.
var (
	ErrInvalidFile               = errors.New("invalid resume file")
	ErrConsentRequired           = errors.New("consent is required")
	ErrPaymentVerificationFailed = errors.New("payment verification failed")
	ErrPaymentSystemUnavailable  = errors.New("payment system unavailable")
	ErrAllocationFailed          = errors.New("serial allocation failed")
	ErrPersistenceFailed         = errors.New("registration could not be saved")

	ErrResumeNotFound   = errors.New("resume file not found")
	ErrResumeUnreadable = errors.New("resume file could not be parsed")

	ErrInvalidAdminCredentials = errors.New("invalid admin credentials")
)
