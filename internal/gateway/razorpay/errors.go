package razorpay

import "errors"

var (
	// ErrNotConfigured means the key id/secret are absent. Detected at
	// construction so a misconfigured deployment fails at startup, not on the
	// first payment.
	ErrNotConfigured = errors.New("razorpay credentials not configured")

	// ErrGatewayUnavailable covers network failures, timeouts and non-200
	// gateway responses.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)
