package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrExternalAPI wraps every failure of an external provider:
	// transport errors, non-2xx statuses and undecodable bodies.
	ErrExternalAPI = errors.New("external API error")

	ErrNotConfigured  = fmt.Errorf("%w: not configured", ErrExternalAPI)
	ErrUnauthorized   = errors.New("provider rejected credentials")
	ErrNotFound       = errors.New("not found at provider")
	ErrRateLimited    = errors.New("provider rate limit exceeded")
	ErrBreakerOpen    = errors.New("provider temporarily unavailable")
	ErrInvalidBarcode = errors.New("invalid barcode")
)
