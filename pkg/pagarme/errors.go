package pagarme

import "errors"

// Static errors for err113 compliance.
var (
	ErrConfigRequired     = errors.New("config is required")
	ErrBaseURLRequired    = errors.New("base URL is required")
	ErrCredentialRequired = errors.New("a secret key or access token is required")

	// Programmer errors raised by the order builder. Unlike field validation
	// failures these abort construction immediately: a card payment without a
	// CVV is a coding mistake, not user input to report back.
	ErrCardCVVRequired = errors.New("card cvv is required for card payments")
	ErrCardRequired    = errors.New("a card or card_id is required for card payments")

	// Cache configuration errors.
	ErrNATSConfigRequired   = errors.New("NATS configuration required for NATS cache")
	ErrUnsupportedCacheType = errors.New("unsupported cache type")
	ErrCacheDisabled        = errors.New("cache disabled")
	ErrCacheMiss            = errors.New("cache miss")
)
