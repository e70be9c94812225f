package constants

import "errors"

// Configuration errors.
var (
	ErrNoCredentialConfigured = errors.New("no credential configured, set a secret key or access token")
	ErrNoBaseURLConfigured    = errors.New("no base URL configured")
)

// Command argument counts.
const (
	// TwoArguments indicates commands requiring exactly 2 arguments.
	TwoArguments = 2
)

// Command argument errors.
var (
	ErrRequestFileRequired = errors.New("request file required")
	ErrInvalidMetadataPair = errors.New("metadata must be key=value")
)
