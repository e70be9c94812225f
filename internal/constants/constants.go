package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits. A request is attempted up to DefaultRetryMax+1 times in
// total, waiting DefaultRetryWait between attempts.
const (
	// DefaultRetryMax is the default number of retries after the first attempt.
	DefaultRetryMax = 2

	// DefaultRetryWait is the fixed wait between attempts.
	DefaultRetryWait = 2 * time.Second
)

// HTTP status classification.
const (
	// HTTPStatusSuccessFloor is the lowest successful status code.
	HTTPStatusSuccessFloor = 200

	// HTTPStatusSuccessCeiling is the first non-successful status code.
	HTTPStatusSuccessCeiling = 300
)

// Display limits.
const (
	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// StringTruncationLength is the default length for truncating strings.
	StringTruncationLength = 80
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for tabular output format.
	FormatTable = "table"
)
