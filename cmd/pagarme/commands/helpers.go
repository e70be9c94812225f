package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Quantum-Tecnology/Pagarme-SDK/internal/constants"
	"github.com/Quantum-Tecnology/Pagarme-SDK/pkg/gatewayclient"
	"github.com/Quantum-Tecnology/Pagarme-SDK/pkg/pagarme"
)

// Output formats.
const (
	OutputFormatJSON = constants.FormatJSON
	OutputFormatYAML = constants.FormatYAML
)

// CreateClient builds a gateway client from the effective configuration
// (flags, environment, config file).
func CreateClient() (pagarme.Client, error) {
	baseURL := viper.GetString("api")
	if baseURL == "" {
		return nil, constants.ErrNoBaseURLConfigured
	}

	config := &pagarme.Config{
		BaseURL:     baseURL,
		SecretKey:   viper.GetString("secret_key"),
		AccessToken: viper.GetString("token"),
		Debug:       viper.GetBool("verbose"),
	}

	if config.SecretKey == "" && config.AccessToken == "" {
		return nil, constants.ErrNoCredentialConfigured
	}

	if config.Debug {
		config.Logger = NewStderrLogger()
	}

	if cacheConfig := cacheConfigFromViper(); cacheConfig != nil {
		config.Cache = cacheConfig
	}

	client, err := gatewayclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// cacheConfigFromViper reads the optional cache settings. An empty cache
// type leaves caching disabled.
func cacheConfigFromViper() *pagarme.CacheConfig {
	cacheType := viper.GetString("cache")
	if cacheType == "" {
		return nil
	}

	config := &pagarme.CacheConfig{Type: pagarme.CacheType(cacheType)}

	if config.Type == pagarme.CacheTypeNATS {
		config.NATS = &pagarme.NATSKVConfig{
			URL:    viper.GetString("nats_url"),
			Bucket: viper.GetString("nats_bucket"),
		}
	}

	return config
}

// OutputEnvelope renders an operation result in the configured format.
func OutputEnvelope(env *pagarme.Envelope) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		err := encoder.Encode(env)
		if err != nil {
			return fmt.Errorf("encoding result to JSON: %w", err)
		}

		return nil
	case OutputFormatYAML:
		return outputEnvelopeYAML(env)
	default:
		return outputEnvelopeTable(env)
	}
}

// outputEnvelopeYAML goes through a JSON round trip so the envelope's custom
// JSON marshalling (ordered data, ordered errors) shapes the YAML document.
func outputEnvelopeYAML(env *pagarme.Envelope) error {
	raw, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	var doc interface{}

	err = json.Unmarshal(raw, &doc)
	if err != nil {
		return fmt.Errorf("decoding result: %w", err)
	}

	encoder := yaml.NewEncoder(os.Stdout)

	err = encoder.Encode(doc)
	if err != nil {
		return fmt.Errorf("encoding result to YAML: %w", err)
	}

	return nil
}

func outputEnvelopeTable(env *pagarme.Envelope) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("Success", strconv.FormatBool(env.Success))
	_ = table.Append("HTTP Code", strconv.Itoa(env.HTTPCode))

	if env.Message != "" {
		_ = table.Append("Message", env.Message)
	}

	for _, field := range env.Errors.Fields() {
		message, _ := env.Errors.Get(field)
		_ = table.Append("Error: "+field, message)
	}

	if data, err := env.Data.MarshalJSON(); err == nil {
		_ = table.Append("Data", string(data))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// loadRequestFile decodes a JSON or YAML request file into T. YAML goes
// through a JSON round trip so the struct json tags apply either way.
func loadRequestFile[T any](path string) (*T, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from an explicit user flag
	if err != nil {
		return nil, fmt.Errorf("reading request file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		var doc interface{}

		err = yaml.Unmarshal(data, &doc)
		if err != nil {
			return nil, fmt.Errorf("parsing YAML request file: %w", err)
		}

		data, err = json.Marshal(normalizeYAML(doc))
		if err != nil {
			return nil, fmt.Errorf("converting request file: %w", err)
		}
	}

	var request T

	err = json.Unmarshal(data, &request)
	if err != nil {
		return nil, fmt.Errorf("parsing request file: %w", err)
	}

	return &request, nil
}

// normalizeYAML rewrites yaml.v3 map[string]interface{} values so they can
// be encoded as JSON.
func normalizeYAML(doc interface{}) interface{} {
	switch value := doc.(type) {
	case map[string]interface{}:
		normalized := make(map[string]interface{}, len(value))
		for key, entry := range value {
			normalized[key] = normalizeYAML(entry)
		}

		return normalized
	case []interface{}:
		normalized := make([]interface{}, len(value))
		for i, entry := range value {
			normalized[i] = normalizeYAML(entry)
		}

		return normalized
	default:
		return doc
	}
}

// parseMetadata converts key=value arguments into a metadata map.
func parseMetadata(pairs []string) (map[string]string, error) {
	metadata := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidMetadataPair, pair)
		}

		metadata[key] = value
	}

	return metadata, nil
}

// StderrLogger writes structured log lines to stderr.
type StderrLogger struct{}

// NewStderrLogger creates a logger for verbose CLI output.
func NewStderrLogger() *StderrLogger {
	return &StderrLogger{}
}

func (l *StderrLogger) log(level, msg string, fields map[string]interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "[%s] %s", level, msg)

	for key, value := range fields {
		_, _ = fmt.Fprintf(os.Stderr, " %s=%v", key, value)
	}

	_, _ = fmt.Fprintln(os.Stderr)
}

// Debug implements pagarme.Logger.
func (l *StderrLogger) Debug(msg string, fields map[string]interface{}) {
	l.log("DEBUG", msg, fields)
}

// Info implements pagarme.Logger.
func (l *StderrLogger) Info(msg string, fields map[string]interface{}) {
	l.log("INFO", msg, fields)
}

// Warn implements pagarme.Logger.
func (l *StderrLogger) Warn(msg string, fields map[string]interface{}) {
	l.log("WARN", msg, fields)
}

// Error implements pagarme.Logger.
func (l *StderrLogger) Error(msg string, fields map[string]interface{}) {
	l.log("ERROR", msg, fields)
}
