//go:build integration
// +build integration

// Package integration contains end-to-end tests that run against a live
// gateway. They are gated behind the integration build tag and skip
// themselves when the required environment is absent.
package integration

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/Quantum-Tecnology/Pagarme-SDK/pkg/gatewayclient"
	"github.com/Quantum-Tecnology/Pagarme-SDK/pkg/pagarme"
)

// TestConfig carries the gateway coordinates for integration runs.
type TestConfig struct {
	BaseURL   string
	SecretKey string
}

// LoadTestConfig reads the integration environment.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		BaseURL:   os.Getenv("PAGARME_TEST_API"),
		SecretKey: os.Getenv("PAGARME_TEST_SECRET_KEY"),
	}
}

// SkipIfMissingConfig skips the test when the environment is not set up.
func (c *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if c.BaseURL == "" || c.SecretKey == "" {
		t.Skip("PAGARME_TEST_API and PAGARME_TEST_SECRET_KEY must be set for integration tests")
	}
}

// NewTestClient builds a client for the configured test gateway.
func (c *TestConfig) NewTestClient(t *testing.T) pagarme.Client {
	t.Helper()

	client, err := gatewayclient.NewWithSecretKey(c.BaseURL, c.SecretKey)
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}

	return client
}

// GenerateTestName returns a unique name so parallel runs do not collide.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
