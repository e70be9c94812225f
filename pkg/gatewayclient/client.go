// Package gatewayclient provides the main entry point for creating Pagarme gateway clients
package gatewayclient

import (
	"fmt"
	"strings"

	"github.com/Quantum-Tecnology/Pagarme-SDK/internal/client"
	"github.com/Quantum-Tecnology/Pagarme-SDK/pkg/pagarme"
)

// New creates a new gateway client from an explicit configuration value.
func New(config *pagarme.Config) (pagarme.Client, error) {
	if config == nil {
		return nil, pagarme.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, pagarme.ErrBaseURLRequired
	}

	// Normalize base URL
	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	config.BaseURL = baseURL

	gatewayClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return gatewayClient, nil
}

// NewWithSecretKey creates a new client with a base URL and secret key.
func NewWithSecretKey(baseURL, secretKey string) (pagarme.Client, error) {
	return New(&pagarme.Config{
		BaseURL:   baseURL,
		SecretKey: secretKey,
	})
}

// NewWithAccessToken creates a new client with a base URL and access token.
func NewWithAccessToken(baseURL, accessToken string) (pagarme.Client, error) {
	return New(&pagarme.Config{
		BaseURL:     baseURL,
		AccessToken: accessToken,
	})
}
