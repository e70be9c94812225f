package client

import (
	"fmt"
	"strings"

	"github.com/Quantum-Tecnology/Pagarme-SDK/internal/auth"
	"github.com/Quantum-Tecnology/Pagarme-SDK/internal/http"
	"github.com/Quantum-Tecnology/Pagarme-SDK/pkg/pagarme"
)

// Client implements the pagarme.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     pagarme.Logger
	cache      pagarme.Cache

	// Resource clients
	cards         pagarme.CardsClient
	customers     pagarme.CustomersClient
	orders        pagarme.OrdersClient
	plans         pagarme.PlansClient
	subscriptions pagarme.SubscriptionsClient
}

// New creates a new gateway client from an explicit configuration value.
func New(config *pagarme.Config) (*Client, error) {
	if config == nil {
		return nil, pagarme.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, pagarme.ErrBaseURLRequired
	}

	credentials, err := createCredentials(config)
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(config.BaseURL, credentials, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.BaseURL,
		logger:     config.Logger,
	}

	if config.Cache != nil {
		cache, err := pagarme.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("configuring cache: %w", err)
		}

		client.cache = cache
	}

	client.initializeResourceClients()

	return client, nil
}

// createCredentials selects the credential provider. An access token takes
// precedence over a secret key.
func createCredentials(config *pagarme.Config) (auth.CredentialProvider, error) {
	if config.AccessToken != "" {
		return auth.NewBearerCredential(config.AccessToken), nil
	}

	if config.SecretKey != "" {
		return auth.NewBasicCredential(config.SecretKey), nil
	}

	return nil, pagarme.ErrCredentialRequired
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *pagarme.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 && config.RetryWait > 0 {
		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, config.RetryWait))
	}

	return httpOpts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.cards = NewCardsClient(c.httpClient)
	c.customers = NewCustomersClient(c.httpClient)
	c.orders = NewOrdersClient(c.httpClient)
	c.plans = NewPlansClient(c.httpClient, c.cache)
	c.subscriptions = NewSubscriptionsClient(c.httpClient, c.cache)
}

// Cards implements pagarme.Client.Cards.
func (c *Client) Cards() pagarme.CardsClient {
	return c.cards
}

// Customers implements pagarme.Client.Customers.
func (c *Client) Customers() pagarme.CustomersClient {
	return c.customers
}

// Orders implements pagarme.Client.Orders.
func (c *Client) Orders() pagarme.OrdersClient {
	return c.orders
}

// Plans implements pagarme.Client.Plans.
func (c *Client) Plans() pagarme.PlansClient {
	return c.plans
}

// Subscriptions implements pagarme.Client.Subscriptions.
func (c *Client) Subscriptions() pagarme.SubscriptionsClient {
	return c.subscriptions
}

// cacheKey builds a cache key that is valid for every backend. NATS KV
// restricts key characters, so anything outside its set is mapped away.
func cacheKey(resource, id string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-', r == '_', r == '=':
			return r
		default:
			return '_'
		}
	}, id)

	return resource + "." + sanitized
}

// loggerAdapter adapts pagarme.Logger to http.Logger.
type loggerAdapter struct {
	logger pagarme.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
