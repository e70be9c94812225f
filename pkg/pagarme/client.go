package pagarme

import (
	"context"
	"time"
)

// Client is the entry point to the gateway resource clients.
type Client interface {
	Cards() CardsClient
	Customers() CustomersClient
	Orders() OrdersClient
	Plans() PlansClient
	Subscriptions() SubscriptionsClient
}

// CardsClient manages cards stored on a customer.
type CardsClient interface {
	Create(ctx context.Context, customerID string, request *CardCreateRequest) *Envelope
	Delete(ctx context.Context, customerID, cardID string) *Envelope
}

// CustomersClient manages gateway customers.
type CustomersClient interface {
	Create(ctx context.Context, request *CustomerCreateRequest) *Envelope
}

// OrdersClient submits orders built with OrderBuilder. Create returns a Go
// error only for builder construction errors (programmer mistakes such as a
// card payment without a CVV); every gateway outcome, including validation
// failure, is reported through the envelope.
type OrdersClient interface {
	Create(ctx context.Context, order OrderBuilder) (*Envelope, error)
}

// PlansClient manages recurrence plans.
type PlansClient interface {
	List(ctx context.Context, opts *PlanListOptions) *Envelope
	Get(ctx context.Context, planID string) *Envelope
	Create(ctx context.Context, request *PlanCreateRequest) *Envelope
	Update(ctx context.Context, request *PlanCreateRequest) *Envelope
	UpdateMetadata(ctx context.Context, planID string, metadata map[string]string) *Envelope
	Delete(ctx context.Context, planID string) *Envelope
}

// SubscriptionsClient manages subscriptions.
type SubscriptionsClient interface {
	List(ctx context.Context, opts *SubscriptionListOptions) *Envelope
	Get(ctx context.Context, subscriptionID string) *Envelope
	Create(ctx context.Context, request *SubscriptionCreateRequest) *Envelope
	Cancel(ctx context.Context, subscriptionID string, cancelPendingInvoices bool) *Envelope
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config carries everything a client needs. It is an explicit value passed
// to the constructor; nothing is resolved from global state.
//
// # Credentials
//
// SecretKey is sent as a Basic authorization header whose value is the
// base64 encoding of "secretKey:". AccessToken, when set, takes precedence
// and is sent as a Bearer token instead. One of the two is required.
//
// # Retries
//
// Requests are attempted up to 3 times in total with a fixed 2 second wait
// between attempts. Only transport-level failures are retried; a response
// received from the gateway — whatever its status — ends the retry loop.
// RetryMax and RetryWait override the defaults when positive.
type Config struct {
	// BaseURL: base URL for the gateway API (e.g. "https://api.pagar.me").
	// gatewayclient.New normalizes this value by trimming a trailing slash
	// and adding "https://" if no scheme is present.
	BaseURL string

	// SecretKey: account secret key, sent Basic-encoded.
	SecretKey string
	// AccessToken: bearer token alternative to SecretKey.
	AccessToken string

	// RetryMax: additional attempts after the first (default 2).
	RetryMax int
	// RetryWait: fixed wait between attempts (default 2s).
	RetryWait time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Cache: optional response cache for idempotent lookups (plan and
	// subscription Get). Nil disables caching.
	Cache *CacheConfig
}
