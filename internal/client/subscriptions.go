package client

import (
	"context"
	"time"

	"github.com/Quantum-Tecnology/Pagarme-SDK/internal/http"
	"github.com/Quantum-Tecnology/Pagarme-SDK/pkg/pagarme"
)

const subscriptionsPath = "/core/v5/subscriptions"

// SubscriptionsClient implements pagarme.SubscriptionsClient.
type SubscriptionsClient struct {
	httpClient *http.Client
	cache      pagarme.Cache
}

// NewSubscriptionsClient creates a new subscriptions client.
func NewSubscriptionsClient(httpClient *http.Client, cache pagarme.Cache) *SubscriptionsClient {
	return &SubscriptionsClient{
		httpClient: httpClient,
		cache:      cache,
	}
}

// List implements pagarme.SubscriptionsClient.List.
func (c *SubscriptionsClient) List(ctx context.Context, opts *pagarme.SubscriptionListOptions) *pagarme.Envelope {
	resp, err := c.httpClient.Get(ctx, subscriptionsPath, opts.ToValues())
	if err != nil {
		return transportFailure(err)
	}

	return envelopeFromResponse(resp)
}

// Get implements pagarme.SubscriptionsClient.Get.
func (c *SubscriptionsClient) Get(ctx context.Context, subscriptionID string) *pagarme.Envelope {
	key := cacheKey("subscriptions", subscriptionID)

	if c.cache != nil {
		if entry, err := c.cache.Get(ctx, key); err == nil {
			return envelopeFromResponse(&http.Response{
				StatusCode: entry.StatusCode,
				Body:       entry.Body,
			})
		}
	}

	resp, err := c.httpClient.Get(ctx, subscriptionsPath+"/"+subscriptionID, nil)
	if err != nil {
		return transportFailure(err)
	}

	env := envelopeFromResponse(resp)
	if env.Success && c.cache != nil {
		_ = c.cache.Set(ctx, key, &pagarme.CacheEntry{
			StatusCode: resp.StatusCode,
			Body:       resp.Body,
			StoredAt:   time.Now(),
		})
	}

	return env
}

// Create implements pagarme.SubscriptionsClient.Create.
func (c *SubscriptionsClient) Create(ctx context.Context, request *pagarme.SubscriptionCreateRequest) *pagarme.Envelope {
	normalized := normalizeSubscriptionCreate(request)

	if errs := pagarme.ValidateSubscriptionCreate(normalized); !errs.Empty() {
		return validationFailure(errs)
	}

	resp, err := c.httpClient.Post(ctx, subscriptionsPath, subscriptionPayload(normalized))
	if err != nil {
		return transportFailure(err)
	}

	return envelopeFromResponse(resp)
}

// Cancel implements pagarme.SubscriptionsClient.Cancel.
func (c *SubscriptionsClient) Cancel(ctx context.Context, subscriptionID string, cancelPendingInvoices bool) *pagarme.Envelope {
	body := map[string]bool{"cancel_pending_invoices": cancelPendingInvoices}

	resp, err := c.httpClient.Delete(ctx, subscriptionsPath+"/"+subscriptionID, body)
	if err != nil {
		return transportFailure(err)
	}

	if c.cache != nil {
		_ = c.cache.Delete(ctx, cacheKey("subscriptions", subscriptionID))
	}

	return envelopeFromResponse(resp)
}
