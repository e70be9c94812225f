package client

import (
	"context"
	"time"

	"github.com/Quantum-Tecnology/Pagarme-SDK/internal/http"
	"github.com/Quantum-Tecnology/Pagarme-SDK/pkg/pagarme"
)

const plansPath = "/core/v5/plans"

// PlansClient implements pagarme.PlansClient.
type PlansClient struct {
	httpClient *http.Client
	cache      pagarme.Cache
}

// NewPlansClient creates a new plans client. The cache, when non-nil, serves
// repeated Get lookups.
func NewPlansClient(httpClient *http.Client, cache pagarme.Cache) *PlansClient {
	return &PlansClient{
		httpClient: httpClient,
		cache:      cache,
	}
}

// List implements pagarme.PlansClient.List.
func (c *PlansClient) List(ctx context.Context, opts *pagarme.PlanListOptions) *pagarme.Envelope {
	resp, err := c.httpClient.Get(ctx, plansPath, opts.ToValues())
	if err != nil {
		return transportFailure(err)
	}

	return envelopeFromResponse(resp)
}

// Get implements pagarme.PlansClient.Get.
func (c *PlansClient) Get(ctx context.Context, planID string) *pagarme.Envelope {
	key := cacheKey("plans", planID)

	if c.cache != nil {
		if entry, err := c.cache.Get(ctx, key); err == nil {
			return envelopeFromResponse(&http.Response{
				StatusCode: entry.StatusCode,
				Body:       entry.Body,
			})
		}
	}

	resp, err := c.httpClient.Get(ctx, plansPath+"/"+planID, nil)
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

// Create implements pagarme.PlansClient.Create.
func (c *PlansClient) Create(ctx context.Context, request *pagarme.PlanCreateRequest) *pagarme.Envelope {
	return c.store(ctx, request, c.httpClient.Post)
}

// Update implements pagarme.PlansClient.Update. The gateway replaces plans
// with a PUT against the collection path.
func (c *PlansClient) Update(ctx context.Context, request *pagarme.PlanCreateRequest) *pagarme.Envelope {
	return c.store(ctx, request, c.httpClient.Put)
}

func (c *PlansClient) store(
	ctx context.Context,
	request *pagarme.PlanCreateRequest,
	send func(context.Context, string, interface{}) (*http.Response, error),
) *pagarme.Envelope {
	normalized := normalizePlanCreate(request)

	if errs := pagarme.ValidatePlanCreate(normalized); !errs.Empty() {
		return validationFailure(errs)
	}

	resp, err := send(ctx, plansPath, planPayload(normalized))
	if err != nil {
		return transportFailure(err)
	}

	return envelopeFromResponse(resp)
}

// UpdateMetadata implements pagarme.PlansClient.UpdateMetadata.
func (c *PlansClient) UpdateMetadata(ctx context.Context, planID string, metadata map[string]string) *pagarme.Envelope {
	body := map[string]map[string]string{"metadata": metadata}

	resp, err := c.httpClient.Patch(ctx, plansPath+"/"+planID+"/metadata", body)
	if err != nil {
		return transportFailure(err)
	}

	c.invalidate(ctx, planID)

	return envelopeFromResponse(resp)
}

// Delete implements pagarme.PlansClient.Delete.
func (c *PlansClient) Delete(ctx context.Context, planID string) *pagarme.Envelope {
	resp, err := c.httpClient.Delete(ctx, plansPath+"/"+planID, nil)
	if err != nil {
		return transportFailure(err)
	}

	c.invalidate(ctx, planID)

	return envelopeFromResponse(resp)
}

func (c *PlansClient) invalidate(ctx context.Context, planID string) {
	if c.cache != nil {
		_ = c.cache.Delete(ctx, cacheKey("plans", planID))
	}
}
