package client

import (
	"context"

	"github.com/Quantum-Tecnology/Pagarme-SDK/internal/http"
	"github.com/Quantum-Tecnology/Pagarme-SDK/pkg/pagarme"
)

const ordersPath = "/orders"

// OrdersClient implements pagarme.OrdersClient.
type OrdersClient struct {
	httpClient *http.Client
}

// NewOrdersClient creates a new orders client.
func NewOrdersClient(httpClient *http.Client) *OrdersClient {
	return &OrdersClient{
		httpClient: httpClient,
	}
}

// Create implements pagarme.OrdersClient.Create. A builder construction
// error (a card payment missing its CVV, or one naming no card at all)
// comes back as a Go error; every other outcome is an envelope.
func (c *OrdersClient) Create(ctx context.Context, order pagarme.OrderBuilder) (*pagarme.Envelope, error) {
	request, err := order.Request()
	if err != nil {
		return nil, err
	}

	if errs := order.Validate(); !errs.Empty() {
		return validationFailure(errs), nil
	}

	resp, err := c.httpClient.Post(ctx, ordersPath, orderPayload(request))
	if err != nil {
		return transportFailure(err), nil
	}

	return envelopeFromResponse(resp), nil
}
