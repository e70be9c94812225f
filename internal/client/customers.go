package client

import (
	"context"

	"github.com/Quantum-Tecnology/Pagarme-SDK/internal/http"
	"github.com/Quantum-Tecnology/Pagarme-SDK/pkg/pagarme"
)

const customersPath = "/customers"

// CustomersClient implements pagarme.CustomersClient.
type CustomersClient struct {
	httpClient *http.Client
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(httpClient *http.Client) *CustomersClient {
	return &CustomersClient{
		httpClient: httpClient,
	}
}

// Create implements pagarme.CustomersClient.Create.
func (c *CustomersClient) Create(ctx context.Context, request *pagarme.CustomerCreateRequest) *pagarme.Envelope {
	if errs := pagarme.ValidateCustomerCreate(request); !errs.Empty() {
		return validationFailure(errs)
	}

	resp, err := c.httpClient.Post(ctx, customersPath, request)
	if err != nil {
		return transportFailure(err)
	}

	return envelopeFromResponse(resp)
}
