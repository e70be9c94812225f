package client

import (
	"context"

	"github.com/Quantum-Tecnology/Pagarme-SDK/internal/http"
	"github.com/Quantum-Tecnology/Pagarme-SDK/pkg/pagarme"
)

// CardsClient implements pagarme.CardsClient.
type CardsClient struct {
	httpClient *http.Client
}

// NewCardsClient creates a new cards client.
func NewCardsClient(httpClient *http.Client) *CardsClient {
	return &CardsClient{
		httpClient: httpClient,
	}
}

// Create implements pagarme.CardsClient.Create.
func (c *CardsClient) Create(ctx context.Context, customerID string, request *pagarme.CardCreateRequest) *pagarme.Envelope {
	if errs := pagarme.ValidateCardCreate(request); !errs.Empty() {
		return validationFailure(errs)
	}

	resp, err := c.httpClient.Post(ctx, customersPath+"/"+customerID+"/cards", request)
	if err != nil {
		return transportFailure(err)
	}

	return envelopeFromResponse(resp)
}

// Delete implements pagarme.CardsClient.Delete.
func (c *CardsClient) Delete(ctx context.Context, customerID, cardID string) *pagarme.Envelope {
	resp, err := c.httpClient.Delete(ctx, customersPath+"/"+customerID+"/cards/"+cardID, nil)
	if err != nil {
		return transportFailure(err)
	}

	return envelopeFromResponse(resp)
}
