package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Quantum-Tecnology/Pagarme-SDK/pkg/pagarme"
)

func TestSubscriptionsClient_Create_StoredCard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/core/v5/subscriptions", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body map[string]interface{}

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "cus_1", body["customer_id"])
		assert.Equal(t, "credit_card", body["payment_method"])
		assert.Equal(t, "card_1", body["card_id"])
		assert.NotContains(t, body, "card_token")

		card, ok := body["card"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, map[string]interface{}{"cvv": "123"}, card)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"sub_1"}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	result := client.Subscriptions().Create(context.Background(), &pagarme.SubscriptionCreateRequest{
		CustomerID:    "cus_1",
		Description:   "Gold tier",
		PaymentMethod: pagarme.PaymentMethodCreditCard,
		Interval:      pagarme.IntervalMonth,
		BillingType:   pagarme.BillingTypePrepaid,
		Card: &pagarme.CardReference{
			CardID: "card_1",
			CVV:    "123",
		},
	})

	assert.True(t, result.Success)
	assert.Equal(t, http.StatusCreated, result.HTTPCode)
	assert.Equal(t, "sub_1", result.Data.Get("id").String())
}

func TestSubscriptionsClient_Create_FullCard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.NotContains(t, body, "card_id")
		assert.NotContains(t, body, "card_token")

		card, ok := body["card"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "4111111111111111", card["number"])
		assert.Equal(t, "JOHN DOE", card["holder_name"])

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true,"data":{}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	result := client.Subscriptions().Create(context.Background(), &pagarme.SubscriptionCreateRequest{
		CustomerID:    "cus_1",
		Description:   "Gold tier",
		PaymentMethod: pagarme.PaymentMethodCreditCard,
		Interval:      pagarme.IntervalMonth,
		BillingType:   pagarme.BillingTypePrepaid,
		Card: &pagarme.CardReference{
			Card: &pagarme.CardCreateRequest{
				Number:     "4111111111111111",
				HolderName: "JOHN DOE",
				ExpMonth:   12,
				ExpYear:    2030,
				CVV:        "123",
			},
		},
	})

	assert.True(t, result.Success)
}

func TestSubscriptionsClient_Create_ValidationAccumulates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should reach the gateway on validation failure")
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	result := client.Subscriptions().Create(context.Background(), &pagarme.SubscriptionCreateRequest{
		PaymentMethod: pagarme.PaymentMethodCreditCard,
		Interval:      pagarme.IntervalMonth,
		BillingType:   pagarme.BillingTypePrepaid,
	})

	assert.False(t, result.Success)
	assert.True(t, result.ValidationFailed())

	message, ok := result.Errors.Get("description")
	require.True(t, ok)
	assert.Equal(t, "Description is required when items is empty", message)

	message, ok = result.Errors.Get("card")
	require.True(t, ok)
	assert.Equal(t, "A card, card_id or card_token is required on payment method credit_card or debit_card", message)

	message, ok = result.Errors.Get("customer")
	require.True(t, ok)
	assert.Equal(t, "Customer or customer_id is required", message)
}

func TestSubscriptionsClient_Create_NormalizesItemStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}

		_ = json.NewDecoder(r.Body).Decode(&body)

		items, ok := body["items"].([]interface{})
		require.True(t, ok)
		require.Len(t, items, 1)

		item, ok := items[0].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "active", item["status"])

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true,"data":{}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	result := client.Subscriptions().Create(context.Background(), &pagarme.SubscriptionCreateRequest{
		CustomerID:    "cus_1",
		PaymentMethod: pagarme.PaymentMethodBoleto,
		Interval:      pagarme.IntervalMonth,
		BillingType:   pagarme.BillingTypePrepaid,
		Items: []pagarme.SubscriptionItem{
			{Description: "Seat", Quantity: 1, Status: "ACTIVE"},
		},
	})

	assert.True(t, result.Success)
}

func TestSubscriptionsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/core/v5/subscriptions", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "25", r.URL.Query().Get("size"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":[{"id":"sub_1"},{"id":"sub_2"}]}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	result := client.Subscriptions().List(context.Background(), &pagarme.SubscriptionListOptions{
		Page: 2,
		Size: 25,
	})

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Data.Len())
	assert.Equal(t, "sub_2", result.Data.Index(1).Get("id").String())
}

func TestSubscriptionsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/core/v5/subscriptions/sub_1", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"sub_1","status":"active"}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	result := client.Subscriptions().Get(context.Background(), "sub_1")
	assert.True(t, result.Success)
	assert.Equal(t, "active", result.Data.Get("status").String())
}

func TestSubscriptionsClient_Cancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/core/v5/subscriptions/sub_1", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)

		var body map[string]bool

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.True(t, body["cancel_pending_invoices"])

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"sub_1","status":"canceled"}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	result := client.Subscriptions().Cancel(context.Background(), "sub_1", true)
	assert.True(t, result.Success)
	assert.Equal(t, "canceled", result.Data.Get("status").String())
}

func TestSubscriptionsClient_Create_GatewayReportsFailureOn2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":false,"message":"card declined","data":{}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	result := client.Subscriptions().Create(context.Background(), &pagarme.SubscriptionCreateRequest{
		CustomerID:    "cus_1",
		Description:   "Gold tier",
		PaymentMethod: pagarme.PaymentMethodBoleto,
		Interval:      pagarme.IntervalMonth,
		BillingType:   pagarme.BillingTypePrepaid,
	})

	assert.False(t, result.Success)
	assert.Equal(t, http.StatusOK, result.HTTPCode)
	assert.Equal(t, "card declined", result.Message)
}
