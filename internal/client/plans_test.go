package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/Quantum-Tecnology/Pagarme-SDK/internal/http"
	"github.com/Quantum-Tecnology/Pagarme-SDK/pkg/pagarme"
)

func TestPlansClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/core/v5/plans", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "Plan A", body["name"])
		assert.Equal(t, "month", body["interval"])
		assert.Equal(t, "prepaid", body["billing_type"])
		assert.Equal(t, "BRL", body["currency"])
		assert.Equal(t, float64(1), body["interval_count"])

		items, ok := body["items"].([]interface{})
		require.True(t, ok)
		require.Len(t, items, 1)

		item, ok := items[0].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "1", item["id"])
		assert.Equal(t, float64(1000), item["amount"])
		assert.Equal(t, float64(1), item["quantity"])
		assert.NotContains(t, item, "name")
		assert.NotContains(t, item, "description")

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"message":"ok","data":{"id":"plan_1","items":[]}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	result := client.Plans().Create(context.Background(), &pagarme.PlanCreateRequest{
		Name:        "Plan A",
		Interval:    pagarme.IntervalMonth,
		BillingType: pagarme.BillingTypePrepaid,
		Items: []pagarme.PlanItem{
			{ID: "1", Name: "Item A", Amount: 1000, Quantity: 1},
		},
	})

	assert.True(t, result.Success)
	assert.Equal(t, http.StatusCreated, result.HTTPCode)
	assert.Equal(t, "ok", result.Message)
	assert.Equal(t, "plan_1", result.Data.Get("id").String())
}

func TestPlansClient_Create_NormalizesCasing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "month", body["interval"])
		assert.Equal(t, "prepaid", body["billing_type"])
		assert.Equal(t, "BRL", body["currency"])
		assert.Equal(t, "MY STORE", body["statement_descriptor"])

		methods, ok := body["payment_methods"].([]interface{})
		require.True(t, ok)
		assert.Equal(t, []interface{}{"credit_card"}, methods)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true,"data":{}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	result := client.Plans().Create(context.Background(), &pagarme.PlanCreateRequest{
		Name:                "Plan B",
		Interval:            "MONTH",
		BillingType:         "Prepaid",
		Currency:            "brl",
		StatementDescriptor: "my store",
		PaymentMethods:      []pagarme.PaymentMethod{"CREDIT_CARD"},
	})

	assert.True(t, result.Success)
}

func TestPlansClient_Create_ValidationFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should reach the gateway on validation failure")
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	result := client.Plans().Create(context.Background(), &pagarme.PlanCreateRequest{
		Name:        "Plan C",
		Interval:    "quarterly",
		BillingType: "whenever",
	})

	assert.False(t, result.Success)
	assert.Equal(t, 0, result.HTTPCode)
	assert.True(t, result.ValidationFailed())

	message, ok := result.Errors.Get("interval")
	require.True(t, ok)
	assert.Equal(t, "Invalid interval", message)

	message, ok = result.Errors.Get("billing_type")
	require.True(t, ok)
	assert.Equal(t, "Invalid billing type", message)
}

func TestPlansClient_Create_ApplicationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"The request is invalid.","errors":{"name":["The name field is required."]}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	result := client.Plans().Create(context.Background(), &pagarme.PlanCreateRequest{
		Name:        "Plan D",
		Interval:    pagarme.IntervalMonth,
		BillingType: pagarme.BillingTypePrepaid,
	})

	assert.False(t, result.Success)
	assert.Equal(t, http.StatusUnprocessableEntity, result.HTTPCode)
	assert.Equal(t, "The request is invalid.", result.Message)

	message, ok := result.Errors.Get("name")
	require.True(t, ok)
	assert.Equal(t, "The name field is required.", message)
}

func TestPlansClient_List_DefaultPagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/core/v5/plans", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("size"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":[{"id":"plan_1"}]}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	result := client.Plans().List(context.Background(), nil)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Data.Len())
}

func TestPlansClient_Get_UsesCache(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		assert.Equal(t, "/core/v5/plans/plan_1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"plan_1"}}`))
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	plans := NewPlansClient(httpClient, pagarme.NewMemoryCache(10, time.Minute))

	first := plans.Get(context.Background(), "plan_1")
	second := plans.Get(context.Background(), "plan_1")

	assert.True(t, first.Success)
	assert.True(t, second.Success)
	assert.Equal(t, "plan_1", second.Data.Get("id").String())
	assert.Equal(t, 1, requests)
}

func TestPlansClient_Delete_InvalidatesCache(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			requests++
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"plan_1"}}`))
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	plans := NewPlansClient(httpClient, pagarme.NewMemoryCache(10, time.Minute))

	_ = plans.Get(context.Background(), "plan_1")
	_ = plans.Delete(context.Background(), "plan_1")
	_ = plans.Get(context.Background(), "plan_1")

	assert.Equal(t, 2, requests)
}

func TestPlansClient_Update_PutsToCollection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/core/v5/plans", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"plan_1"}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	result := client.Plans().Update(context.Background(), &pagarme.PlanCreateRequest{
		Name:        "Plan A",
		Interval:    pagarme.IntervalMonth,
		BillingType: pagarme.BillingTypePrepaid,
	})

	assert.True(t, result.Success)
}

func TestPlansClient_UpdateMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/core/v5/plans/plan_1/metadata", r.URL.Path)
		assert.Equal(t, "PATCH", r.Method)

		var body map[string]map[string]string

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, map[string]string{"tier": "gold"}, body["metadata"])

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"plan_1"}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	result := client.Plans().UpdateMetadata(context.Background(), "plan_1", map[string]string{"tier": "gold"})
	assert.True(t, result.Success)
}

func TestPlansClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil,
		internalhttp.WithRetryConfig(1, time.Millisecond))
	plans := NewPlansClient(httpClient, nil)

	result := plans.Get(context.Background(), "plan_1")
	assert.False(t, result.Success)
	assert.Equal(t, 0, result.HTTPCode)
	assert.NotEmpty(t, result.Message)
	assert.Equal(t, 0, result.Data.Len())
}
