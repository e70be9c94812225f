package client

import (
	"strings"

	"github.com/Quantum-Tecnology/Pagarme-SDK/pkg/pagarme"
)

// Payload builders normalize typed requests into the exact wire shape the
// gateway expects: enums lowercased, currency and statement descriptor
// uppercased, defaults applied, and bookkeeping fields projected away.
// Normalization happens before validation so mixed-case caller input passes
// the enum rules.

const (
	defaultCurrency      = "BRL"
	defaultIntervalCount = 1
)

type planItemWire struct {
	ID       string `json:"id,omitempty"`
	Amount   int    `json:"amount"`
	Quantity int    `json:"quantity"`
}

type planWire struct {
	Name                string            `json:"name"`
	Description         string            `json:"description,omitempty"`
	Shippable           bool              `json:"shippable"`
	PaymentMethods      []string          `json:"payment_methods,omitempty"`
	Installments        []int             `json:"installments,omitempty"`
	MinimumPrice        int               `json:"minimum_price,omitempty"`
	StatementDescriptor string            `json:"statement_descriptor,omitempty"`
	Currency            string            `json:"currency"`
	Interval            string            `json:"interval"`
	IntervalCount       int               `json:"interval_count"`
	TrialPeriodDays     int               `json:"trial_period_days,omitempty"`
	BillingType         string            `json:"billing_type"`
	BillingDays         []int             `json:"billing_days,omitempty"`
	Items               []planItemWire    `json:"items"`
	Metadata            map[string]string `json:"metadata,omitempty"`
}

// normalizePlanCreate returns a copy of the request with enum casing and
// defaults applied.
func normalizePlanCreate(req *pagarme.PlanCreateRequest) *pagarme.PlanCreateRequest {
	normalized := *req

	normalized.Interval = pagarme.Interval(strings.ToLower(string(req.Interval)))
	normalized.BillingType = pagarme.BillingType(strings.ToLower(string(req.BillingType)))
	normalized.Currency = strings.ToUpper(req.Currency)
	normalized.StatementDescriptor = strings.ToUpper(req.StatementDescriptor)

	if normalized.Currency == "" {
		normalized.Currency = defaultCurrency
	}

	if normalized.IntervalCount == 0 {
		normalized.IntervalCount = defaultIntervalCount
	}

	if len(req.PaymentMethods) > 0 {
		normalized.PaymentMethods = make([]pagarme.PaymentMethod, len(req.PaymentMethods))
		for i, method := range req.PaymentMethods {
			normalized.PaymentMethods[i] = pagarme.PaymentMethod(strings.ToLower(string(method)))
		}
	}

	return &normalized
}

// planPayload projects a normalized request onto the wire shape. Plan items
// carry only id, amount, and quantity.
func planPayload(req *pagarme.PlanCreateRequest) *planWire {
	wire := &planWire{
		Name:                req.Name,
		Description:         req.Description,
		Shippable:           req.Shippable,
		Installments:        req.Installments,
		MinimumPrice:        req.MinimumPrice,
		StatementDescriptor: req.StatementDescriptor,
		Currency:            req.Currency,
		Interval:            string(req.Interval),
		IntervalCount:       req.IntervalCount,
		TrialPeriodDays:     req.TrialPeriodDays,
		BillingType:         string(req.BillingType),
		BillingDays:         req.BillingDays,
		Items:               []planItemWire{},
		Metadata:            req.Metadata,
	}

	for _, method := range req.PaymentMethods {
		wire.PaymentMethods = append(wire.PaymentMethods, string(method))
	}

	for _, item := range req.Items {
		wire.Items = append(wire.Items, planItemWire{
			ID:       item.ID,
			Amount:   item.Amount,
			Quantity: item.Quantity,
		})
	}

	return wire
}

type subscriptionCardWire struct {
	CVV string `json:"cvv"`
}

type subscriptionWire struct {
	CustomerID          string                         `json:"customer_id,omitempty"`
	Customer            *pagarme.CustomerCreateRequest `json:"customer,omitempty"`
	PaymentMethod       string                         `json:"payment_method"`
	Interval            string                         `json:"interval"`
	Currency            string                         `json:"currency"`
	Description         string                         `json:"description,omitempty"`
	StatementDescriptor string                         `json:"statement_descriptor,omitempty"`
	MinimumPrice        int                            `json:"minimum_price,omitempty"`
	IntervalCount       int                            `json:"interval_count"`
	BillingType         string                         `json:"billing_type"`
	Installments        int                            `json:"installments,omitempty"`
	PricingScheme       *pagarme.PricingScheme         `json:"pricing_scheme,omitempty"`
	Quantity            int                            `json:"quantity,omitempty"`
	Increments          []pagarme.Increment            `json:"increments,omitempty"`
	Items               []pagarme.SubscriptionItem     `json:"items,omitempty"`
	Metadata            map[string]string              `json:"metadata,omitempty"`
	CardID              string                         `json:"card_id,omitempty"`
	CardToken           string                         `json:"card_token,omitempty"`
	Card                interface{}                    `json:"card,omitempty"`
}

// normalizeSubscriptionCreate returns a copy of the request with enum casing
// and defaults applied.
func normalizeSubscriptionCreate(req *pagarme.SubscriptionCreateRequest) *pagarme.SubscriptionCreateRequest {
	normalized := *req

	normalized.PaymentMethod = pagarme.PaymentMethod(strings.ToLower(string(req.PaymentMethod)))
	normalized.Interval = pagarme.Interval(strings.ToLower(string(req.Interval)))
	normalized.BillingType = pagarme.BillingType(strings.ToLower(string(req.BillingType)))
	normalized.Currency = strings.ToUpper(req.Currency)
	normalized.StatementDescriptor = strings.ToUpper(req.StatementDescriptor)

	if normalized.Currency == "" {
		normalized.Currency = defaultCurrency
	}

	if normalized.IntervalCount == 0 {
		normalized.IntervalCount = defaultIntervalCount
	}

	if len(req.Items) > 0 {
		normalized.Items = make([]pagarme.SubscriptionItem, len(req.Items))
		for i, item := range req.Items {
			item.Status = pagarme.ItemStatus(strings.ToLower(string(item.Status)))
			normalized.Items[i] = item
		}
	}

	return &normalized
}

// subscriptionPayload projects a normalized request onto the wire shape. A
// stored card travels as card_id or card_token plus a cvv-only card object;
// a full card payload travels whole.
func subscriptionPayload(req *pagarme.SubscriptionCreateRequest) *subscriptionWire {
	wire := &subscriptionWire{
		CustomerID:          req.CustomerID,
		Customer:            req.Customer,
		PaymentMethod:       string(req.PaymentMethod),
		Interval:            string(req.Interval),
		Currency:            req.Currency,
		Description:         req.Description,
		StatementDescriptor: req.StatementDescriptor,
		MinimumPrice:        req.MinimumPrice,
		IntervalCount:       req.IntervalCount,
		BillingType:         string(req.BillingType),
		Installments:        req.Installments,
		PricingScheme:       req.PricingScheme,
		Quantity:            req.Quantity,
		Increments:          req.Increments,
		Items:               req.Items,
		Metadata:            req.Metadata,
	}

	if req.Card == nil {
		return wire
	}

	switch {
	case req.Card.CardID != "":
		wire.CardID = req.Card.CardID
	case req.Card.CardToken != "":
		wire.CardToken = req.Card.CardToken
	case req.Card.Card != nil:
		wire.Card = req.Card.Card
	}

	if wire.Card == nil && req.Card.CVV != "" {
		wire.Card = &subscriptionCardWire{CVV: req.Card.CVV}
	}

	return wire
}

// orderPayload applies the remaining order normalization on top of what the
// builder already assembled.
func orderPayload(req *pagarme.OrderCreateRequest) *pagarme.OrderCreateRequest {
	normalized := *req

	normalized.Customer.DocumentType = pagarme.DocumentType(
		strings.ToLower(string(req.Customer.DocumentType)))

	if len(req.Payments) > 0 {
		normalized.Payments = make([]pagarme.OrderPayment, len(req.Payments))
		for i, payment := range req.Payments {
			normalized.Payments[i] = normalizeOrderPayment(payment)
		}
	}

	return &normalized
}

func normalizeOrderPayment(payment pagarme.OrderPayment) pagarme.OrderPayment {
	payment.PaymentMethod = pagarme.PaymentMethod(strings.ToLower(string(payment.PaymentMethod)))

	if payment.CreditCard != nil {
		card := *payment.CreditCard
		card.StatementDescriptor = strings.ToUpper(card.StatementDescriptor)
		payment.CreditCard = &card
	}

	if payment.DebitCard != nil {
		card := *payment.DebitCard
		card.StatementDescriptor = strings.ToUpper(card.StatementDescriptor)
		payment.DebitCard = &card
	}

	return payment
}
