package pagarme

// OrderCustomer is the customer projection sent with an order. Only these
// five fields are transmitted, regardless of what the caller knows about the
// customer.
type OrderCustomer struct {
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Document     string       `json:"document"`
	DocumentType DocumentType `json:"document_type"`
	Type         string       `json:"type"`
}

// OrderItem is one line item of an order.
type OrderItem struct {
	Code        string `json:"code"`
	Amount      int    `json:"amount"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

// CardPayment pays an order with a card, either stored (CardID + CVV) or by
// value (Card). Installments defaults to 1 when unset.
type CardPayment struct {
	Method              PaymentMethod
	CardID              string
	Card                *CardCreateRequest
	CVV                 string
	Installments        int
	StatementDescriptor string
}

// BoletoPayment pays an order with a bank slip.
type BoletoPayment struct {
	Instructions string
	DueAt        string
}

// OrderCardDetail is the card sub-object of a card payment. For stored
// cards only the CVV is present; for card-by-value every field is.
type OrderCardDetail struct {
	CVV            string       `json:"cvv"`
	Number         string       `json:"number,omitempty"`
	HolderName     string       `json:"holder_name,omitempty"`
	HolderDocument string       `json:"holder_document,omitempty"`
	ExpMonth       int          `json:"exp_month,omitempty"`
	ExpYear        int          `json:"exp_year,omitempty"`
	Brand          string       `json:"brand,omitempty"`
	BillingAddress *Address     `json:"billing_address,omitempty"`
	Options        *CardOptions `json:"options,omitempty"`
}

// OrderCardPayload is the credit_card / debit_card sub-object of an order
// payment. Exactly one of CardID or the full card detail identifies the
// card.
type OrderCardPayload struct {
	Installments        int             `json:"installments"`
	StatementDescriptor string          `json:"statement_descriptor,omitempty"`
	CardID              string          `json:"card_id,omitempty"`
	Card                OrderCardDetail `json:"card"`
}

// OrderBoletoPayload is the boleto sub-object of an order payment.
type OrderBoletoPayload struct {
	Instructions string `json:"instructions,omitempty"`
	DueAt        string `json:"due_at,omitempty"`
}

// OrderPayment is the tagged payment variant sent on the wire. The
// PaymentMethod field selects which sub-object is populated.
type OrderPayment struct {
	PaymentMethod PaymentMethod       `json:"payment_method"`
	CreditCard    *OrderCardPayload   `json:"credit_card,omitempty"`
	DebitCard     *OrderCardPayload   `json:"debit_card,omitempty"`
	Boleto        *OrderBoletoPayload `json:"boleto,omitempty"`
}

// OrderCreateRequest is the assembled order payload.
type OrderCreateRequest struct {
	Customer OrderCustomer  `json:"customer"`
	Items    []OrderItem    `json:"items"`
	Payments []OrderPayment `json:"payments"`
}

const defaultInstallments = 1

// OrderBuilder accumulates the parts of an order before submission. It is a
// value type: every With method returns a new snapshot and never mutates
// the receiver, so partially-built orders can be shared and extended along
// independent paths without interference.
//
// There is no default substitution for missing parts: submitting a builder
// with no customer, no items, or no payments is a validation failure.
type OrderBuilder struct {
	customer *OrderCustomer
	items    []OrderItem
	payments []OrderPayment
	err      error
}

// NewOrder returns an empty order builder.
func NewOrder() OrderBuilder {
	return OrderBuilder{}
}

// WithCustomer returns a copy of the builder carrying the order customer.
func (b OrderBuilder) WithCustomer(customer OrderCustomer) OrderBuilder {
	next := b.clone()
	next.customer = &customer

	return next
}

// WithItem returns a copy of the builder with the item appended.
func (b OrderBuilder) WithItem(item OrderItem) OrderBuilder {
	next := b.clone()
	next.items = append(next.items, item)

	return next
}

// WithCardPayment returns a copy of the builder with a card payment
// appended. A card payment without a resolvable CVV is a programmer error:
// it poisons the builder and Request returns ErrCardCVVRequired.
func (b OrderBuilder) WithCardPayment(payment CardPayment) OrderBuilder {
	next := b.clone()

	method := payment.Method
	if method == "" {
		method = PaymentMethodCreditCard
	}

	cvv := payment.CVV
	if cvv == "" && payment.Card != nil {
		cvv = payment.Card.CVV
	}

	if cvv == "" {
		next.err = ErrCardCVVRequired

		return next
	}

	if payment.CardID == "" && payment.Card == nil {
		next.err = ErrCardRequired

		return next
	}

	installments := payment.Installments
	if installments == 0 {
		installments = defaultInstallments
	}

	card := OrderCardPayload{
		Installments:        installments,
		StatementDescriptor: payment.StatementDescriptor,
	}

	if payment.CardID != "" {
		// Stored card: only the reference and the CVV travel, never the
		// card-by-value fields.
		card.CardID = payment.CardID
		card.Card = OrderCardDetail{CVV: cvv}
	} else {
		card.Card = OrderCardDetail{
			CVV:            cvv,
			Number:         payment.Card.Number,
			HolderName:     payment.Card.HolderName,
			HolderDocument: payment.Card.HolderDocument,
			ExpMonth:       payment.Card.ExpMonth,
			ExpYear:        payment.Card.ExpYear,
			Brand:          payment.Card.Brand,
			BillingAddress: payment.Card.BillingAddress,
			Options:        payment.Card.Options,
		}
	}

	entry := OrderPayment{PaymentMethod: method}
	if method == PaymentMethodDebitCard {
		entry.DebitCard = &card
	} else {
		entry.CreditCard = &card
	}

	next.payments = append(next.payments, entry)

	return next
}

// WithBoletoPayment returns a copy of the builder with a boleto payment
// appended.
func (b OrderBuilder) WithBoletoPayment(payment BoletoPayment) OrderBuilder {
	next := b.clone()
	next.payments = append(next.payments, OrderPayment{
		PaymentMethod: PaymentMethodBoleto,
		Boleto: &OrderBoletoPayload{
			Instructions: payment.Instructions,
			DueAt:        payment.DueAt,
		},
	})

	return next
}

// Err returns the first construction error recorded by a With method.
func (b OrderBuilder) Err() error {
	return b.err
}

// Request assembles the order payload, or returns the construction error.
func (b OrderBuilder) Request() (*OrderCreateRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	req := &OrderCreateRequest{
		Items:    b.items,
		Payments: b.payments,
	}

	if b.customer != nil {
		req.Customer = *b.customer
	}

	return req, nil
}

// Validate checks that all required parts were accumulated.
func (b OrderBuilder) Validate() *FieldErrors {
	errs := NewFieldErrors()

	if b.customer == nil {
		errs.Set("customer", "Customer is required")
	}

	if len(b.items) == 0 {
		errs.Set("items", "At least one item is required")
	}

	if len(b.payments) == 0 {
		errs.Set("payments", "At least one payment is required")
	}

	return errs
}

// clone copies the builder so appends on the copy cannot leak into slices
// shared with the receiver.
func (b OrderBuilder) clone() OrderBuilder {
	next := OrderBuilder{customer: b.customer, err: b.err}

	if len(b.items) > 0 {
		next.items = make([]OrderItem, len(b.items))
		copy(next.items, b.items)
	}

	if len(b.payments) > 0 {
		next.payments = make([]OrderPayment, len(b.payments))
		copy(next.payments, b.payments)
	}

	return next
}
