package pagarme

import "fmt"

// Validation rules are pure predicate checks over typed operation input.
// Each failing rule writes a field → message entry into the shared set;
// rules never perform I/O and never return Go errors for expected-invalid
// input. Callers short-circuit the pipeline when the returned set is
// non-empty.

// ValidatePlanCreate checks a plan create/update request.
func ValidatePlanCreate(req *PlanCreateRequest) *FieldErrors {
	errs := NewFieldErrors()

	if req.Name == "" {
		errs.Set("name", "Name is required")
	}

	validateRecurrence(req.Interval, req.BillingType, errs)

	for _, method := range req.PaymentMethods {
		if !method.Valid() {
			errs.Setf("payment_methods", "Invalid payment method %q", string(method))
		}
	}

	for i, day := range req.BillingDays {
		if day < 1 || day > 28 {
			errs.Setf("billing_days", "Billing day must be between 1 and 28 on entry %d", i)
		}
	}

	return errs
}

// ValidateSubscriptionCreate checks a standalone subscription request,
// running every rule group so the caller sees all accumulated entries.
func ValidateSubscriptionCreate(req *SubscriptionCreateRequest) *FieldErrors {
	errs := NewFieldErrors()

	if req.Description == "" && len(req.Items) == 0 {
		errs.Set("description", "Description is required when items is empty")
	}

	validateSubscriptionItems(req.Items, errs)
	validatePaymentMethod(req.PaymentMethod, req.Card, errs)

	if req.PricingScheme != nil {
		validatePricingScheme(req.PricingScheme, req.Quantity, errs)
	}

	validateIncrements(req.Increments, errs)
	validateCustomerReference(req.Customer, req.CustomerID, errs)
	validateRecurrence(req.Interval, req.BillingType, errs)

	return errs
}

// ValidateCustomerCreate checks a standalone customer create request using
// the same field rules applied to inline subscription customers.
func ValidateCustomerCreate(req *CustomerCreateRequest) *FieldErrors {
	errs := NewFieldErrors()

	validateCustomerFields(req, errs)

	return errs
}

// ValidateCardCreate checks a card create request before it is stored on a
// customer.
func ValidateCardCreate(req *CardCreateRequest) *FieldErrors {
	errs := NewFieldErrors()

	if req.Number == "" {
		errs.Set("number", "Number is required")
	}

	if req.HolderName == "" {
		errs.Set("holder_name", "Holder name is required")
	}

	if req.ExpMonth < 1 || req.ExpMonth > 12 {
		errs.Set("exp_month", "Expiration month must be between 1 and 12")
	}

	if req.ExpYear == 0 {
		errs.Set("exp_year", "Expiration year is required")
	}

	if req.CVV == "" {
		errs.Set("cvv", "CVV is required")
	}

	return errs
}

func validateRecurrence(interval Interval, billingType BillingType, errs *FieldErrors) {
	if !interval.Valid() {
		errs.Set("interval", "Invalid interval")
	}

	if !billingType.Valid() {
		errs.Set("billing_type", "Invalid billing type")
	}
}

func validateSubscriptionItems(items []SubscriptionItem, errs *FieldErrors) {
	for i, item := range items {
		if item.Description == "" {
			errs.Setf("description", "Description is required on item %d", i)
		}

		if item.Quantity == 0 {
			errs.Setf("quantity", "Quantity is required on item %d", i)
		}

		if !item.Status.Valid() {
			errs.Setf("status", "Invalid status on item %d", i)
		}

		if item.PricingScheme != nil {
			validatePricingScheme(item.PricingScheme, item.Quantity, errs)
		}
	}
}

func validatePaymentMethod(method PaymentMethod, card *CardReference, errs *FieldErrors) {
	if !method.Valid() {
		errs.Set("payment_method", "Invalid payment method")

		return
	}

	if method.IsCard() && !card.Resolvable() {
		errs.Set("card", "A card, card_id or card_token is required on payment method credit_card or debit_card")
	}
}

func validatePricingScheme(scheme *PricingScheme, quantity int, errs *FieldErrors) {
	if !scheme.SchemeType.Valid() {
		errs.Set("pricing_scheme", "Invalid pricing scheme")

		return
	}

	if scheme.SchemeType == SchemeTypeUnit {
		if scheme.Price == 0 {
			errs.Set("price", "Price is required on pricing scheme unit")
		}

		if quantity == 0 {
			errs.Set("quantity", "Quantity is required on pricing scheme unit")
		}

		return
	}

	// Bracketed schemes: package, tier, volume.
	if len(scheme.PriceBrackets) == 0 {
		errs.Set("price_brackets", "Price brackets are required on pricing scheme package, tier and volume")
	}

	if scheme.Price != 0 {
		errs.Set("price_brackets", "Price cannot be combined with price brackets on pricing scheme package, tier and volume")
	}
}

func validateIncrements(increments []Increment, errs *FieldErrors) {
	for i, increment := range increments {
		if increment.Value == 0 {
			errs.Setf("value", "Value is required on increment %d", i)
		}

		if !increment.IncrementType.Valid() {
			errs.Setf("increment_type", "Invalid increment type on increment %d", i)
		}
	}
}

func validateCustomerReference(customer *CustomerCreateRequest, customerID string, errs *FieldErrors) {
	if customer == nil && customerID == "" {
		errs.Set("customer", "Customer or customer_id is required")

		return
	}

	if customer != nil && customerID != "" {
		errs.Set("customer", "Customer and customer_id cannot be used together")

		return
	}

	if customer != nil {
		validateCustomerFields(customer, errs)
	}
}

const (
	maxEmailLength            = 64
	maxCodeLength             = 52
	maxPassportDocumentLength = 50
	maxDocumentLength         = 16
)

func validateCustomerFields(customer *CustomerCreateRequest, errs *FieldErrors) {
	if customer.Name == "" {
		errs.Set("name", "Name is required on customer")
	}

	if len(customer.Email) > maxEmailLength {
		errs.Setf("email", "Email must be at most %d characters", maxEmailLength)
	}

	if len(customer.Code) > maxCodeLength {
		errs.Setf("code", "Code must be at most %d characters", maxCodeLength)
	}

	if customer.DocumentType != "" {
		if !customer.DocumentType.Valid() {
			errs.Set("document_type", "Invalid document type on customer")
		}

		if customer.Document == "" {
			errs.Set("document", "Document is required on customer when document type is set")
		}
	}

	if customer.Document != "" {
		maxLength := maxDocumentLength
		if customer.DocumentType == DocumentTypePassport {
			maxLength = maxPassportDocumentLength
		}

		if len(customer.Document) > maxLength {
			errs.Set("document", fmt.Sprintf("Document must be at most %d characters for document type %s",
				maxLength, documentTypeLabel(customer.DocumentType)))
		}
	}

	if customer.Gender != "" && !customer.Gender.Valid() {
		errs.Set("gender", "Invalid gender on customer")
	}
}

func documentTypeLabel(documentType DocumentType) string {
	if documentType == "" {
		return "cpf or cnpj"
	}

	return string(documentType)
}
