package pagarme

// Interval is the recurrence interval of a plan or subscription.
type Interval string

const (
	IntervalDay   Interval = "day"
	IntervalWeek  Interval = "week"
	IntervalMonth Interval = "month"
	IntervalYear  Interval = "year"
)

// Valid reports whether the interval is one the gateway accepts.
func (i Interval) Valid() bool {
	switch i {
	case IntervalDay, IntervalWeek, IntervalMonth, IntervalYear:
		return true
	default:
		return false
	}
}

// BillingType is the charge timing of a plan or subscription.
type BillingType string

const (
	BillingTypePrepaid  BillingType = "prepaid"
	BillingTypePostpaid BillingType = "postpaid"
	BillingTypeExactDay BillingType = "exact_day"
)

// Valid reports whether the billing type is one the gateway accepts.
func (b BillingType) Valid() bool {
	switch b {
	case BillingTypePrepaid, BillingTypePostpaid, BillingTypeExactDay:
		return true
	default:
		return false
	}
}

// PaymentMethod identifies how a charge is collected.
type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodBoleto     PaymentMethod = "boleto"
)

// Valid reports whether the payment method is recognized.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodBoleto:
		return true
	default:
		return false
	}
}

// IsCard reports whether the method requires a card reference.
func (m PaymentMethod) IsCard() bool {
	return m == PaymentMethodCreditCard || m == PaymentMethodDebitCard
}

// SchemeType is the pricing scheme model of a subscription item.
type SchemeType string

const (
	SchemeTypeUnit    SchemeType = "unit"
	SchemeTypePackage SchemeType = "package"
	SchemeTypeTier    SchemeType = "tier"
	SchemeTypeVolume  SchemeType = "volume"
)

// Valid reports whether the scheme type is recognized.
func (s SchemeType) Valid() bool {
	switch s {
	case SchemeTypeUnit, SchemeTypePackage, SchemeTypeTier, SchemeTypeVolume:
		return true
	default:
		return false
	}
}

// Bracketed reports whether the scheme prices by quantity brackets rather
// than a flat unit price.
func (s SchemeType) Bracketed() bool {
	switch s {
	case SchemeTypePackage, SchemeTypeTier, SchemeTypeVolume:
		return true
	default:
		return false
	}
}

// IncrementType is the kind of a subscription price increment.
type IncrementType string

const (
	IncrementTypePercentage IncrementType = "percentage"
	IncrementTypeFlat       IncrementType = "flat"
)

// Valid reports whether the increment type is recognized.
func (t IncrementType) Valid() bool {
	return t == IncrementTypePercentage || t == IncrementTypeFlat
}

// DocumentType identifies the customer document kind.
type DocumentType string

const (
	DocumentTypeCPF      DocumentType = "cpf"
	DocumentTypeCNPJ     DocumentType = "cnpj"
	DocumentTypePassport DocumentType = "passport"
)

// Valid reports whether the document type is recognized.
func (d DocumentType) Valid() bool {
	switch d {
	case DocumentTypeCPF, DocumentTypeCNPJ, DocumentTypePassport:
		return true
	default:
		return false
	}
}

// ItemStatus is the lifecycle status of a subscription item.
type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "active"
	ItemStatusInactive ItemStatus = "inactive"
	ItemStatusDeleted  ItemStatus = "deleted"
)

// Valid reports whether the item status is recognized.
func (s ItemStatus) Valid() bool {
	switch s {
	case ItemStatusActive, ItemStatusInactive, ItemStatusDeleted:
		return true
	default:
		return false
	}
}

// Gender is the optional customer gender field accepted by the gateway.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether the gender value is one the gateway accepts.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Address is a billing or customer address.
type Address struct {
	Line1   string `json:"line_1"`
	Line2   string `json:"line_2,omitempty"`
	ZipCode string `json:"zip_code"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Phone is a single phone number split the way the gateway expects.
type Phone struct {
	CountryCode string `json:"country_code"`
	AreaCode    string `json:"area_code"`
	Number      string `json:"number"`
}

// Phones groups the customer phone numbers.
type Phones struct {
	HomePhone   *Phone `json:"home_phone,omitempty"`
	MobilePhone *Phone `json:"mobile_phone,omitempty"`
}

// CardOptions carries card processing flags.
type CardOptions struct {
	VerifyCard bool `json:"verify_card"`
}

// CardCreateRequest is the full card payload for storing a card on a
// customer or paying an order with an unsaved card.
type CardCreateRequest struct {
	Number         string       `json:"number"`
	HolderName     string       `json:"holder_name"`
	HolderDocument string       `json:"holder_document,omitempty"`
	ExpMonth       int          `json:"exp_month"`
	ExpYear        int          `json:"exp_year"`
	CVV            string       `json:"cvv"`
	Brand          string       `json:"brand,omitempty"`
	Label          string       `json:"label,omitempty"`
	BillingAddress *Address     `json:"billing_address,omitempty"`
	Options        *CardOptions `json:"options,omitempty"`
}

// CustomerCreateRequest creates a gateway customer, either standalone or
// inline on a subscription.
type CustomerCreateRequest struct {
	Name         string            `json:"name"`
	Email        string            `json:"email,omitempty"`
	Code         string            `json:"code,omitempty"`
	Document     string            `json:"document,omitempty"`
	Type         string            `json:"type,omitempty"`
	DocumentType DocumentType      `json:"document_type,omitempty"`
	Gender       Gender            `json:"gender,omitempty"`
	Address      *Address          `json:"address,omitempty"`
	Birthdate    string            `json:"birthdate,omitempty"`
	Phones       *Phones           `json:"phones,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// PlanItem is one item of a plan. Only id, amount, and quantity are sent to
// the gateway; the remaining fields exist for caller bookkeeping and are
// projected away by the request builder.
type PlanItem struct {
	ID          string
	Name        string
	Description string
	Amount      int
	Quantity    int
}

// PlanCreateRequest creates or replaces a recurrence plan.
type PlanCreateRequest struct {
	Name                string
	Description         string
	Shippable           bool
	PaymentMethods      []PaymentMethod
	Installments        []int
	MinimumPrice        int
	StatementDescriptor string
	Currency            string
	Interval            Interval
	IntervalCount       int
	TrialPeriodDays     int
	BillingType         BillingType
	BillingDays         []int
	Items               []PlanItem
	Metadata            map[string]string
}

// PriceBracket is one quantity bracket of a bracketed pricing scheme.
type PriceBracket struct {
	StartQuantity int `json:"start_quantity"`
	EndQuantity   int `json:"end_quantity,omitempty"`
	Price         int `json:"price"`
	OveragePrice  int `json:"overage_price,omitempty"`
}

// PricingScheme describes how a subscription item is priced. Unit schemes
// carry a flat Price; bracketed schemes (package, tier, volume) carry
// PriceBrackets and must not carry Price.
type PricingScheme struct {
	SchemeType    SchemeType     `json:"scheme_type"`
	Price         int            `json:"price,omitempty"`
	PriceBrackets []PriceBracket `json:"price_brackets,omitempty"`
}

// Increment is a scheduled price increment applied to a subscription.
type Increment struct {
	Value         int           `json:"value"`
	Cycles        string        `json:"cycles,omitempty"`
	IncrementType IncrementType `json:"increment_type"`
}

// SubscriptionItem is one item of a subscription.
type SubscriptionItem struct {
	ID            string         `json:"id,omitempty"`
	Description   string         `json:"description"`
	Quantity      int            `json:"quantity"`
	Status        ItemStatus     `json:"status"`
	Cycles        int            `json:"cycles,omitempty"`
	PricingScheme *PricingScheme `json:"pricing_scheme,omitempty"`
}

// CardReference points at the card paying a subscription: either a stored
// card (CardID or CardToken, plus CVV) or a full card payload. The two
// shapes are mutually exclusive.
type CardReference struct {
	CardID    string
	CardToken string
	CVV       string
	Card      *CardCreateRequest
}

// Resolvable reports whether the reference identifies any card at all.
func (r *CardReference) Resolvable() bool {
	if r == nil {
		return false
	}

	return r.CardID != "" || r.CardToken != "" || r.Card != nil
}

// SubscriptionCreateRequest creates a standalone subscription. Exactly one
// of CustomerID or Customer must be set.
type SubscriptionCreateRequest struct {
	CustomerID          string
	Customer            *CustomerCreateRequest
	PaymentMethod       PaymentMethod
	Interval            Interval
	Currency            string
	Description         string
	StatementDescriptor string
	MinimumPrice        int
	IntervalCount       int
	BillingType         BillingType
	Installments        int
	PricingScheme       *PricingScheme
	Quantity            int
	Increments          []Increment
	Items               []SubscriptionItem
	Metadata            map[string]string
	Card                *CardReference
}
