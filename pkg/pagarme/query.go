package pagarme

import (
	"net/url"
	"strconv"
)

// Default pagination applied when a list option is left unset.
const (
	DefaultPage = 1
	DefaultSize = 10
)

// PlanListOptions filters the plan listing endpoint.
type PlanListOptions struct {
	Name         string
	Status       string
	CreatedSince string
	CreatedUntil string
	Page         int
	Size         int
}

// ToValues builds the query string, applying default pagination for unset
// page and size.
func (o *PlanListOptions) ToValues() url.Values {
	values := url.Values{}

	if o == nil {
		o = &PlanListOptions{}
	}

	if o.Name != "" {
		values.Set("name", o.Name)
	}

	if o.Status != "" {
		values.Set("status", o.Status)
	}

	if o.CreatedSince != "" {
		values.Set("created_since", o.CreatedSince)
	}

	if o.CreatedUntil != "" {
		values.Set("created_until", o.CreatedUntil)
	}

	values.Set("page", strconv.Itoa(pageOrDefault(o.Page, DefaultPage)))
	values.Set("size", strconv.Itoa(pageOrDefault(o.Size, DefaultSize)))

	return values
}

// SubscriptionListOptions paginates the subscription listing endpoint.
type SubscriptionListOptions struct {
	Page int
	Size int
}

// ToValues builds the query string, applying default pagination for unset
// page and size.
func (o *SubscriptionListOptions) ToValues() url.Values {
	values := url.Values{}

	if o == nil {
		o = &SubscriptionListOptions{}
	}

	values.Set("page", strconv.Itoa(pageOrDefault(o.Page, DefaultPage)))
	values.Set("size", strconv.Itoa(pageOrDefault(o.Size, DefaultSize)))

	return values
}

func pageOrDefault(value, fallback int) int {
	if value > 0 {
		return value
	}

	return fallback
}
