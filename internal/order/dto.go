package order

import (
	"net/mail"
	"strings"
)

// CheckoutRequest is the shipping form submitted at order placement.
// swagger:model CheckoutRequest
type CheckoutRequest struct {
	Name    string `json:"name"    example:"Jo Renner"`
	Email   string `json:"email"   example:"jo@example.com"`
	Phone   string `json:"phone"   example:"9876543210"`
	Address string `json:"address" example:"14 Hill Road, Bandra West, Mumbai"`
}

// Validate applies the checkout field rules and returns one message per
// offending field. An empty map means the form is acceptable; any violation
// must abort the order before a single row is written.
func (r CheckoutRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = "Name is required"
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		errs["email"] = "Invalid email"
	}
	if len(strings.TrimSpace(r.Phone)) < 10 {
		errs["phone"] = "Phone number must be at least 10 digits"
	}
	if len(strings.TrimSpace(r.Address)) < 10 {
		errs["address"] = "Address must be at least 10 characters"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
