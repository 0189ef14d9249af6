package order

import "testing"

func TestCheckoutRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := CheckoutRequest{
		Name:    "Jo Renner",
		Email:   "jo@example.com",
		Phone:   "9876543210",
		Address: "14 Hill Road, Bandra West, Mumbai",
	}
	if errs := valid.Validate(); errs != nil {
		t.Fatalf("valid form rejected: %v", errs)
	}

	cases := []struct {
		name   string
		mutate func(*CheckoutRequest)
		field  string
		msg    string
	}{
		{"empty name", func(r *CheckoutRequest) { r.Name = "" }, "name", "Name is required"},
		{"blank name", func(r *CheckoutRequest) { r.Name = "   " }, "name", "Name is required"},
		{"bad email", func(r *CheckoutRequest) { r.Email = "nope" }, "email", "Invalid email"},
		{"empty email", func(r *CheckoutRequest) { r.Email = "" }, "email", "Invalid email"},
		{"short phone", func(r *CheckoutRequest) { r.Phone = "123456789" }, "phone", "Phone number must be at least 10 digits"},
		{"padded phone", func(r *CheckoutRequest) { r.Phone = "  12345  " }, "phone", "Phone number must be at least 10 digits"},
		{"short address", func(r *CheckoutRequest) { r.Address = "short" }, "address", "Address must be at least 10 characters"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := valid
			tc.mutate(&r)
			errs := r.Validate()
			if errs == nil {
				t.Fatalf("expected a field error")
			}
			if errs[tc.field] != tc.msg {
				t.Fatalf("errs[%q]=%q, want %q (all: %v)", tc.field, errs[tc.field], tc.msg, errs)
			}
		})
	}

	// every broken field gets its own message in one pass
	all := CheckoutRequest{}
	errs := all.Validate()
	for _, f := range []string{"name", "email", "phone", "address"} {
		if errs[f] == "" {
			t.Fatalf("missing error for %q: %v", f, errs)
		}
	}
}
