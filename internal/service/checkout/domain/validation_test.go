// internal/service/checkout/domain/validation_test.go
package domain

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress() ShippingAddress {
	return ShippingAddress{
		FirstName: "Seb",
		LastName:  "Knows",
		Email:     "seb@example.com",
		Phone:     "07700900000",
		Address1:  "1 High Street",
		City:      "London",
		Postcode:  "E1 6AN",
		Country:   "UK",
	}
}

func TestValidateAcceptsCompleteAddress(t *testing.T) {
	addr := validAddress()
	assert.NoError(t, addr.Validate())
}

func TestValidateReportsFirstMissingFieldInOrder(t *testing.T) {
	cases := []struct {
		field string
		mut   func(a *ShippingAddress)
	}{
		{"firstName", func(a *ShippingAddress) { a.FirstName = "" }},
		{"lastName", func(a *ShippingAddress) { a.LastName = "  " }},
		{"email", func(a *ShippingAddress) { a.Email = "" }},
		{"phone", func(a *ShippingAddress) { a.Phone = "" }},
		{"address1", func(a *ShippingAddress) { a.Address1 = "" }},
		{"city", func(a *ShippingAddress) { a.City = "" }},
		{"postcode", func(a *ShippingAddress) { a.Postcode = "" }},
		{"country", func(a *ShippingAddress) { a.Country = "" }},
	}
	for _, tc := range cases {
		addr := validAddress()
		tc.mut(&addr)
		err := addr.Validate()
		require.Error(t, err)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, tc.field, vErr.Field)
	}
}

func TestValidateShortCircuitsOnEarliestField(t *testing.T) {
	// 多个字段缺失时只报最靠前的那个
	addr := validAddress()
	addr.Email = ""
	addr.Country = ""

	var vErr *ValidationError
	require.ErrorAs(t, addr.Validate(), &vErr)
	assert.Equal(t, "email", vErr.Field)
}

func TestCardValidation(t *testing.T) {
	valid := CardDetails{Number: "4242 4242 4242 4242", Expiry: "12/26", CVV: "123"}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name string
		card CardDetails
	}{
		{"short number", CardDetails{Number: "4242", Expiry: "12/26", CVV: "123"}},
		{"letters in number", CardDetails{Number: "424242424242424x", Expiry: "12/26", CVV: "123"}},
		{"expiry without slash", CardDetails{Number: "4242424242424242", Expiry: "12-26", CVV: "123"}},
		{"expiry too long", CardDetails{Number: "4242424242424242", Expiry: "12/2026", CVV: "123"}},
		{"short cvv", CardDetails{Number: "4242424242424242", Expiry: "12/26", CVV: "12"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var pErr *PaymentValidationError
			assert.ErrorAs(t, tc.card.Validate(), &pErr)
		})
	}
}

func TestTrackingNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^SK\d{12}$`)
	now := time.Now()
	for i := 0; i < 20; i++ {
		assert.Regexp(t, pattern, NewTrackingNumber(now))
	}
}
