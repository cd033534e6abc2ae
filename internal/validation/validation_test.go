package validation

import (
	"net/url"
	"testing"

	"github.com/Dhoini/invoice-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoiceForm(customerID, amount, status string) url.Values {
	form := url.Values{}
	form.Set("customerId", customerID)
	form.Set("amount", amount)
	form.Set("status", status)
	return form
}

func TestValidateInvoiceForm_Valid(t *testing.T) {
	input, errs := ValidateInvoiceForm(invoiceForm("c1", "10.50", "paid"))

	require.False(t, errs.HasErrors())
	assert.Equal(t, "c1", input.CustomerID)
	assert.Equal(t, 10.5, input.Amount)
	assert.Equal(t, domain.InvoiceStatusPaid, input.Status)
}

func TestValidateInvoiceForm_AmountRejected(t *testing.T) {
	tests := []struct {
		name   string
		amount string
	}{
		{"zero", "0"},
		{"negative", "-5"},
		{"not a number", "abc"},
		{"empty", ""},
		{"NaN literal", "NaN"},
		{"positive infinity", "Inf"},
		{"negative infinity", "-Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := ValidateInvoiceForm(invoiceForm("c1", tt.amount, "pending"))

			require.True(t, errs.HasErrors())
			assert.Equal(t, MsgAmountTooSmall, errs.GetByField("amount"))
		})
	}
}

func TestValidateInvoiceForm_MissingFields(t *testing.T) {
	_, errs := ValidateInvoiceForm(url.Values{})

	require.True(t, errs.HasErrors())
	fields := errs.FieldErrors()
	assert.Contains(t, fields, "customerId")
	assert.Contains(t, fields, "amount")
	assert.Contains(t, fields, "status")
	assert.Equal(t, []string{MsgSelectCustomer}, fields["customerId"])
}

func TestValidateInvoiceForm_UnknownStatus(t *testing.T) {
	_, errs := ValidateInvoiceForm(invoiceForm("c1", "12", "overdue"))

	require.True(t, errs.HasErrors())
	assert.Equal(t, MsgSelectStatus, errs.GetByField("status"))
}

func TestValidateInvoiceForm_SingleInvalidFieldFailsWhole(t *testing.T) {
	input, errs := ValidateInvoiceForm(invoiceForm("c1", "10", "nope"))

	require.True(t, errs.HasErrors())
	// No partial success: the typed record is empty on any failure.
	assert.Zero(t, input)
}

func TestValidateCredentials_Valid(t *testing.T) {
	creds, errs := ValidateCredentials("user@nextmail.com", "123456")

	require.False(t, errs.HasErrors())
	assert.Equal(t, "user@nextmail.com", creds.Email)
	assert.Equal(t, "123456", creds.Password)
}

func TestValidateCredentials_BadEmail(t *testing.T) {
	_, errs := ValidateCredentials("not-an-email", "123456")

	require.True(t, errs.HasErrors())
	assert.Equal(t, []string{MsgInvalidEmail}, errs.FieldErrors()["email"])
}

func TestValidateCredentials_ShortPassword(t *testing.T) {
	_, errs := ValidateCredentials("user@nextmail.com", "12345")

	require.True(t, errs.HasErrors())
	assert.Equal(t, []string{MsgPasswordTooShort}, errs.FieldErrors()["password"])
}

func TestValidateCredentials_EmptyFieldsAccumulateMessages(t *testing.T) {
	_, errs := ValidateCredentials("", "")

	require.True(t, errs.HasErrors())
	fields := errs.FieldErrors()
	// Every violated rule contributes its message, not just the first.
	assert.Equal(t, []string{MsgEmailRequired, MsgInvalidEmail}, fields["email"])
	assert.Equal(t, []string{MsgPasswordRequired, MsgPasswordTooShort}, fields["password"])
}
