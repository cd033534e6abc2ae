// Package validation holds the declarative form schemas. Each schema turns a
// raw field-name-to-string mapping into typed data or a set of field-scoped
// error messages. A single invalid field fails the whole call; every violated
// rule contributes its message, not just the first.
package validation

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/Dhoini/invoice-dashboard/internal/domain"
	"github.com/go-playground/validator/v10"
)

// User-facing validation messages
const (
	MsgSelectCustomer   = "Please select a customer."
	MsgAmountTooSmall   = "Please enter an amount greater than $0."
	MsgSelectStatus     = "Please select an invoice status."
	MsgEmailRequired    = "Please enter an email address."
	MsgInvalidEmail     = "Please enter a valid email address."
	MsgPasswordRequired = "Please enter a password."
	MsgPasswordTooShort = "Password must be at least 6 characters long."
)

var validate = validator.New()

// InvoiceInput is the validated invoice form, with the amount coerced to a
// number (still dollars) and the status coerced to the enum.
type InvoiceInput struct {
	CustomerID string
	Amount     float64
	Status     domain.InvoiceStatus
}

// Credentials is the validated login form.
type Credentials struct {
	Email    string
	Password string
}

// ValidateInvoiceForm applies the invoice schema to raw form values.
func ValidateInvoiceForm(form url.Values) (InvoiceInput, domain.ValidationErrors) {
	var errs domain.ValidationErrors
	var input InvoiceInput

	input.CustomerID = strings.TrimSpace(form.Get("customerId"))
	if input.CustomerID == "" {
		errs.Add("customerId", MsgSelectCustomer)
	}

	rawAmount := strings.TrimSpace(form.Get("amount"))
	if rawAmount == "" {
		errs.Add("amount", MsgAmountTooSmall)
	} else if amount, err := strconv.ParseFloat(rawAmount, 64); err != nil {
		errs.Add("amount", MsgAmountTooSmall)
	} else if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		// ParseFloat accepts "NaN" and "Inf" literals; neither is a payable amount.
		errs.Add("amount", MsgAmountTooSmall)
	} else {
		input.Amount = amount
	}

	status := domain.InvoiceStatus(form.Get("status"))
	if !status.Valid() {
		errs.Add("status", MsgSelectStatus)
	} else {
		input.Status = status
	}

	if errs.HasErrors() {
		return InvoiceInput{}, errs
	}
	return input, nil
}

// ValidateCredentials applies the credential schema. Rules are evaluated
// independently so an empty field reports both its required and its shape
// violation.
func ValidateCredentials(email, password string) (Credentials, domain.ValidationErrors) {
	var errs domain.ValidationErrors

	email = strings.TrimSpace(email)
	if err := validate.Var(email, "required"); err != nil {
		errs.Add("email", MsgEmailRequired)
	}
	if err := validate.Var(email, "email"); err != nil {
		errs.Add("email", MsgInvalidEmail)
	}

	if err := validate.Var(password, "required"); err != nil {
		errs.Add("password", MsgPasswordRequired)
	}
	if err := validate.Var(password, "min=6"); err != nil {
		errs.Add("password", MsgPasswordTooShort)
	}

	if errs.HasErrors() {
		return Credentials{}, errs
	}
	return Credentials{Email: email, Password: password}, nil
}
