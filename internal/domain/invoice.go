package domain

// InvoiceStatus is the lifecycle status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Valid reports whether the status is one of the known values
func (s InvoiceStatus) Valid() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}

// Invoice is the record persisted in the data service. Amount is stored in
// integer cents; dollars are converted exactly once, at the command boundary.
// The customer display fields (Name, Email, ImageURL) are denormalized onto
// the invoice when it is composed.
type Invoice struct {
	ID         string        `json:"id,omitempty"`
	CustomerID string        `json:"customer_id"`
	Amount     int64         `json:"amount"`
	Status     InvoiceStatus `json:"status"`
	Date       string        `json:"date,omitempty"` // ISO calendar date, YYYY-MM-DD
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	ImageURL   string        `json:"image_url"`
}

// InvoiceDetail is an invoice shaped for the edit form, with the amount
// converted back from cents to dollars.
type InvoiceDetail struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Amount     float64       `json:"amount"`
	Status     InvoiceStatus `json:"status"`
	Date       string        `json:"date"`
}

// LatestInvoice is a recent invoice for the dashboard, with the amount
// pre-formatted as a currency display string.
type LatestInvoice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
	Amount   string `json:"amount"`
}

// CardSummary holds the aggregates shown on the dashboard cards.
type CardSummary struct {
	NumberOfInvoices     int    `json:"numberOfInvoices"`
	NumberOfCustomers    int    `json:"numberOfCustomers"`
	TotalPaidInvoices    string `json:"totalPaidInvoices"`
	TotalPendingInvoices string `json:"totalPendingInvoices"`
}

// RevenuePoint is one month of the revenue time series.
type RevenuePoint struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}
