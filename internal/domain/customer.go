package domain

// Customer represents a customer record. The aggregated totals are derived
// by the data service and are read-only here, in cents.
type Customer struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ImageURL     string `json:"image_url"`
	TotalPending int64  `json:"total_pending"`
	TotalPaid    int64  `json:"total_paid"`
}

// CustomerTableRow is a customer shaped for the customers table, with the
// aggregated totals pre-formatted as currency display strings.
type CustomerTableRow struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ImageURL     string `json:"image_url"`
	TotalPending string `json:"total_pending"`
	TotalPaid    string `json:"total_paid"`
}
