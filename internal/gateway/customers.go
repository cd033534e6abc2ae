package gateway

import (
	"context"
	"net/url"

	"github.com/Dhoini/invoice-dashboard/internal/domain"
)

// FetchCustomers returns all customer records.
func (c *Client) FetchCustomers(ctx context.Context) ([]domain.Customer, error) {
	var customers []domain.Customer
	if err := c.getJSON(ctx, "fetch customers", "/customers", nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// FetchFilteredCustomers returns customers whose name matches query (empty
// matches all), with the aggregated totals formatted for the table.
func (c *Client) FetchFilteredCustomers(ctx context.Context, query string) ([]domain.CustomerTableRow, error) {
	q := url.Values{}
	if query != "" {
		q.Set("name", query)
	}

	var customers []domain.Customer
	if err := c.getJSON(ctx, "fetch customers", "/customers", q, &customers); err != nil {
		return nil, err
	}

	rows := make([]domain.CustomerTableRow, 0, len(customers))
	for _, cust := range customers {
		rows = append(rows, domain.CustomerTableRow{
			ID:           cust.ID,
			Name:         cust.Name,
			Email:        cust.Email,
			ImageURL:     cust.ImageURL,
			TotalPending: FormatCurrency(cust.TotalPending),
			TotalPaid:    FormatCurrency(cust.TotalPaid),
		})
	}
	return rows, nil
}

// FetchCustomerByID returns the customer with the given id, or
// domain.ErrNotFound when it does not resolve.
func (c *Client) FetchCustomerByID(ctx context.Context, id string) (*domain.Customer, error) {
	q := url.Values{}
	q.Set("id", id)

	var customers []domain.Customer
	if err := c.getJSON(ctx, "fetch customer", "/customers", q, &customers); err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, domain.ErrNotFound
	}
	return &customers[0], nil
}
