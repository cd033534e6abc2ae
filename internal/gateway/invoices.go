package gateway

import (
	"context"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Dhoini/invoice-dashboard/internal/domain"
	"golang.org/x/sync/errgroup"
)

const latestInvoicesLimit = 5

// FetchFilteredInvoices returns one page of invoices whose customer name
// matches query. An empty query matches everything. Pages are offset-based
// with the fixed page size ItemsPerPage.
func (c *Client) FetchFilteredInvoices(ctx context.Context, query string, page int) ([]domain.Invoice, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * ItemsPerPage

	q := url.Values{}
	q.Set("_limit", strconv.Itoa(ItemsPerPage))
	q.Set("_start", strconv.Itoa(offset))
	if query != "" {
		q.Set("name", query)
	}

	var invoices []domain.Invoice
	if err := c.getJSON(ctx, "fetch invoices", "/invoices", q, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// FetchInvoicesPages returns the number of invoice table pages matching
// query. The data service has no count endpoint, so this fetches the
// matching rows and divides by the page size.
func (c *Client) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	q := url.Values{}
	if query != "" {
		q.Set("name", query)
	}

	var invoices []domain.Invoice
	if err := c.getJSON(ctx, "count invoices", "/invoices", q, &invoices); err != nil {
		return 0, err
	}
	return int(math.Ceil(float64(len(invoices)) / float64(ItemsPerPage))), nil
}

// FetchInvoiceByID returns the invoice with the given id, shaped for the
// edit form (amount converted from cents back to dollars). A lookup that
// matches nothing returns domain.ErrNotFound, not a transport error.
func (c *Client) FetchInvoiceByID(ctx context.Context, id string) (*domain.InvoiceDetail, error) {
	q := url.Values{}
	q.Set("id", id)

	var invoices []domain.Invoice
	if err := c.getJSON(ctx, "fetch invoice", "/invoices", q, &invoices); err != nil {
		return nil, err
	}
	if len(invoices) == 0 {
		return nil, domain.ErrNotFound
	}

	inv := invoices[0]
	return &domain.InvoiceDetail{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     float64(inv.Amount) / 100,
		Status:     inv.Status,
		Date:       inv.Date,
	}, nil
}

// FetchLatestInvoices returns the five most recent invoices with the amount
// formatted for display.
func (c *Client) FetchLatestInvoices(ctx context.Context) ([]domain.LatestInvoice, error) {
	q := url.Values{}
	q.Set("_limit", strconv.Itoa(latestInvoicesLimit))

	var invoices []domain.Invoice
	if err := c.getJSON(ctx, "fetch latest invoices", "/invoices", q, &invoices); err != nil {
		return nil, err
	}

	latest := make([]domain.LatestInvoice, 0, len(invoices))
	for _, inv := range invoices {
		latest = append(latest, domain.LatestInvoice{
			ID:       inv.ID,
			Name:     inv.Name,
			Email:    inv.Email,
			ImageURL: inv.ImageURL,
			Amount:   FormatCurrency(inv.Amount),
		})
	}
	return latest, nil
}

// FetchCardSummary computes the dashboard card aggregates. The two
// underlying reads run concurrently; either one failing fails the summary.
func (c *Client) FetchCardSummary(ctx context.Context) (*domain.CardSummary, error) {
	var (
		invoices  []domain.Invoice
		customers []domain.Customer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.getJSON(gctx, "fetch invoices", "/invoices", nil, &invoices)
	})
	g.Go(func() error {
		return c.getJSON(gctx, "fetch customers", "/customers", nil, &customers)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var totalPaid, totalPending int64
	for _, inv := range invoices {
		switch inv.Status {
		case domain.InvoiceStatusPaid:
			totalPaid += inv.Amount
		case domain.InvoiceStatusPending:
			totalPending += inv.Amount
		}
	}

	return &domain.CardSummary{
		NumberOfInvoices:     len(invoices),
		NumberOfCustomers:    len(customers),
		TotalPaidInvoices:    FormatCurrency(totalPaid),
		TotalPendingInvoices: FormatCurrency(totalPending),
	}, nil
}

// CreateInvoice submits a new invoice record.
func (c *Client) CreateInvoice(ctx context.Context, invoice domain.Invoice) error {
	return c.send(ctx, "create invoice", http.MethodPost, "/invoices", invoice)
}

// UpdateInvoice submits a partial replace of the invoice with the given id.
func (c *Client) UpdateInvoice(ctx context.Context, id string, invoice domain.Invoice) error {
	return c.send(ctx, "update invoice", http.MethodPatch, "/invoices/"+url.PathEscape(id), invoice)
}

// DeleteInvoice removes the invoice with the given id. Deleting a missing
// id returns domain.ErrNotFound.
func (c *Client) DeleteInvoice(ctx context.Context, id string) error {
	return c.send(ctx, "delete invoice", http.MethodDelete, "/invoices/"+url.PathEscape(id), nil)
}
