package gateway

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/Dhoini/invoice-dashboard/internal/domain"
	"github.com/Dhoini/invoice-dashboard/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDataService mimics the json-server conventions the gateway speaks:
// _limit/_start pagination and field-equality filters over flat collections.
type fakeDataService struct {
	invoices  []domain.Invoice
	customers []domain.Customer
	users     []domain.User
	revenue   []domain.RevenuePoint

	lastRequest   *http.Request
	created       []domain.Invoice
	failCustomers bool
}

func (f *fakeDataService) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /invoices", func(w http.ResponseWriter, r *http.Request) {
		f.lastRequest = r

		matched := make([]domain.Invoice, 0, len(f.invoices))
		for _, inv := range f.invoices {
			if name := r.URL.Query().Get("name"); name != "" && inv.Name != name {
				continue
			}
			if id := r.URL.Query().Get("id"); id != "" && inv.ID != id {
				continue
			}
			matched = append(matched, inv)
		}

		start := 0
		if s := r.URL.Query().Get("_start"); s != "" {
			start, _ = strconv.Atoi(s)
		}
		if start > len(matched) {
			start = len(matched)
		}
		matched = matched[start:]

		if l := r.URL.Query().Get("_limit"); l != "" {
			limit, _ := strconv.Atoi(l)
			if limit < len(matched) {
				matched = matched[:limit]
			}
		}

		json.NewEncoder(w).Encode(matched)
	})

	mux.HandleFunc("POST /invoices", func(w http.ResponseWriter, r *http.Request) {
		var inv domain.Invoice
		if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.created = append(f.created, inv)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(inv)
	})

	mux.HandleFunc("DELETE /invoices/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		for i, inv := range f.invoices {
			if inv.ID == id {
				f.invoices = append(f.invoices[:i], f.invoices[i+1:]...)
				w.WriteHeader(http.StatusOK)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})

	mux.HandleFunc("GET /customers", func(w http.ResponseWriter, r *http.Request) {
		if f.failCustomers {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(f.customers)
	})

	mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		matched := make([]domain.User, 0, 1)
		for _, u := range f.users {
			if email := r.URL.Query().Get("email"); email == "" || u.Email == email {
				matched = append(matched, u)
			}
		}
		json.NewEncoder(w).Encode(matched)
	})

	mux.HandleFunc("GET /revenue", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(f.revenue)
	})

	return mux
}

func newTestClient(t *testing.T, fake *fakeDataService) *Client {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, Timeout: 2 * time.Second}, logger.NewNop())
}

func seedInvoices(n int) []domain.Invoice {
	invoices := make([]domain.Invoice, 0, n)
	for i := 0; i < n; i++ {
		invoices = append(invoices, domain.Invoice{
			ID:         "inv-" + strconv.Itoa(i+1),
			CustomerID: "c1",
			Amount:     int64((i + 1) * 100),
			Status:     domain.InvoiceStatusPending,
			Date:       "2024-06-01",
			Name:       "Evil Rabbit",
			Email:      "evil@rabbit.com",
			ImageURL:   "/customers/evil-rabbit.png",
		})
	}
	return invoices
}

func TestFetchFilteredInvoices_Pagination(t *testing.T) {
	fake := &fakeDataService{invoices: seedInvoices(13)}
	client := newTestClient(t, fake)

	page2, err := client.FetchFilteredInvoices(t.Context(), "", 2)

	require.NoError(t, err)
	require.Len(t, page2, ItemsPerPage)
	assert.Equal(t, "inv-7", page2[0].ID)
	assert.Equal(t, "6", fake.lastRequest.URL.Query().Get("_limit"))
	assert.Equal(t, "6", fake.lastRequest.URL.Query().Get("_start"))
}

func TestFetchFilteredInvoices_QueryFilter(t *testing.T) {
	fake := &fakeDataService{invoices: seedInvoices(3)}
	fake.invoices[1].Name = "Delba de Oliveira"
	client := newTestClient(t, fake)

	invoices, err := client.FetchFilteredInvoices(t.Context(), "Delba de Oliveira", 1)

	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "inv-2", invoices[0].ID)
}

func TestFetchInvoicesPages(t *testing.T) {
	tests := []struct {
		name     string
		invoices int
		pages    int
	}{
		{"empty table", 0, 0},
		{"partial page", 5, 1},
		{"exact page", 6, 1},
		{"spills over", 13, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, &fakeDataService{invoices: seedInvoices(tt.invoices)})

			pages, err := client.FetchInvoicesPages(t.Context(), "")

			require.NoError(t, err)
			assert.Equal(t, tt.pages, pages)
		})
	}
}

func TestFetchInvoiceByID(t *testing.T) {
	fake := &fakeDataService{invoices: seedInvoices(3)}
	fake.invoices[1].Amount = 1050
	client := newTestClient(t, fake)

	detail, err := client.FetchInvoiceByID(t.Context(), "inv-2")

	require.NoError(t, err)
	assert.Equal(t, "inv-2", detail.ID)
	// The edit form works in dollars, the store in cents.
	assert.Equal(t, 10.5, detail.Amount)
}

func TestFetchInvoiceByID_NotFound(t *testing.T) {
	client := newTestClient(t, &fakeDataService{})

	_, err := client.FetchInvoiceByID(t.Context(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFetchLatestInvoices(t *testing.T) {
	fake := &fakeDataService{invoices: seedInvoices(8)}
	client := newTestClient(t, fake)

	latest, err := client.FetchLatestInvoices(t.Context())

	require.NoError(t, err)
	require.Len(t, latest, 5)
	assert.Equal(t, "$1.00", latest[0].Amount)
	assert.Equal(t, "Evil Rabbit", latest[0].Name)
}

func TestFetchCardSummary(t *testing.T) {
	fake := &fakeDataService{
		invoices: []domain.Invoice{
			{ID: "a", Amount: 100, Status: domain.InvoiceStatusPaid},
			{ID: "b", Amount: 50, Status: domain.InvoiceStatusPending},
			{ID: "c", Amount: 25, Status: domain.InvoiceStatusPaid},
		},
		customers: []domain.Customer{{ID: "c1"}, {ID: "c2"}},
	}
	client := newTestClient(t, fake)

	summary, err := client.FetchCardSummary(t.Context())

	require.NoError(t, err)
	assert.Equal(t, 3, summary.NumberOfInvoices)
	assert.Equal(t, 2, summary.NumberOfCustomers)
	assert.Equal(t, "$1.25", summary.TotalPaidInvoices)
	assert.Equal(t, "$0.50", summary.TotalPendingInvoices)
}

func TestFetchCardSummary_PartialFailure(t *testing.T) {
	fake := &fakeDataService{
		invoices:      seedInvoices(3),
		failCustomers: true,
	}
	client := newTestClient(t, fake)

	summary, err := client.FetchCardSummary(t.Context())

	// One failing read fails the whole summary; no half-filled aggregates.
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
}

func TestFetchUserByEmail(t *testing.T) {
	fake := &fakeDataService{users: []domain.User{
		{ID: "u1", Email: "user@nextmail.com", Password: "$2b$10$hash"},
	}}
	client := newTestClient(t, fake)

	user, err := client.FetchUserByEmail(t.Context(), "user@nextmail.com")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	_, err = client.FetchUserByEmail(t.Context(), "nobody@nextmail.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateInvoice_SubmitsCents(t *testing.T) {
	fake := &fakeDataService{}
	client := newTestClient(t, fake)

	err := client.CreateInvoice(t.Context(), domain.Invoice{
		ID:         "inv-new",
		CustomerID: "c1",
		Amount:     1050,
		Status:     domain.InvoiceStatusPaid,
		Date:       "2024-06-01",
	})

	require.NoError(t, err)
	require.Len(t, fake.created, 1)
	assert.Equal(t, int64(1050), fake.created[0].Amount)
}

func TestDeleteInvoice(t *testing.T) {
	fake := &fakeDataService{invoices: seedInvoices(1)}
	client := newTestClient(t, fake)

	require.NoError(t, client.DeleteInvoice(t.Context(), "inv-1"))
	assert.Empty(t, fake.invoices)

	err := client.DeleteInvoice(t.Context(), "inv-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDataServiceFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	client := NewClient(Config{BaseURL: srv.URL}, logger.NewNop())

	_, err := client.FetchFilteredInvoices(t.Context(), "", 1)

	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
	var dsErr *domain.DataServiceError
	require.ErrorAs(t, err, &dsErr)
	assert.Equal(t, http.StatusInternalServerError, dsErr.StatusCode)
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$10.50", FormatCurrency(1050))
	assert.Equal(t, "$1.25", FormatCurrency(125))
	assert.Equal(t, "$0.00", FormatCurrency(0))
	assert.Equal(t, "$1,234.56", FormatCurrency(123456))
}
