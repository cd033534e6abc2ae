package service

import (
	"context"
	"errors"
	"math"
	"net/url"
	"time"

	"github.com/Dhoini/invoice-dashboard/internal/domain"
	"github.com/Dhoini/invoice-dashboard/internal/events"
	"github.com/Dhoini/invoice-dashboard/internal/metrics"
	"github.com/Dhoini/invoice-dashboard/internal/validation"
	"github.com/Dhoini/invoice-dashboard/pkg/logger"
	"github.com/google/uuid"
)

// InvoicesView is the cache key of the invoices table view, and the
// navigation target after a successful create or update.
const InvoicesView = "/dashboard/invoices"

// User-facing command outcome messages
const (
	MsgMissingFieldsCreate = "Missing Fields. Failed to Create Invoice."
	MsgMissingFieldsEdit   = "Missing Fields. Failed to Edit Invoice."
	MsgCreateFailed        = "Failed to Create Invoice."
	MsgEditFailed          = "Failed to Edit Invoice."
	MsgDeleteFailed        = "Failed to Delete Invoice."
	MsgDeleted             = "Deleted Invoice."
)

// Gateway is the slice of the data service client the invoice commands use.
type Gateway interface {
	FetchCustomerByID(ctx context.Context, id string) (*domain.Customer, error)
	CreateInvoice(ctx context.Context, invoice domain.Invoice) error
	UpdateInvoice(ctx context.Context, id string, invoice domain.Invoice) error
	DeleteInvoice(ctx context.Context, id string) error
}

// ViewInvalidator invalidates a cached dashboard view.
type ViewInvalidator interface {
	Invalidate(ctx context.Context, view string) error
}

// InvoiceService implements the mutating invoice commands. Every command
// validates first, touches the data service only after validation passes,
// and invalidates the invoices view before returning.
type InvoiceService struct {
	gateway Gateway
	views   ViewInvalidator
	events  events.Producer
	metrics metrics.CommandMetrics
	log     *logger.Logger
}

// NewInvoiceService creates a new invoice command service.
func NewInvoiceService(gateway Gateway, views ViewInvalidator, producer events.Producer,
	m metrics.CommandMetrics, log *logger.Logger) *InvoiceService {
	return &InvoiceService{
		gateway: gateway,
		views:   views,
		events:  producer,
		metrics: m,
		log:     log,
	}
}

// Create validates the submitted form, resolves the referenced customer,
// composes the invoice record (amount converted to cents, dated today) and
// submits it. The zero FormState signals success; the caller then navigates
// to the invoices view.
func (s *InvoiceService) Create(ctx context.Context, form url.Values) domain.FormState {
	input, verrs := validation.ValidateInvoiceForm(form)
	if verrs.HasErrors() {
		s.metrics.IncCommandFailed("create")
		return domain.FormState{Errors: verrs.FieldErrors(), Message: MsgMissingFieldsCreate}
	}

	customer, err := s.resolveCustomer(ctx, input.CustomerID)
	if err != nil {
		s.metrics.IncCommandFailed("create")
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return domain.FormState{
				Errors:  map[string][]string{"customerId": {validation.MsgSelectCustomer}},
				Message: MsgCreateFailed,
			}
		}
		return domain.FormState{Message: MsgCreateFailed}
	}

	invoice := domain.Invoice{
		ID:         uuid.NewString(),
		CustomerID: input.CustomerID,
		Amount:     toCents(input.Amount),
		Status:     input.Status,
		Date:       time.Now().Format("2006-01-02"),
		Name:       customer.Name,
		Email:      customer.Email,
		ImageURL:   customer.ImageURL,
	}

	if err := s.gateway.CreateInvoice(ctx, invoice); err != nil {
		s.log.Errorw("Failed to submit new invoice", "invoiceID", invoice.ID, "error", err)
		s.metrics.IncCommandFailed("create")
		return domain.FormState{Message: MsgCreateFailed}
	}

	s.invalidateInvoices(ctx)
	s.publish(func() error { return s.events.PublishInvoiceCreated(ctx, invoice) })
	s.metrics.IncInvoiceCreated()

	s.log.Infow("Invoice created", "invoiceID", invoice.ID, "customerID", invoice.CustomerID)
	return domain.FormState{}
}

// Update validates the submitted form and submits a partial replace of the
// invoice with the given id. The date is not recomputed on update.
func (s *InvoiceService) Update(ctx context.Context, id string, form url.Values) domain.FormState {
	input, verrs := validation.ValidateInvoiceForm(form)
	if verrs.HasErrors() {
		s.metrics.IncCommandFailed("update")
		return domain.FormState{Errors: verrs.FieldErrors(), Message: MsgMissingFieldsEdit}
	}

	customer, err := s.resolveCustomer(ctx, input.CustomerID)
	if err != nil {
		s.metrics.IncCommandFailed("update")
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return domain.FormState{
				Errors:  map[string][]string{"customerId": {validation.MsgSelectCustomer}},
				Message: MsgEditFailed,
			}
		}
		return domain.FormState{Message: MsgEditFailed}
	}

	invoice := domain.Invoice{
		CustomerID: input.CustomerID,
		Amount:     toCents(input.Amount),
		Status:     input.Status,
		Name:       customer.Name,
		Email:      customer.Email,
		ImageURL:   customer.ImageURL,
	}

	if err := s.gateway.UpdateInvoice(ctx, id, invoice); err != nil {
		s.log.Errorw("Failed to submit invoice update", "invoiceID", id, "error", err)
		s.metrics.IncCommandFailed("update")
		return domain.FormState{Message: MsgEditFailed}
	}

	invoice.ID = id
	s.invalidateInvoices(ctx)
	s.publish(func() error { return s.events.PublishInvoiceUpdated(ctx, invoice) })
	s.metrics.IncInvoiceUpdated()

	s.log.Infow("Invoice updated", "invoiceID", id)
	return domain.FormState{}
}

// Delete removes the invoice with the given id and returns a summary
// message. Deleting an id the data service no longer has behaves like a
// successful delete: the view is invalidated either way.
func (s *InvoiceService) Delete(ctx context.Context, id string) (string, error) {
	err := s.gateway.DeleteInvoice(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.log.Errorw("Failed to delete invoice", "invoiceID", id, "error", err)
		s.metrics.IncCommandFailed("delete")
		return "", errors.New(MsgDeleteFailed)
	}

	s.invalidateInvoices(ctx)
	s.publish(func() error { return s.events.PublishInvoiceDeleted(ctx, id) })
	s.metrics.IncInvoiceDeleted()

	s.log.Infow("Invoice deleted", "invoiceID", id, "existed", err == nil)
	return MsgDeleted, nil
}

// resolveCustomer looks up the referenced customer so its display fields can
// be denormalized onto the invoice. A customer id that does not resolve is a
// distinct failure: an invoice must never persist with missing customer data.
func (s *InvoiceService) resolveCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	customer, err := s.gateway.FetchCustomerByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.Warnw("Referenced customer not found", "customerID", id)
			return nil, domain.ErrCustomerNotFound
		}
		s.log.Errorw("Failed to resolve customer", "customerID", id, "error", err)
		return nil, err
	}
	return customer, nil
}

// invalidateInvoices drops the cached invoices view synchronously, before
// the command returns, so the next read observes fresh data.
func (s *InvoiceService) invalidateInvoices(ctx context.Context) {
	if s.views == nil {
		return
	}
	if err := s.views.Invalidate(ctx, InvoicesView); err != nil {
		s.log.Warnw("Failed to invalidate invoices view cache", "view", InvoicesView, "error", err)
	}
}

// publish sends a lifecycle event, best-effort.
func (s *InvoiceService) publish(fn func() error) {
	if s.events == nil {
		return
	}
	if err := fn(); err != nil {
		s.log.Warnw("Failed to publish invoice event", "error", err)
	}
}

// toCents converts a validated dollar amount to integer cents. This is the
// single conversion site; nothing downstream converts again.
func toCents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}
