package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Dhoini/invoice-dashboard/internal/domain"
	"github.com/Dhoini/invoice-dashboard/internal/gateway"
	"github.com/Dhoini/invoice-dashboard/internal/service"
	"github.com/Dhoini/invoice-dashboard/pkg/logger"
	"github.com/Dhoini/invoice-dashboard/pkg/req"
	"github.com/Dhoini/invoice-dashboard/pkg/res"
	"github.com/gin-gonic/gin"
)

// ViewCache is the read-through cache used by the invoices table.
type ViewCache interface {
	GetView(ctx context.Context, view, variant string, out any) (bool, error)
	SetView(ctx context.Context, view, variant string, value any) error
}

// InvoiceHandler handles the invoice table reads and the mutating commands.
type InvoiceHandler struct {
	commands *service.InvoiceService
	gateway  *gateway.Client
	cache    ViewCache
	log      *logger.Logger
}

// NewInvoiceHandler creates a new invoice handler. cache may be nil, in
// which case reads always hit the data service.
func NewInvoiceHandler(commands *service.InvoiceService, gw *gateway.Client, cache ViewCache, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		commands: commands,
		gateway:  gw,
		cache:    cache,
		log:      log,
	}
}

// GetInvoices returns one page of the invoices table, read through the view
// cache when one is configured.
func (h *InvoiceHandler) GetInvoices(c *gin.Context) {
	query := c.Query("query")
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	variant := fmt.Sprintf("query=%s&page=%d", query, page)

	var invoices []domain.Invoice
	if h.cache != nil {
		if hit, err := h.cache.GetView(c.Request.Context(), service.InvoicesView, variant, &invoices); err == nil && hit {
			c.JSON(http.StatusOK, invoices)
			return
		}
	}

	invoices, err = h.gateway.FetchFilteredInvoices(c.Request.Context(), query, page)
	if err != nil {
		res.Error(c, http.StatusInternalServerError, "Failed to fetch invoices.")
		return
	}

	if h.cache != nil {
		if err := h.cache.SetView(c.Request.Context(), service.InvoicesView, variant, invoices); err != nil {
			h.log.Warnw("Failed to cache invoices view", "error", err)
		}
	}

	c.JSON(http.StatusOK, invoices)
}

// GetInvoicesPages returns the number of invoice table pages for a filter.
func (h *InvoiceHandler) GetInvoicesPages(c *gin.Context) {
	pages, err := h.gateway.FetchInvoicesPages(c.Request.Context(), c.Query("query"))
	if err != nil {
		res.Error(c, http.StatusInternalServerError, "Failed to fetch total number of invoices.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

// GetInvoice returns a single invoice shaped for the edit form.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.gateway.FetchInvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			res.Error(c, http.StatusNotFound, "Invoice not found.")
			return
		}
		res.Error(c, http.StatusInternalServerError, "Failed to fetch invoice.")
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// CreateInvoice runs the create command and reports the resulting FormState.
// On success the response carries the navigation target for the UI.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	form, err := req.FormValues(c.Request)
	if err != nil {
		res.Error(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	state := h.commands.Create(c.Request.Context(), form)
	if !state.OK() {
		c.JSON(formStateStatus(state), state)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"redirect": service.InvoicesView})
}

// UpdateInvoice runs the update command against an existing invoice id.
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	form, err := req.FormValues(c.Request)
	if err != nil {
		res.Error(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	state := h.commands.Update(c.Request.Context(), c.Param("id"), form)
	if !state.OK() {
		c.JSON(formStateStatus(state), state)
		return
	}

	c.JSON(http.StatusOK, gin.H{"redirect": service.InvoicesView})
}

// DeleteInvoice runs the delete command. The caller stays on the current
// view, so the response is just the summary message.
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	message, err := h.commands.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// formStateStatus maps a failed FormState to a status code: field errors
// mean the submission was invalid, anything else is a backend failure.
func formStateStatus(state domain.FormState) int {
	if len(state.Errors) > 0 {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
