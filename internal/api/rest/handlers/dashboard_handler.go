package handlers

import (
	"net/http"

	"github.com/Dhoini/invoice-dashboard/internal/gateway"
	"github.com/Dhoini/invoice-dashboard/pkg/logger"
	"github.com/Dhoini/invoice-dashboard/pkg/res"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the dashboard overview reads. Cards, latest
// invoices and revenue are separate endpoints so the UI can await each one
// independently; revenue in particular can be slow and must not hold up the
// rest of the page.
type DashboardHandler struct {
	gateway *gateway.Client
	log     *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(gw *gateway.Client, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		gateway: gw,
		log:     log,
	}
}

// GetCards returns the dashboard card aggregates.
func (h *DashboardHandler) GetCards(c *gin.Context) {
	summary, err := h.gateway.FetchCardSummary(c.Request.Context())
	if err != nil {
		res.Error(c, http.StatusInternalServerError, "Failed to fetch card data.")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetLatestInvoices returns the five most recent invoices.
func (h *DashboardHandler) GetLatestInvoices(c *gin.Context) {
	latest, err := h.gateway.FetchLatestInvoices(c.Request.Context())
	if err != nil {
		res.Error(c, http.StatusInternalServerError, "Failed to fetch the latest invoices.")
		return
	}

	c.JSON(http.StatusOK, latest)
}

// GetRevenue returns the monthly revenue time series.
func (h *DashboardHandler) GetRevenue(c *gin.Context) {
	revenue, err := h.gateway.FetchRevenue(c.Request.Context())
	if err != nil {
		res.Error(c, http.StatusInternalServerError, "Failed to fetch revenue data.")
		return
	}

	c.JSON(http.StatusOK, revenue)
}
