package handlers

import (
	"net/http"

	"github.com/Dhoini/invoice-dashboard/internal/gateway"
	"github.com/Dhoini/invoice-dashboard/pkg/logger"
	"github.com/Dhoini/invoice-dashboard/pkg/res"
	"github.com/gin-gonic/gin"
)

// CustomerHandler serves the customer reads. Customers are read-only in
// this application.
type CustomerHandler struct {
	gateway *gateway.Client
	log     *logger.Logger
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(gw *gateway.Client, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{
		gateway: gw,
		log:     log,
	}
}

// GetCustomers returns all customers, e.g. for the invoice form's customer
// selector.
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	customers, err := h.gateway.FetchCustomers(c.Request.Context())
	if err != nil {
		res.Error(c, http.StatusInternalServerError, "Failed to fetch all customers.")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomerTable returns the filtered customers table with formatted
// totals.
func (h *CustomerHandler) GetCustomerTable(c *gin.Context) {
	rows, err := h.gateway.FetchFilteredCustomers(c.Request.Context(), c.Query("query"))
	if err != nil {
		res.Error(c, http.StatusInternalServerError, "Failed to fetch customer table.")
		return
	}

	c.JSON(http.StatusOK, rows)
}
