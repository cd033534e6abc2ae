package handlers

import (
	"errors"
	"net/http"

	"github.com/Dhoini/invoice-dashboard/internal/domain"
	"github.com/Dhoini/invoice-dashboard/internal/service"
	"github.com/Dhoini/invoice-dashboard/pkg/logger"
	"github.com/Dhoini/invoice-dashboard/pkg/req"
	"github.com/Dhoini/invoice-dashboard/pkg/res"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	service *service.AuthService
	log     *logger.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(svc *service.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		service: svc,
		log:     log,
	}
}

// Login authenticates the submitted credentials and issues a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	form, err := req.FormValues(c.Request)
	if err != nil {
		res.Error(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	result, err := h.service.Authenticate(c.Request.Context(), form.Get("email"), form.Get("password"))
	if err != nil {
		var verrs domain.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			c.JSON(http.StatusUnprocessableEntity, domain.FormState{
				Errors:  verrs.FieldErrors(),
				Message: service.MsgInvalidCredentials,
			})
		case errors.Is(err, domain.ErrAuthDenied):
			res.Error(c, http.StatusUnauthorized, service.MsgInvalidCredentials)
		default:
			res.Error(c, http.StatusInternalServerError, service.MsgAuthFailure)
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// Logout ends the session. Tokens are stateless; the client discards its
// copy after this call.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.service.SignOut(c.Request.Context())
	c.Status(http.StatusNoContent)
}
