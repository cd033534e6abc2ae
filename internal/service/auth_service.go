package service

import (
	"context"
	"errors"

	"github.com/Dhoini/invoice-dashboard/internal/auth"
	"github.com/Dhoini/invoice-dashboard/internal/domain"
	"github.com/Dhoini/invoice-dashboard/internal/metrics"
	"github.com/Dhoini/invoice-dashboard/internal/validation"
	"github.com/Dhoini/invoice-dashboard/pkg/logger"
)

// User-facing authentication messages. The denial message is identical for
// an unknown email and a wrong password so callers cannot probe which
// emails exist.
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgAuthFailure        = "Something went wrong."
)

// UserGateway is the slice of the data service the authentication flow uses.
type UserGateway interface {
	FetchUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// AuthResult is returned on successful authentication.
type AuthResult struct {
	User  domain.PublicUser `json:"user"`
	Token string            `json:"token"`
}

// AuthService authenticates credential submissions against user records in
// the data service.
type AuthService struct {
	gateway  UserGateway
	verifier auth.Verifier
	tokens   *auth.TokenService
	metrics  metrics.CommandMetrics
	log      *logger.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(gateway UserGateway, verifier auth.Verifier, tokens *auth.TokenService,
	m metrics.CommandMetrics, log *logger.Logger) *AuthService {
	return &AuthService{
		gateway:  gateway,
		verifier: verifier,
		tokens:   tokens,
		metrics:  m,
		log:      log,
	}
}

// Authenticate validates the credential shape, looks the user up by email
// and verifies the password against the stored hash. It returns
// domain.ValidationErrors before any lookup happens when the shape is bad,
// domain.ErrAuthDenied on unknown email or password mismatch, and
// domain.ErrAuthInfra when the lookup itself failed.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	creds, verrs := validation.ValidateCredentials(email, password)
	if verrs.HasErrors() {
		s.metrics.IncAuthDenied()
		return nil, verrs
	}

	user, err := s.gateway.FetchUserByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.Warnw("Login attempt for unknown email")
			s.metrics.IncAuthDenied()
			return nil, domain.ErrAuthDenied
		}
		s.log.Errorw("User lookup failed during login", "error", err)
		s.metrics.IncAuthFailure()
		return nil, domain.ErrAuthInfra
	}

	if err := s.verifier.Verify(user.Password, creds.Password); err != nil {
		s.log.Warnw("Password mismatch during login", "userID", user.ID)
		s.metrics.IncAuthDenied()
		return nil, domain.ErrAuthDenied
	}

	token, err := s.tokens.Issue(user.Public())
	if err != nil {
		s.log.Errorw("Failed to issue session token", "userID", user.ID, "error", err)
		s.metrics.IncAuthFailure()
		return nil, domain.ErrAuthInfra
	}

	s.metrics.IncAuthSuccess()
	s.log.Infow("User authenticated", "userID", user.ID)
	return &AuthResult{User: user.Public(), Token: token}, nil
}

// SignOut discards the session. Tokens are stateless, so this only exists
// as the explicit sign-out capability; the client drops its token.
func (s *AuthService) SignOut(_ context.Context) {
	s.log.Debugw("User signed out")
}
