package metrics

import (
	"github.com/Dhoini/invoice-dashboard/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CommandMetrics records invoice command and authentication outcomes.
type CommandMetrics interface {
	IncInvoiceCreated()
	IncInvoiceUpdated()
	IncInvoiceDeleted()
	IncCommandFailed(command string)
	IncAuthSuccess()
	IncAuthDenied()
	IncAuthFailure()
}

type commandMetrics struct {
	log      *logger.Logger
	commands *prometheus.CounterVec
	auth     *prometheus.CounterVec
}

// NewCommandMetrics creates the command metrics and registers them.
func NewCommandMetrics(registry *prometheus.Registry, log *logger.Logger) CommandMetrics {
	commands := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "invoice_commands_total",
			Help: "The total number of invoice commands by outcome",
		},
		[]string{"command", "outcome"},
	)

	auth := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "The total number of authentication attempts by outcome",
		},
		[]string{"outcome"},
	)

	return &commandMetrics{
		log:      log,
		commands: commands,
		auth:     auth,
	}
}

func (m *commandMetrics) IncInvoiceCreated() {
	m.commands.WithLabelValues("create", "ok").Inc()
}

func (m *commandMetrics) IncInvoiceUpdated() {
	m.commands.WithLabelValues("update", "ok").Inc()
}

func (m *commandMetrics) IncInvoiceDeleted() {
	m.commands.WithLabelValues("delete", "ok").Inc()
}

func (m *commandMetrics) IncCommandFailed(command string) {
	m.commands.WithLabelValues(command, "failed").Inc()
}

func (m *commandMetrics) IncAuthSuccess() {
	m.auth.WithLabelValues("success").Inc()
}

func (m *commandMetrics) IncAuthDenied() {
	m.auth.WithLabelValues("denied").Inc()
}

func (m *commandMetrics) IncAuthFailure() {
	m.auth.WithLabelValues("failure").Inc()
}
