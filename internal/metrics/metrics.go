// Package metrics defines the Prometheus instrumentation for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the counters incremented by the workflows.
type Metrics struct {
	// WorkflowTotal counts workflow invocations by workflow name and outcome.
	WorkflowTotal *prometheus.CounterVec
	// EmailSendTotal counts email send attempts by message kind and status.
	EmailSendTotal *prometheus.CounterVec
	// ListStoreTotal counts list store mutations by action and result.
	ListStoreTotal *prometheus.CounterVec
}

// New creates the metric set and registers it with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		WorkflowTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "outreach_workflow_total",
			Help: "Workflow invocations by workflow and outcome.",
		}, []string{"workflow", "outcome"}),
		EmailSendTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "outreach_email_send_total",
			Help: "Email send attempts by kind and status.",
		}, []string{"kind", "status"}),
		ListStoreTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "outreach_list_store_requests_total",
			Help: "List store mutations by action and result.",
		}, []string{"action", "result"}),
	}
	reg.MustRegister(m.WorkflowTotal, m.EmailSendTotal, m.ListStoreTotal)
	return m
}
