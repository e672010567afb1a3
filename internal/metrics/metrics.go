// Package metrics exposes dispatch counters for the dashboard store.
package metrics

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kingrea/emis-dashboard/internal/store"
)

const namespace = "emis_dashboard"

// Outcome labels for request lifecycle actions.
const (
	OutcomeStarted   = "started"
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
)

// Metrics owns a private registry so several dashboards (and tests) can
// coexist in one process.
type Metrics struct {
	registry *prometheus.Registry
	actions  *prometheus.CounterVec
	requests *prometheus.CounterVec
}

// New registers the dashboard collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_dispatched_total",
			Help:      "Actions reduced by the store, by type.",
		}, []string{"type", "error"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Request lifecycle actions, by operation and outcome.",
		}, []string{"operation", "outcome"}),
	}
	reg.MustRegister(m.actions, m.requests)
	reg.MustRegister(collectors.NewGoCollector())
	return m
}

// Observe counts one reduced action. Request lifecycle actions are also
// counted per operation, see Lifecycle.
func (m *Metrics) Observe(action store.Action) {
	if m == nil {
		return
	}
	typ := string(action.Type)
	if typ == "" {
		typ = "null"
	}
	failed := "false"
	if action.Error {
		failed = "true"
	}
	m.actions.WithLabelValues(typ, failed).Inc()
	if op, outcome, ok := Lifecycle(action.Type); ok {
		m.requests.WithLabelValues(op, outcome).Inc()
	}
}

// lifecycleAliases maps request flows whose action names do not follow the
// _START, _SUCCESS, _ERROR convention. Stakeholder loads and searches share
// one operation and both end in STORE_STAKEHOLDERS.
var lifecycleAliases = map[store.Type][2]string{
	"STAKEHOLDERS:GET_STAKEHOLDERS":    {"get_stakeholders", OutcomeStarted},
	"STAKEHOLDERS:SEARCH_STAKEHOLDERS": {"get_stakeholders", OutcomeStarted},
	"STAKEHOLDERS:STORE_STAKEHOLDERS":  {"get_stakeholders", OutcomeSucceeded},
}

// Lifecycle splits a request lifecycle type into its operation and outcome.
func Lifecycle(t store.Type) (operation, outcome string, ok bool) {
	if alias, found := lifecycleAliases[t]; found {
		return alias[0], alias[1], true
	}
	name := string(t)
	for suffix, result := range map[string]string{
		"_START":   OutcomeStarted,
		"_SUCCESS": OutcomeSucceeded,
		"_ERROR":   OutcomeFailed,
	} {
		if strings.HasSuffix(name, suffix) {
			op := strings.ToLower(strings.TrimSuffix(name, suffix))
			if i := strings.LastIndex(op, ":"); i >= 0 {
				op = op[i+1:]
			}
			if op == "" {
				return "", "", false
			}
			return op, result, true
		}
	}
	return "", "", false
}

// Registry exposes the underlying registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
