package observability

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

var (
	registry *prometheus.Registry

	// Total weather lookups attempted this session (valid queries only).
	LookupsTotal prometheus.Counter

	// Outbound API call rate by endpoint (geocode/forecast) and outcome.
	APICallsTotal *prometheus.CounterVec

	// Outbound API latency by endpoint.
	APIDuration *prometheus.HistogramVec

	// Lookup failures by stage (resolve/fetch) and error category.
	LookupErrorsTotal *prometheus.CounterVec
)

func init() {
	registry = prometheus.NewRegistry()

	LookupsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "weathercli_lookups_total",
		Help: "Weather lookups attempted this session.",
	})

	APICallsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "weathercli_api_calls_total",
		Help: "Outbound API calls by endpoint and outcome.",
	}, []string{"endpoint", "status"})

	APIDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "weathercli_api_duration_seconds",
		Help:    "Outbound API call latency by endpoint.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"endpoint"})

	LookupErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "weathercli_lookup_errors_total",
		Help: "Failed lookups by stage and error category.",
	}, []string{"stage", "category"})

	registry.MustRegister(LookupsTotal, APICallsTotal, APIDuration, LookupErrorsTotal)
}

// Gather exposes the private registry, mainly for tests.
func Gather() ([]*dto.MetricFamily, error) {
	return registry.Gather()
}

// Snapshot renders the session counters as indented plain text for the
// interactive `stats` command. Histograms show sample count and mean latency.
func Snapshot() string {
	fams, err := registry.Gather()
	if err != nil {
		return fmt.Sprintf("  stats unavailable: %v\n", err)
	}

	var b strings.Builder
	for _, mf := range fams {
		name := strings.TrimPrefix(mf.GetName(), "weathercli_")
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			suffix := ""
			if len(labels) > 0 {
				suffix = "{" + strings.Join(labels, ",") + "}"
			}
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(&b, "  %s%s: %.0f\n", name, suffix, m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				if h.GetSampleCount() > 0 {
					mean := h.GetSampleSum() / float64(h.GetSampleCount())
					fmt.Fprintf(&b, "  %s%s: n=%d mean=%.0fms\n", name, suffix, h.GetSampleCount(), mean*1000)
				}
			}
		}
	}
	if b.Len() == 0 {
		return "  no activity recorded\n"
	}
	return b.String()
}
