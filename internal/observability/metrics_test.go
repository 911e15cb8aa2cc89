package observability

import (
	"strings"
	"testing"
)

// TestMetrics_Usable verifies the metrics can be used without panic, ensuring
// label dimensions match usage across the client and session packages.
func TestMetrics_Usable(t *testing.T) {
	LookupsTotal.Inc()
	APICallsTotal.WithLabelValues("geocode", "success").Inc()
	APICallsTotal.WithLabelValues("forecast", "error").Inc()
	APIDuration.WithLabelValues("geocode").Observe(0.12)
	LookupErrorsTotal.WithLabelValues("resolve", "not_found").Inc()
}

func TestSnapshot_ContainsRecordedCounters(t *testing.T) {
	LookupsTotal.Inc()
	APICallsTotal.WithLabelValues("geocode", "success").Inc()

	out := Snapshot()
	if !strings.Contains(out, "lookups_total") {
		t.Errorf("Snapshot() missing lookups_total:\n%s", out)
	}
	if !strings.Contains(out, "api_calls_total{endpoint=geocode,status=success}") {
		t.Errorf("Snapshot() missing labeled counter:\n%s", out)
	}
}

func TestGather_ReturnsFamilies(t *testing.T) {
	fams, err := Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	if len(fams) == 0 {
		t.Fatal("Gather() returned no metric families")
	}
	for _, mf := range fams {
		if !strings.HasPrefix(mf.GetName(), "weathercli_") {
			t.Errorf("unexpected metric family %q", mf.GetName())
		}
	}
}
