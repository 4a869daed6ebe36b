package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountersAreIsolatedPerRegistry(t *testing.T) {
	m1 := New(prometheus.NewRegistry())
	m2 := New(prometheus.NewRegistry())

	m1.IncCreated("pet")
	m1.IncCreated("pet")
	m1.AddDeleted("pet", 1)
	m1.AddDeleted("pet", 0)
	m1.IncStatusChange("Completed")
	m1.IncAdoptionCreated()
	m1.IncValidationFailure("pet", "empty")
	m1.ObserveHTTP("GET", "/pets", "200", time.Now())

	require.Equal(t, 2.0, testutil.ToFloat64(m1.RecordsCreated.WithLabelValues("pet")))
	require.Equal(t, 1.0, testutil.ToFloat64(m1.RecordsDeleted.WithLabelValues("pet")))
	require.Equal(t, 1.0, testutil.ToFloat64(m1.StatusChanges.WithLabelValues("Completed")))
	require.Equal(t, 1.0, testutil.ToFloat64(m1.AdoptionsCreated))
	require.Equal(t, 1.0, testutil.ToFloat64(m1.HTTPRequests.WithLabelValues("GET", "/pets", "200")))
	require.Equal(t, 0.0, testutil.ToFloat64(m2.RecordsCreated.WithLabelValues("pet")))
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.IncCreated("pet")
		m.AddDeleted("pet", 2)
		m.IncStatusChange("Pending")
		m.IncAdoptionCreated()
		m.IncValidationFailure("pet", "empty")
		m.ObserveHTTP("GET", "/", "200", time.Now())
	})
}
