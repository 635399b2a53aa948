package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveUpstream(t *testing.T) {
	before := testutil.ToFloat64(upstreamRequestsTotal.WithLabelValues("pass_summary", "200"))

	ObserveUpstream("pass_summary", "200", 120*time.Millisecond)
	ObserveUpstream("pass_summary", "200", 80*time.Millisecond)

	after := testutil.ToFloat64(upstreamRequestsTotal.WithLabelValues("pass_summary", "200"))
	assert.Equal(t, before+2, after)
}

func TestIncFallback(t *testing.T) {
	before := testutil.ToFloat64(fallbacksTotal.WithLabelValues("no_match"))
	IncFallback("no_match")
	assert.Equal(t, before+1, testutil.ToFloat64(fallbacksTotal.WithLabelValues("no_match")))
}

func TestSetChartBytes(t *testing.T) {
	SetChartBytes("wholesky", 1024)
	assert.Equal(t, 1024.0, testutil.ToFloat64(chartBytes.WithLabelValues("wholesky")))
	SetChartBytes("wholesky", 10)
	assert.Equal(t, 10.0, testutil.ToFloat64(chartBytes.WithLabelValues("wholesky")))
}

func TestWriteTextfile(t *testing.T) {
	ObserveUpstream("pass_chart", "404", time.Millisecond)

	path := filepath.Join(t.TempDir(), "passchart.prom")
	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `passchart_upstream_requests_total{code="404",endpoint="pass_chart"}`)
}
