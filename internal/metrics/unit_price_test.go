package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"unit_price/internal/metrics"
)

func TestUnitPrice(t *testing.T) {
	rq := require.New(t)

	reg := prometheus.NewRegistry()
	m := metrics.NewUnitPrice(reg)

	m.Normalized("кг", "exact")
	m.Normalized("кг", "exact")
	m.Normalized("л", "legacy")
	m.TitleFallback()
	m.Failed("InvalidCost")

	count, err := testutil.GatherAndCount(reg, "unit_price_normalized_total")
	rq.NoError(err)
	rq.Equal(2, count)

	count, err = testutil.GatherAndCount(reg, "unit_price_title_fallback_total", "unit_price_failed_total")
	rq.NoError(err)
	rq.Equal(2, count)
}
