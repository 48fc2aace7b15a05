package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"unit_price/internal/domain/value"
)

const namespace = "unit_price"

// UnitPrice счётчики расчёта цен за единицу.
type UnitPrice struct {
	normalized    *prometheus.CounterVec
	titleFallback prometheus.Counter
	unknownUnit   prometheus.Counter
	failed        *prometheus.CounterVec
}

func NewUnitPrice(reg prometheus.Registerer) UnitPrice {
	factory := promauto.With(reg)

	return UnitPrice{
		normalized: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "normalized_total",
			Help:      "Normalized prices by canonical unit and rounding mode.",
		}, []string{"unit", "rounding"}),
		titleFallback: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "title_fallback_total",
			Help:      "Titles without a recognizable quantity and unit.",
		}),
		unknownUnit: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unknown_unit_total",
			Help:      "Parsed units missing from the conversion table.",
		}),
		failed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failed_total",
			Help:      "Rejected calculations by error code.",
		}, []string{"code"}),
	}
}

func (m UnitPrice) Normalized(unit value.Unit, rounding string) {
	m.normalized.WithLabelValues(unit.String(), rounding).Inc()
}

func (m UnitPrice) TitleFallback() {
	m.titleFallback.Inc()
}

func (m UnitPrice) UnknownUnit() {
	m.unknownUnit.Inc()
}

func (m UnitPrice) Failed(code string) {
	m.failed.WithLabelValues(code).Inc()
}
