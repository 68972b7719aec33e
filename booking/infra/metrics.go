package infra

import (
	"context"

	"ticket-booking/booking/domain"

	"github.com/prometheus/client_golang/prometheus"
)

// Gauge é o mínimo que o MetricsReporter precisa do pool para expor
// quantos workers estão admitidos.
type Gauge interface {
	InUse() int
}

// MetricsReporter conta resultados por sessão/outcome no Prometheus.
type MetricsReporter struct {
	outcomes *prometheus.CounterVec
}

// NewMetricsReporter registra os coletores em reg. pool pode ser nil.
func NewMetricsReporter(reg prometheus.Registerer, pool Gauge) (*MetricsReporter, error) {
	m := &MetricsReporter{
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "booking",
			Name:      "outcomes_total",
			Help:      "Reservation attempts by show and outcome",
		}, []string{"show", "outcome"}),
	}
	if err := reg.Register(m.outcomes); err != nil {
		return nil, err
	}
	if pool != nil {
		admitted := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "booking",
			Name:      "admitted_workers",
			Help:      "Workers currently holding an admission permit",
		}, func() float64 { return float64(pool.InUse()) })
		if err := reg.Register(admitted); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *MetricsReporter) Report(_ context.Context, res domain.Result) error {
	m.outcomes.WithLabelValues(res.Show.String(), res.Outcome.String()).Inc()
	return nil
}
