package ledgerapp

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "govledger"

	routeLabel   = "route"
	typeLabel    = "type"
	outcomeLabel = "outcome"

	outcomeOK     = "ok"
	outcomeFailed = "failed"
)

// Metrics counts what the application delivered. A nil *Metrics records
// nothing.
type Metrics struct {
	msgs     *prometheus.CounterVec
	rejected *prometheus.CounterVec
	height   prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		msgs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "msgs_delivered",
				Help:      "number of messages delivered, by route, type and outcome",
			},
			[]string{routeLabel, typeLabel, outcomeLabel},
		),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "txs_rejected",
				Help:      "number of transactions rejected before reaching a handler, by codespace",
			},
			[]string{"codespace"},
		),
		height: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "height",
			Help:      "height of the last committed block",
		}),
	}
	for _, c := range []prometheus.Collector{m.msgs, m.rejected, m.height} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) delivered(route, typ string, ok bool) {
	if m == nil {
		return
	}
	outcome := outcomeOK
	if !ok {
		outcome = outcomeFailed
	}
	m.msgs.With(prometheus.Labels{
		routeLabel:   route,
		typeLabel:    typ,
		outcomeLabel: outcome,
	}).Inc()
}

func (m *Metrics) reject(codespace string) {
	if m == nil {
		return
	}
	m.rejected.With(prometheus.Labels{"codespace": codespace}).Inc()
}

func (m *Metrics) committed(height int64) {
	if m == nil {
		return
	}
	m.height.Set(float64(height))
}
