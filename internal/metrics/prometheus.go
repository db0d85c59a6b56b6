package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder exports the gateway's operational counters via Prometheus.
type Recorder struct {
	pollsTotal    *prometheus.CounterVec
	proxyRequests *prometheus.CounterVec
	liveClients   prometheus.Gauge
}

// New registers the marketdash metrics on the default registry.
func New() *Recorder {
	return &Recorder{
		pollsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketdash_polls_total",
				Help: "Upstream poll attempts by source and result",
			},
			[]string{"source", "result"},
		),
		proxyRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketdash_proxy_requests_total",
				Help: "Proxied dashboard requests by endpoint and status class",
			},
			[]string{"endpoint", "class"},
		),
		liveClients: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "marketdash_live_clients",
				Help: "Currently connected live websocket clients",
			},
		),
	}
}

// RecordPoll records one upstream poll attempt.
func (r *Recorder) RecordPoll(source string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.pollsTotal.WithLabelValues(source, result).Inc()
}

// RecordProxyRequest records one forwarded request by status class
// ("2xx", "4xx", "5xx").
func (r *Recorder) RecordProxyRequest(endpoint string, status int) {
	class := "5xx"
	switch {
	case status >= 200 && status < 300:
		class = "2xx"
	case status >= 400 && status < 500:
		class = "4xx"
	}
	r.proxyRequests.WithLabelValues(endpoint, class).Inc()
}

// LiveClientConnected tracks a websocket client attach/detach pair.
func (r *Recorder) LiveClientConnected() func() {
	r.liveClients.Inc()
	return r.liveClients.Dec
}
