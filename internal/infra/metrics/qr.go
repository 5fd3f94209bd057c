package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(
		QRRendersTotal,
		QRRenderDuration,
	)
}

var (
	// Count of QR symbol renders grouped by result.
	// result: ok|empty_data|bad_size|encode_error
	QRRendersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voucher_qr_renders_total",
			Help: "Count of QR PNG renders by result.",
		},
		[]string{"result"},
	)

	// Latency of QR encoding, successful renders only.
	QRRenderDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "voucher_qr_render_seconds",
			Help:    "Duration of successful QR PNG renders in seconds.",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
	)
)
