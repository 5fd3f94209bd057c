package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(
		VoucherViewsTotal,
		ViewRenderDuration,
	)
}

var (
	// Count of voucher detail views grouped by response format and the
	// voucher status that was shown.
	// format: html|json
	// status: active|redeemed|expired|other
	VoucherViewsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voucher_views_total",
			Help: "Count of voucher detail views by format and voucher status.",
		},
		[]string{"format", "status"},
	)

	// Latency of building and writing the view, grouped by format.
	ViewRenderDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "voucher_view_render_seconds",
			Help:    "Duration of voucher view handlers in seconds.",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
		[]string{"format"},
	)
)
