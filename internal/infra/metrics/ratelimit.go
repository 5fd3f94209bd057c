package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(RateLimitedTotal)
}

// Requests rejected by the rate limiter, grouped by backend.
// backend: redis|local
var RateLimitedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "voucher_rate_limited_total",
		Help: "Requests rejected by the rate limiter by backend.",
	},
	[]string{"backend"},
)
