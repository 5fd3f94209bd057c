package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(LinkVerificationsTotal)
}

// Signed deep link verifications grouped by result.
// result: ok|invalid|expired
var LinkVerificationsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "voucher_link_verifications_total",
		Help: "Signed voucher link verifications by result.",
	},
	[]string{"result"},
)
