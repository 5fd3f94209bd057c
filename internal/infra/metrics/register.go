package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once    sync.Once
	pending []prometheus.Collector
)

// register queues collectors from each metrics file's init().
func register(cs ...prometheus.Collector) {
	pending = append(pending, cs...)
}

// MustRegister installs every queued collector exactly once. Call it
// from main before the first request is served.
func MustRegister() {
	once.Do(func() {
		if len(pending) > 0 {
			prometheus.MustRegister(pending...)
		}
	})
}
