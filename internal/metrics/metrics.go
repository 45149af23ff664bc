package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	updatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_updates_total",
			Help: "Count of handled telegram updates per kind.",
		},
		[]string{"kind"},
	)

	registrationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_registrations_total",
			Help: "Count of channel registration attempts per outcome.",
		},
		[]string{"outcome"},
	)

	subscriptionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_subscriptions_total",
			Help: "Count of subscription attempts per outcome.",
		},
		[]string{"outcome"},
	)
)

// MustRegister registers all collectors with Prometheus exactly once.
func MustRegister() {
	once.Do(func() {
		prometheus.MustRegister(updatesTotal, registrationsTotal, subscriptionsTotal)
	})
}

func IncUpdate(kind string) {
	updatesTotal.WithLabelValues(kind).Inc()
}

func IncRegistration(outcome string) {
	registrationsTotal.WithLabelValues(outcome).Inc()
}

func IncSubscription(outcome string) {
	subscriptionsTotal.WithLabelValues(outcome).Inc()
}
