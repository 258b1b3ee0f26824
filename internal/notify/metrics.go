package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	notificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "royal_shop",
		Subsystem: "notify",
		Name:      "notifications_total",
		Help:      "Dispatched notifications by kind and result.",
	}, []string{"kind", "result"})

	notificationsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "royal_shop",
		Subsystem: "notify",
		Name:      "notifications_in_flight",
		Help:      "Notifications dispatched but not yet completed.",
	})

	breakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "royal_shop",
		Subsystem: "notify",
		Name:      "breaker_state",
		Help:      "Circuit breaker state: 0 closed, 1 half-open, 2 open.",
	}, []string{"name"})
)
