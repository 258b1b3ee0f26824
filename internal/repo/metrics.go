package repo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var persistWrites = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "royal_shop",
	Subsystem: "storage",
	Name:      "order_snapshot_writes_total",
	Help:      "Order sequence snapshot writes by result.",
}, []string{"result"})
