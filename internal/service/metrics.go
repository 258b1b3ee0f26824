package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "royal_shop",
		Subsystem: "shop",
		Name:      "orders_placed_total",
		Help:      "Orders placed.",
	})

	statusUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "royal_shop",
		Subsystem: "shop",
		Name:      "status_updates_total",
		Help:      "Order status updates by target status and outcome.",
	}, []string{"status", "outcome"})

	stockUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "royal_shop",
		Subsystem: "shop",
		Name:      "stock_updates_total",
		Help:      "Merchant stock edits by outcome.",
	}, []string{"outcome"})

	cartMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "royal_shop",
		Subsystem: "shop",
		Name:      "cart_mutations_total",
		Help:      "Cart mutations by operation and outcome.",
	}, []string{"op", "outcome"})
)
