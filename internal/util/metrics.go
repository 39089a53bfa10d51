package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ItemsStockedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_items_stocked_total",
		Help: "Total number of inventory records stocked into the ledger",
	})

	DispatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_dispatch_total",
		Help: "Total number of dispatch attempts by result",
	}, []string{"result"})

	CustomersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_customers_created_total",
		Help: "Total number of checkout sessions opened",
	})

	CheckoutAmount = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pos_checkout_amount",
		Help:    "Check-out totals including tax",
		Buckets: []float64{10, 50, 100, 250, 500, 1000, 5000},
	})
)
