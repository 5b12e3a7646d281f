package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the checkout HTTP handler
	CheckoutDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "checkout_latency_seconds",
		Help:    "Latency of the checkout endpoint",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of checkout attempts
	CheckoutTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_requests_total",
		Help: "Total checkout requests received",
	})

	// Checkouts that failed (empty cart, insufficient stock, storage errors)
	CheckoutFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_failures_total",
		Help: "Total checkout requests that did not produce an order",
	})

	// Orders successfully placed
	OrdersPlaced = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Total orders created by checkout",
	})
)

func Init() {
	prometheus.MustRegister(
		CheckoutDuration,
		CheckoutTotal,
		CheckoutFailures,
		OrdersPlaced,
	)
}
