// Package metrics exposes Prometheus instrumentation for the procurement service.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "procurement"

var (
	// Receipt metrics
	ReceiptCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "goods_receipts_total",
			Help:      "Total number of goods receipt attempts by outcome",
		},
		[]string{"outcome"},
	)

	ReceivedQuantityCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "received_quantity_total",
		Help:      "Total quantity of goods received across all orders",
	})

	// Order metrics
	OrdersCreatedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchase_orders_created_total",
		Help:      "Total number of purchase orders created",
	})

	OrdersCanceledCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchase_orders_canceled_total",
		Help:      "Total number of purchase orders canceled",
	})

	// Request metrics
	RequestDurationHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	APIRequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"method", "path"},
	)

	APIErrorCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_errors_total",
			Help:      "Total number of API error responses",
		},
		[]string{"method", "path", "status"},
	)
)

// RecordReceipt increments the receipt counter for the given outcome.
// Outcome is one of "accepted", "rejected", "failed".
func RecordReceipt(outcome string) {
	ReceiptCounter.With(prometheus.Labels{"outcome": outcome}).Inc()
}

// Middleware tracks request counts, durations, and error responses.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			APIRequestCounter.With(prometheus.Labels{
				"method": c.Request().Method,
				"path":   c.Path(),
			}).Inc()

			err := next(c)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(c.Response().Status)
			RequestDurationHistogram.With(prometheus.Labels{
				"method": c.Request().Method,
				"path":   c.Path(),
				"status": status,
			}).Observe(duration)

			if c.Response().Status >= 400 {
				APIErrorCounter.With(prometheus.Labels{
					"method": c.Request().Method,
					"path":   c.Path(),
					"status": status,
				}).Inc()
			}

			return err
		}
	}
}

// HandlerFunc returns an HTTP handler serving the Prometheus scrape endpoint.
func HandlerFunc() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
