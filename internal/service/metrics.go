package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_sessions_created_total",
		Help: "Total number of storefront sessions created",
	})

	addRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_add_requests_total",
		Help: "Add-to-cart requests by result",
	}, []string{"result"})

	cartLinesAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_cart_lines_added_total",
		Help: "Total number of cart lines appended",
	})

	cartLinesRemoved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_cart_lines_removed_total",
		Help: "Total number of cart lines removed",
	})

	checkoutSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_checkout_submissions_total",
		Help: "Checkout submissions by result",
	}, []string{"result"})

	checkoutsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_checkouts_completed_total",
		Help: "Total number of checkouts that reached done",
	})

	scheduledTasks = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_scheduled_tasks",
		Help: "Number of delayed effects waiting to run",
	})
)

const (
	resultAccepted = "accepted"
	resultRejected = "rejected"
	resultIgnored  = "ignored"
)
