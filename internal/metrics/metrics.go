// Package metrics exposes prometheus counters for the reservation core.
// The HTTP layer serves them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TicketsBooked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reservation_tickets_booked_total",
		Help: "The total number of tickets booked",
	})
	TicketsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reservation_tickets_cancelled_total",
		Help: "The total number of tickets cancelled",
	})
	PaymentsSettled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reservation_payments_settled_total",
		Help: "The total number of payments settled",
	})
	SeatHoldConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reservation_seat_hold_conflicts_total",
		Help: "The total number of booking attempts that lost a seat to a concurrent hold",
	})
)
