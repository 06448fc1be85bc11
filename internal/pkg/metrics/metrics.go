// Package metrics defines and registers the custom Prometheus metrics of the
// sweet shop API. It is the single source of truth for metric names, labels,
// and help strings.
//
// All metrics are registered with the default registry at package init via
// promauto; HTTP request metrics come from echoprometheus in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sweetshop"

// ── Inventory metrics ─────────────────────────────────────────────────────────

// PurchasesTotal counts purchase attempts that reached the store.
// Label:
//   - result: "success" or "rejected" (insufficient stock or unknown sweet)
var PurchasesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_total",
		Help:      "Total number of purchase attempts, by result.",
	},
	[]string{"result"},
)

// UnitsPurchasedTotal counts units removed from stock by successful purchases.
var UnitsPurchasedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "units_purchased_total",
		Help:      "Total number of units sold.",
	},
)

// RestocksTotal counts successful restocks.
var RestocksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "restocks_total",
		Help:      "Total number of successful restock operations.",
	},
)

// MovementsRecordedTotal counts audit trail writes.
// Label:
//   - result: "ok", "error" or "dropped" (queue full or stopped)
var MovementsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "movements_recorded_total",
		Help:      "Total number of stock movements written to the audit trail, by result.",
	},
	[]string{"result"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts register and login attempts.
// Labels:
//   - action: "register" or "login"
//   - result: "success", "failure" or "duplicate"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by action and result.",
	},
	[]string{"action", "result"},
)

// RateLimitedTotal counts requests rejected by the rate limiter.
// Label:
//   - route: the matched route path (e.g. "/api/auth/login")
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	},
	[]string{"route"},
)
