// Package metrics defines and registers all custom Prometheus metrics for
// the booking API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default registry via promauto; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booking"

// TokensIssuedTotal counts bearer tokens issued by POST /tokens.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of bearer tokens issued.",
	},
)

// AuthFailuresTotal counts rejected requests at the guard layer.
// Label:
//   - reason: "missing_header", "invalid_header", "invalid_token", "forbidden"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the auth middleware.",
	},
	[]string{"reason"},
)

// UsersCreatedTotal counts newly registered users (duplicates excluded).
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created.",
	},
)

// PaymentsRecordedTotal counts successfully recorded payments.
var PaymentsRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_recorded_total",
		Help:      "Total number of payments recorded.",
	},
)

// PaymentIntentsTotal counts payment-intent calls to the provider.
// Label:
//   - outcome: "ok" or "error"
var PaymentIntentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_intents_total",
		Help:      "Total number of payment intents requested from the provider, by outcome.",
	},
	[]string{"outcome"},
)

// PopularCacheTotal counts popular-listing cache lookups.
// Label:
//   - result: "hit" or "miss"
var PopularCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "popular_cache_total",
		Help:      "Total number of popular-listing cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
