// Package metrics defines and registers all custom Prometheus metrics for
// the InnovaTube API. It is the single source of truth for metric names,
// labels, and help strings. Registration happens at import time via promauto
// against the default registry; the echoprometheus middleware adds the
// standard HTTP request metrics on top.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "innovatube"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created.",
	},
)

// SearchesTotal counts proxied searches that returned results to a client.
var SearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of video searches served.",
	},
)

// SearchCacheTotal counts cache decisions for provider responses.
// Label:
//   - result: "hit" (served from Redis) or "miss" (provider queried)
var SearchCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_cache_total",
		Help:      "Total number of search cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// FavoritesMutationsTotal counts favorite writes.
// Label:
//   - op: "add" or "remove"
var FavoritesMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "favorites_mutations_total",
		Help:      "Total number of favorite add/remove operations.",
	},
	[]string{"op"},
)
