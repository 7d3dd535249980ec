// Package metrics defines and registers all custom Prometheus metrics for
// the clients API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clients_api"

// ClientsCreatedTotal counts successfully created client records.
var ClientsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_created_total",
		Help:      "Total number of client records created.",
	},
)

// ClientsDeletedTotal counts permanently removed client records.
var ClientsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_deleted_total",
		Help:      "Total number of client records deleted.",
	},
)

// RequestsThrottledTotal counts requests rejected by the rate limiter.
// Label:
//   - path: the throttled route (e.g. "/clients/")
var RequestsThrottledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_throttled_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	},
	[]string{"path"},
)

// AvatarUploadsTotal counts avatar uploads forwarded to the image host.
// Label:
//   - result: "ok" or "error"
var AvatarUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "avatar_uploads_total",
		Help:      "Total number of avatar upload attempts, labelled by result.",
	},
	[]string{"result"},
)
