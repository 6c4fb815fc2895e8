package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Mutation and validation counters, exposed on /metrics. Registered once at
// init so repeated service construction never double-registers.
var (
	ProjectsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "projects_created_total",
		Help: "Total number of project records created",
	})
	ProjectsUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "projects_updated_total",
		Help: "Total number of project records updated",
	})
	ProjectsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "projects_deleted_total",
		Help: "Total number of project records deleted",
	})
	ValidationRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "validation_rejections_total",
		Help: "Total number of create/update submissions rejected by validation",
	})
	SearchQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "search_queries_total",
		Help: "Total number of non-empty search queries",
	})
)
