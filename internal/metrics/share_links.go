package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameShareLinkResolutions = "share_link_resolutions"
	LabelResult              = "result"

	ResultFound    = "found"
	ResultNotFound = "not_found"
)

var ShareLinkResolutions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameShareLinkResolutions,
		Help:      "Share token lookups",
		Namespace: Namespace,
	},
	[]string{LabelResult},
)

const (
	NameShareLinkChanges = "share_link_changes"

	OperationCreate = "create"
)

var ShareLinkChanges = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameShareLinkChanges,
		Help:      "Share link creations and deletions",
		Namespace: Namespace,
	},
	[]string{LabelOperation},
)
