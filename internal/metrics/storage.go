package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameBlobCacheLookups = "blob_cache_lookups"

	ResultHit  = "hit"
	ResultMiss = "miss"
)

var BlobCacheLookups = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameBlobCacheLookups,
		Help:      "Blob cache lookups",
		Namespace: Namespace,
	},
	[]string{LabelResult},
)

const (
	NameDocumentDecodeErrors = "document_decode_errors"
	LabelDocument            = "document"
)

var DocumentDecodeErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameDocumentDecodeErrors,
		Help:      "Stored documents that could not be decoded and were treated as empty",
		Namespace: Namespace,
	},
	[]string{LabelDocument},
)
