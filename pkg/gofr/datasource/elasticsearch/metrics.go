package elasticsearch

import "context"

type Metrics interface {
	NewHistogram(name, desc string, buckets ...float64)

	RecordHistogram(ctx context.Context, name string, value float64, labels ...string)
}

// RegisterMetrics registers the metrics recorded by Client.
func RegisterMetrics(m Metrics) {
	m.NewHistogram("app_elasticsearch_stats", "Response time of Elasticsearch searches in milliseconds.",
		.05, .1, .2, .5, 1, 2, 5, 10, 50, 100)
}
