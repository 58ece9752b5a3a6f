package sql

import (
	"context"
	"errors"
)

var errUnsupportedDialect = errors.New("unsupported dialect")

type Metrics interface {
	NewHistogram(name, desc string, buckets ...float64)
	NewGauge(name, desc string)

	RecordHistogram(ctx context.Context, name string, value float64, labels ...string)
	SetGauge(name string, value float64, labels ...string)
}

// RegisterMetrics registers the metrics recorded by DB.
func RegisterMetrics(m Metrics) {
	m.NewHistogram("app_sql_stats", "Response time of SQL queries in microseconds.",
		50, 100, 200, 500, 1000, 5000, 10000, 50000, 100000)
	m.NewGauge("app_sql_open_connections", "Number of open SQL connections.")
	m.NewGauge("app_sql_inUse_connections", "Number of SQL connections in use.")
}
