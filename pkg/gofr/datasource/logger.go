// Package datasource holds what the datasource packages share. Each datasource lives in its own
// sub package and turns filter conditions into queries of its store.
package datasource

// Logger interface is used by datasource packages to log information about query execution.
// It is a reduced version of logging.Logger, so that datasources do not depend on the logging
// package and logging can render the query logs defined here.
type Logger interface {
	Debug(args ...any)
	Debugf(format string, args ...any)
	Log(args ...any)
	Logf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
}
