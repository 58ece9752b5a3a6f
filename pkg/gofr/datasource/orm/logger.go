package orm

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"gofr.dev/filterable/pkg/gofr/datasource"
	gofrSQL "gofr.dev/filterable/pkg/gofr/datasource/sql"
)

// queryLogger routes the logs of gorm to a datasource.Logger, queries as sql.Log entries.
type queryLogger struct {
	logger datasource.Logger
	level  gormLogger.LogLevel
}

func newQueryLogger(logger datasource.Logger) gormLogger.Interface {
	return &queryLogger{logger: logger, level: gormLogger.Info}
}

func (q *queryLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l := *q
	l.level = level

	return &l
}

func (q *queryLogger) Info(_ context.Context, msg string, args ...any) {
	if q.level >= gormLogger.Info {
		q.logger.Logf(msg, args...)
	}
}

func (q *queryLogger) Warn(_ context.Context, msg string, args ...any) {
	if q.level >= gormLogger.Warn {
		q.logger.Logf(msg, args...)
	}
}

func (q *queryLogger) Error(_ context.Context, msg string, args ...any) {
	if q.level >= gormLogger.Error {
		q.logger.Errorf(msg, args...)
	}
}

func (q *queryLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if q.level <= gormLogger.Silent {
		return
	}

	query, _ := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		q.logger.Errorf("query %q failed: %v", query, err)

		return
	}

	if q.level >= gormLogger.Info {
		q.logger.Debug(&gofrSQL.Log{Type: "Gorm", Query: query, Duration: time.Since(begin).Microseconds()})
	}
}
