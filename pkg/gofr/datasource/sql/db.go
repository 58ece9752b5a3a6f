// Package sql provides functionalities to interact with SQL databases using the github.com/jmoiron/sqlx
// package. It wraps sqlx.DB to log queries and record their metrics, and builds the WHERE clauses of
// filter conditions for MySQL and PostgreSQL.
package sql

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"gofr.dev/filterable/pkg/gofr/datasource"
	"gofr.dev/filterable/pkg/gofr/filter"
)

//nolint:gochecknoglobals // compiled once
var whitespace = regexp.MustCompile(`\s+`)

// DB is a wrapper around sqlx.DB which provides some more features.
type DB struct {
	*sqlx.DB
	logger  datasource.Logger
	config  *DBConfig
	metrics Metrics
	done    chan struct{}
}

type Log struct {
	Type     string `json:"type"`
	Query    string `json:"query"`
	Duration int64  `json:"duration"`
	Args     []any  `json:"args,omitempty"`
}

func (l *Log) PrettyPrint(writer io.Writer) {
	fmt.Fprintf(writer, "\u001B[38;5;8m%-32s \u001B[38;5;24m%-6s\u001B[0m %8d\u001B[38;5;8mµs\u001B[0m %s\n",
		l.Type, "SQL", l.Duration, clean(l.Query))
}

func clean(query string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(query, " "))
}

func (d *DB) sendOperationStats(start time.Time, queryType, query string, args ...any) {
	duration := time.Since(start).Microseconds()

	d.logger.Debug(&Log{
		Type:     queryType,
		Query:    query,
		Duration: duration,
		Args:     args,
	})

	d.metrics.RecordHistogram(context.Background(), "app_sql_stats", float64(duration), "hostname", d.config.HostName,
		"database", d.config.Database, "type", getOperationType(query))
}

func getOperationType(query string) string {
	query = strings.TrimSpace(query)
	word, _, _ := strings.Cut(query, " ")

	return strings.ToUpper(word)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	defer d.sendOperationStats(time.Now(), "QueryContext", query, args...)
	return d.DB.QueryContext(ctx, query, args...)
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	defer d.sendOperationStats(time.Now(), "ExecContext", query, args...)
	return d.DB.ExecContext(ctx, query, args...)
}

// Select runs a query with args and scans every row into dest, a pointer to a slice of structs
// (columns matched by their db tag) or of scalars.
//
//	var products []Product
//	err := db.Select(ctx, &products, "SELECT * FROM products WHERE type=?", "hammer")
func (d *DB) Select(ctx context.Context, dest any, query string, args ...any) error {
	defer d.sendOperationStats(time.Now(), "Select", query, args...)
	return d.DB.SelectContext(ctx, dest, query, args...)
}

// SelectWhere selects the rows of table matching the filter conditions c into dest.
func (d *DB) SelectWhere(ctx context.Context, dest any, table string, c filter.Conditions) error {
	query, args := SelectWhereQuery(d.Dialect(), table, c)

	return d.Select(ctx, dest, query, args...)
}

func (d *DB) Dialect() string {
	return d.config.Dialect
}

// Applier narrows queries of this database with filter conditions.
func (d *DB) Applier() Applier {
	return Applier{Dialect: d.Dialect()}
}

func (d *DB) Close() error {
	if d.done != nil {
		close(d.done)
		d.done = nil
	}

	if d.DB != nil {
		return d.DB.Close()
	}

	return nil
}
