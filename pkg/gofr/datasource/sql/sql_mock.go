package sql

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"go.uber.org/mock/gomock"

	"gofr.dev/filterable/pkg/gofr/logging"
)

// NewSQLMocks returns a DB of dialect backed by sqlmock, matching queries exactly, with metrics
// that accept any app_sql_stats record.
func NewSQLMocks(t *testing.T, dialect string) (*DB, sqlmock.Sqlmock, *MockMetrics) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual),
		sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}

	ctrl := gomock.NewController(t)
	mockMetrics := NewMockMetrics(ctrl)

	mockMetrics.EXPECT().RecordHistogram(gomock.Any(), "app_sql_stats", gomock.Any(),
		"hostname", gomock.Any(), "database", gomock.Any(), "type", gomock.Any()).AnyTimes()

	return &DB{
		DB:      sqlx.NewDb(db, "sqlmock"),
		logger:  logging.NewMockLogger(logging.DEBUG),
		config:  &DBConfig{Dialect: dialect, HostName: "localhost", Database: "tools"},
		metrics: mockMetrics,
	}, mock, mockMetrics
}
