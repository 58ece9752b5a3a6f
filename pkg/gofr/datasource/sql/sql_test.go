package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"gofr.dev/filterable/pkg/gofr/config"
	"gofr.dev/filterable/pkg/gofr/logging"
	"gofr.dev/filterable/pkg/gofr/testutil"
)

func TestNewDBConfig(t *testing.T) {
	tests := []struct {
		desc     string
		configs  map[string]string
		expected *DBConfig
	}{
		{"mysql defaults", map[string]string{"DB_HOST": "localhost", "DB_NAME": "tools"},
			&DBConfig{Dialect: "mysql", HostName: "localhost", Port: "3306", Database: "tools", SSLMode: "disable"}},
		{"postgres defaults", map[string]string{"DB_DIALECT": "postgres", "DB_HOST": "db", "DB_USER": "app"},
			&DBConfig{Dialect: "postgres", HostName: "db", User: "app", Port: "5432", SSLMode: "disable"}},
		{"explicit port", map[string]string{"DB_DIALECT": "postgres", "DB_PORT": "6432", "DB_SSL_MODE": "require"},
			&DBConfig{Dialect: "postgres", Port: "6432", SSLMode: "require"}},
	}

	for i, tc := range tests {
		assert.Equal(t, tc.expected, NewDBConfig(config.NewMockConfig(tc.configs)), "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestDBConfig_DSN(t *testing.T) {
	mysqlDSN, err := (&DBConfig{Dialect: "mysql", HostName: "localhost", User: "root", Password: "pw",
		Port: "3306", Database: "tools"}).DSN()
	assert.NoError(t, err)
	assert.Equal(t, "root:pw@tcp(localhost:3306)/tools?charset=utf8&parseTime=True&loc=Local&interpolateParams=true", mysqlDSN)

	pgDSN, err := (&DBConfig{Dialect: "postgres", HostName: "localhost", User: "root", Password: "pw",
		Port: "5432", Database: "tools", SSLMode: "disable"}).DSN()
	assert.NoError(t, err)
	assert.Equal(t, "host=localhost port=5432 user=root password=pw dbname=tools sslmode=disable", pgDSN)

	_, err = (&DBConfig{Dialect: "sqlite"}).DSN()
	assert.ErrorIs(t, err, errUnsupportedDialect)
}

func TestNewSQL_NoHost(t *testing.T) {
	db := NewSQL(config.NewMockConfig(nil), logging.NewMockLogger(logging.DEBUG), nil)

	assert.Nil(t, db)
}

func TestNewSQL_UnsupportedDialect(t *testing.T) {
	var db *DB

	logs := testutil.StderrOutputForFunc(func() {
		db = NewSQL(config.NewMockConfig(map[string]string{"DB_HOST": "localhost", "DB_DIALECT": "sqlite"}),
			logging.NewMockLogger(logging.DEBUG), nil)
	})

	assert.Nil(t, db)
	assert.Contains(t, logs, `unsupported dialect: "sqlite"`)
}

func TestRegisterMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockMetrics := NewMockMetrics(ctrl)

	mockMetrics.EXPECT().NewHistogram("app_sql_stats", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
		gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
	mockMetrics.EXPECT().NewGauge("app_sql_open_connections", gomock.Any())
	mockMetrics.EXPECT().NewGauge("app_sql_inUse_connections", gomock.Any())

	RegisterMetrics(mockMetrics)

}
