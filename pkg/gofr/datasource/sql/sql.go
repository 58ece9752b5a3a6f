package sql

import (
	"context"
	"fmt"
	"strconv"
	"time"

	_ "github.com/go-sql-driver/mysql" // registers the mysql driver
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // registers the postgres driver

	"gofr.dev/filterable/pkg/gofr/config"
	"gofr.dev/filterable/pkg/gofr/datasource"
)

const (
	defaultMySQLPort    = 3306
	defaultPostgresPort = 5432
	statsFrequency      = 10 * time.Second
)

// DBConfig has those members which are necessary variables while connecting to database.
type DBConfig struct {
	Dialect  string
	HostName string
	User     string
	Password string
	Port     string
	Database string
	SSLMode  string
}

// NewSQL connects to the database described by DB_DIALECT (mysql or postgres), DB_HOST, DB_PORT,
// DB_USER, DB_PASSWORD, DB_NAME and DB_SSL_MODE. It returns nil when DB_HOST is not set or the
// dialect is not supported. A database that does not answer the ping is logged and returned
// anyway; the connection is retried on use.
func NewSQL(configs config.Config, logger datasource.Logger, metrics Metrics) *DB {
	dbConfig := NewDBConfig(configs)

	// if Hostname is not provided, we won't try to connect to DB
	if dbConfig.HostName == "" {
		return nil
	}

	dsn, err := dbConfig.DSN()
	if err != nil {
		logger.Errorf("could not connect to database: %v", err)

		return nil
	}

	db, err := sqlx.Open(dbConfig.Dialect, dsn)
	if err != nil {
		logger.Errorf("could not open '%s' database at %s:%s, error: %v", dbConfig.Dialect, dbConfig.HostName, dbConfig.Port, err)

		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		logger.Errorf("could not connect with '%s' user to database '%s:%s'  error: %v",
			dbConfig.User, dbConfig.HostName, dbConfig.Port, err)
	} else {
		logger.Logf("connected to '%s' database at %s:%s", dbConfig.Database, dbConfig.HostName, dbConfig.Port)
	}

	d := &DB{DB: db, config: dbConfig, logger: logger, metrics: metrics, done: make(chan struct{})}

	go pushDBMetrics(d, d.done)

	return d
}

// NewDBConfig reads the DB_* configs, defaulting the port to the one of the dialect.
func NewDBConfig(configs config.Config) *DBConfig {
	dialect := configs.GetOrDefault("DB_DIALECT", DialectMySQL)

	port := strconv.Itoa(defaultMySQLPort)
	if dialect == DialectPostgres {
		port = strconv.Itoa(defaultPostgresPort)
	}

	return &DBConfig{
		Dialect:  dialect,
		HostName: configs.Get("DB_HOST"),
		User:     configs.Get("DB_USER"),
		Password: configs.Get("DB_PASSWORD"),
		Port:     configs.GetOrDefault("DB_PORT", port),
		Database: configs.Get("DB_NAME"),
		SSLMode:  configs.GetOrDefault("DB_SSL_MODE", "disable"),
	}
}

// DSN returns the data source name the driver of c.Dialect connects with.
func (c *DBConfig) DSN() (string, error) {
	switch c.Dialect {
	case DialectMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8&parseTime=True&loc=Local&interpolateParams=true",
			c.User, c.Password, c.HostName, c.Port, c.Database), nil
	case DialectPostgres:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.HostName, c.Port, c.User, c.Password, c.Database, c.SSLMode), nil
	default:
		return "", fmt.Errorf("%w: %q", errUnsupportedDialect, c.Dialect)
	}
}

func pushDBMetrics(d *DB, done <-chan struct{}) {
	ticker := time.NewTicker(statsFrequency)
	defer ticker.Stop()

	for {
		stats := d.DB.Stats()

		d.metrics.SetGauge("app_sql_open_connections", float64(stats.OpenConnections))
		d.metrics.SetGauge("app_sql_inUse_connections", float64(stats.InUse))

		select {
		case <-done:
			return
		case <-ticker.C:
		}
	}
}
