// Package orm narrows gorm queries with filter conditions and connects gorm to the databases
// configured by DB_* configs.
package orm

import (
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gofr.dev/filterable/pkg/gofr/config"
	"gofr.dev/filterable/pkg/gofr/datasource"
	gofrSQL "gofr.dev/filterable/pkg/gofr/datasource/sql"
)

// DB is a gorm client for the database of config.
type DB struct {
	*gorm.DB
	config *gofrSQL.DBConfig
}

// New opens a gorm client with the same DB_* configs as sql.NewSQL. It returns nil when DB_HOST is
// not set or the database cannot be opened.
func New(configs config.Config, logger datasource.Logger) *DB {
	dbConfig := gofrSQL.NewDBConfig(configs)
	if dbConfig.HostName == "" {
		return nil
	}

	dsn, err := dbConfig.DSN()
	if err != nil {
		logger.Errorf("could not connect to database: %v", err)

		return nil
	}

	var dialector gorm.Dialector

	switch dbConfig.Dialect {
	case gofrSQL.DialectPostgres:
		dialector = postgres.Open(dsn)
	default:
		dialector = mysql.Open(dsn)
	}

	db, err := Open(dialector, logger)
	if err != nil {
		logger.Errorf("could not connect with '%s' user to database '%s:%s'  error: %v",
			dbConfig.User, dbConfig.HostName, dbConfig.Port, err)

		return nil
	}

	logger.Logf("connected to '%s' database at %s:%s", dbConfig.Database, dbConfig.HostName, dbConfig.Port)

	return &DB{DB: db, config: dbConfig}
}

// Open opens dialector with its queries logged on logger.
func Open(dialector gorm.Dialector, logger datasource.Logger) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{Logger: newQueryLogger(logger), SkipDefaultTransaction: true})
}

// Dialect returns the dialect DB was opened with.
func (d *DB) Dialect() string {
	return d.config.Dialect
}

// Close closes the connection pool of d.
func (d *DB) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
