/*
Package container holds the application level concerns shared by handlers: the logger, the metrics
manager, the filter policy and the datasources filter conditions are applied to.

Supported data sources:
  - SQL databases through sqlx or gorm (MySQL, PostgreSQL)
  - MongoDB
  - Elasticsearch
*/
package container

import (
	"context"
	"errors"

	"gofr.dev/filterable/pkg/gofr/config"
	"gofr.dev/filterable/pkg/gofr/datasource/elasticsearch"
	"gofr.dev/filterable/pkg/gofr/datasource/mongo"
	"gofr.dev/filterable/pkg/gofr/datasource/orm"
	"gofr.dev/filterable/pkg/gofr/datasource/sql"
	"gofr.dev/filterable/pkg/gofr/filter"
	"gofr.dev/filterable/pkg/gofr/http/middleware"
	"gofr.dev/filterable/pkg/gofr/logging"
	"gofr.dev/filterable/pkg/gofr/metrics"
)

// Container is a collection of all common application level concerns. Datasources whose configs are
// not set stay nil.
type Container struct {
	logging.Logger

	appName    string
	appVersion string

	metricsManager metrics.Manager

	FilterPolicy filter.Policy

	SQL           *sql.DB
	ORM           *orm.DB
	Mongo         *mongo.Client
	Elasticsearch *elasticsearch.Client
}

func NewContainer(conf config.Config) *Container {
	if conf == nil {
		return &Container{}
	}

	c := &Container{}
	c.Create(conf)

	return c
}

// Create fills c from conf. DB_ORM=gorm connects the database with gorm instead of sqlx.
func (c *Container) Create(conf config.Config) {
	c.appName = conf.GetOrDefault("APP_NAME", "filterable-app")
	c.appVersion = conf.GetOrDefault("APP_VERSION", "dev")

	if c.Logger == nil {
		c.Logger = logging.NewLogger(logging.GetLevelFromString(conf.Get("LOG_LEVEL")))
	}

	c.Logger.Debug("Container is being created")

	c.metricsManager = metrics.NewMetricsManager(c.Logger)

	c.registerFrameworkMetrics()

	c.Metrics().SetGauge("app_info", 1, "app_name", c.GetAppName(), "app_version", c.GetAppVersion())

	c.FilterPolicy = filter.PolicyFromConfig(conf)

	if conf.Get("DB_ORM") == "gorm" {
		c.ORM = orm.New(conf, c.Logger)
	} else {
		c.SQL = sql.NewSQL(conf, c.Logger, c.metricsManager)
	}

	c.Mongo = mongo.New(conf, c.Logger, c.metricsManager)
	c.Elasticsearch = elasticsearch.New(conf, c.Logger, c.metricsManager)
}

func (c *Container) Close() error {
	var err error

	if c.SQL != nil {
		err = errors.Join(err, c.SQL.Close())
	}

	if c.ORM != nil {
		err = errors.Join(err, c.ORM.Close())
	}

	if c.Mongo != nil {
		err = errors.Join(err, c.Mongo.Client().Disconnect(context.Background()))
	}

	return err
}

func (c *Container) Metrics() metrics.Manager {
	return c.metricsManager
}

func (c *Container) registerFrameworkMetrics() {
	c.Metrics().NewGauge("app_info", "Info for app_name and app_version.")

	middleware.RegisterMetrics(c.Metrics())
	filter.RegisterMetrics(c.Metrics())
	sql.RegisterMetrics(c.Metrics())
	mongo.RegisterMetrics(c.Metrics())
	elasticsearch.RegisterMetrics(c.Metrics())
}

func (c *Container) GetAppName() string {
	return c.appName
}

func (c *Container) GetAppVersion() string {
	return c.appVersion
}
