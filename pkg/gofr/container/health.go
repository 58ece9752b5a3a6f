package container

import (
	"context"
	"time"
)

const (
	statusUp   = "UP"
	statusDown = "DOWN"

	healthTimeout = time.Second
)

type Health struct {
	Status  string            `json:"status"`
	Details map[string]string `json:"details,omitempty"`
}

// Health pings every configured datasource. The status is DOWN when any of them does not answer.
func (c *Container) Health(ctx context.Context) *Health {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	h := &Health{Status: statusUp, Details: make(map[string]string)}

	check := func(name string, err error) {
		if err != nil {
			c.Logger.Errorf("health check of %s failed: %v", name, err)

			h.Details[name] = statusDown
			h.Status = statusDown

			return
		}

		h.Details[name] = statusUp
	}

	if c.SQL != nil {
		check("sql", c.SQL.PingContext(ctx))
	}

	if c.ORM != nil {
		sqlDB, err := c.ORM.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}

		check("gorm", err)
	}

	if c.Mongo != nil {
		h.Details["mongo"] = c.Mongo.HealthCheck(ctx).Status
		if h.Details["mongo"] != statusUp {
			h.Status = statusDown
		}
	}

	if c.Elasticsearch != nil {
		check("elasticsearch", c.Elasticsearch.HealthCheck(ctx))
	}

	return h
}
