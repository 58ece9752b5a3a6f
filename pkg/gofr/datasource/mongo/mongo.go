// Package mongo reads MongoDB collections narrowed by filter conditions, logging every query and
// recording its duration.
package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"gofr.dev/filterable/pkg/gofr/config"
	"gofr.dev/filterable/pkg/gofr/datasource"
	"gofr.dev/filterable/pkg/gofr/filter"
)

const connectTimeout = 5 * time.Second

type Client struct {
	*mongo.Database

	uri      string
	database string
	logger   datasource.Logger
	metrics  Metrics
}

// New connects to MONGO_URI and uses MONGO_DATABASE. It returns nil when MONGO_URI is not set or
// the client cannot be created.
func New(configs config.Config, logger datasource.Logger, metrics Metrics) *Client {
	uri := configs.Get("MONGO_URI")
	if uri == "" {
		return nil
	}

	database := configs.Get("MONGO_DATABASE")

	logger.Logf("connecting to mongoDB at %v to database %v", uri, database)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	m, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logger.Errorf("error connecting to mongoDB, err:%v", err)

		return nil
	}

	return &Client{Database: m.Database(database), uri: uri, database: database, logger: logger, metrics: metrics}
}

// Filter returns the query document matching every condition of c, in field order.
//
//	Filter(c) // {location: "firstLocation", type: "hammer"}
func Filter(c filter.Conditions) bson.D {
	values := c.Values()
	doc := make(bson.D, 0, c.Len())

	for i, f := range c.Fields() {
		doc = append(doc, bson.E{Key: f, Value: values[i]})
	}

	return doc
}

// Applier narrows bson.D query documents with filter conditions. A condition replaces an element of
// the query with the same key.
type Applier struct{}

func (Applier) Apply(query bson.D, c filter.Conditions) bson.D {
	doc := make(bson.D, 0, len(query)+c.Len())

	for _, e := range query {
		if _, ok := c.Get(e.Key); !ok {
			doc = append(doc, e)
		}
	}

	return append(doc, Filter(c)...)
}

// Find decodes the documents of collection matching query into results, a pointer to a slice.
func (c *Client) Find(ctx context.Context, collection string, query, results any) error {
	defer c.postProcess(&QueryLog{Query: "find", Collection: collection, Filter: query}, time.Now())

	cur, err := c.Database.Collection(collection).Find(ctx, query)
	if err != nil {
		return err
	}

	defer cur.Close(ctx)

	return cur.All(ctx, results)
}

// FindWhere decodes the documents of collection matching the filter conditions into results.
func (c *Client) FindWhere(ctx context.Context, collection string, conditions filter.Conditions, results any) error {
	return c.Find(ctx, collection, Filter(conditions), results)
}

func (c *Client) FindOne(ctx context.Context, collection string, query, result any) error {
	defer c.postProcess(&QueryLog{Query: "findOne", Collection: collection, Filter: query}, time.Now())

	b, err := c.Database.Collection(collection).FindOne(ctx, query).DecodeBytes()
	if err != nil {
		return err
	}

	return bson.Unmarshal(b, result)
}

func (c *Client) CountDocuments(ctx context.Context, collection string, query any) (int64, error) {
	defer c.postProcess(&QueryLog{Query: "countDocuments", Collection: collection, Filter: query}, time.Now())

	return c.Database.Collection(collection).CountDocuments(ctx, query)
}

func (c *Client) postProcess(ql *QueryLog, startTime time.Time) {
	duration := time.Since(startTime).Milliseconds()

	ql.Duration = duration

	c.logger.Debug(ql)

	c.metrics.RecordHistogram(context.Background(), "app_mongo_stats", float64(duration),
		"hostname", c.uri, "database", c.database, "type", ql.Query)
}

type Health struct {
	Status  string         `json:"status,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

func (c *Client) HealthCheck(ctx context.Context) *Health {
	h := Health{
		Details: map[string]any{"host": c.uri, "database": c.database},
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	if err := c.Database.Client().Ping(ctx, readpref.Primary()); err != nil {
		h.Status = "DOWN"

		return &h
	}

	h.Status = "UP"

	return &h
}
