// Package elasticsearch searches Elasticsearch indices with queries narrowed by filter conditions.
package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v7"
	"github.com/elastic/go-elasticsearch/v7/esapi"

	"gofr.dev/filterable/pkg/gofr/config"
	"gofr.dev/filterable/pkg/gofr/datasource"
	"gofr.dev/filterable/pkg/gofr/filter"
)

var (
	errEmptyIndex      = errors.New("index name cannot be empty")
	errOperation       = errors.New("elasticsearch operation error")
	errMarshaling      = errors.New("error marshaling data")
	errParsingResponse = errors.New("error parsing response")
	errResponse        = errors.New("invalid elasticsearch response")
)

// Client is an Elasticsearch client logging every search and recording its duration.
type Client struct {
	*elasticsearch.Client

	addresses []string
	logger    datasource.Logger
	metrics   Metrics
}

// New creates a client for the comma separated ELASTICSEARCH_ADDRESSES, authenticating with
// ELASTICSEARCH_USERNAME and ELASTICSEARCH_PASSWORD. It returns nil when no address is set or the
// client cannot be created.
func New(configs config.Config, logger datasource.Logger, metrics Metrics) *Client {
	addresses := splitAddresses(configs.Get("ELASTICSEARCH_ADDRESSES"))
	if len(addresses) == 0 {
		return nil
	}

	logger.Debugf("connecting to Elasticsearch at %v", addresses)

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: addresses,
		Username:  configs.Get("ELASTICSEARCH_USERNAME"),
		Password:  configs.Get("ELASTICSEARCH_PASSWORD"),
	})
	if err != nil {
		logger.Errorf("error creating Elasticsearch client: %v", err)

		return nil
	}

	return &Client{Client: client, addresses: addresses, logger: logger, metrics: metrics}
}

func splitAddresses(s string) []string {
	var addresses []string

	for _, a := range strings.Split(s, ",") {
		if a = strings.TrimSpace(a); a != "" {
			addresses = append(addresses, a)
		}
	}

	return addresses
}

// Query returns a bool query keeping the documents whose fields equal every condition of c, or a
// match_all query when c is empty.
//
//	{"bool": {"filter": [{"term": {"location": "firstLocation"}}, {"term": {"type": "hammer"}}]}}
func Query(c filter.Conditions) map[string]any {
	if c.IsEmpty() {
		return map[string]any{"match_all": map[string]any{}}
	}

	return map[string]any{"bool": map[string]any{"filter": terms(c)}}
}

func terms(c filter.Conditions) []any {
	values := c.Values()
	t := make([]any, 0, c.Len())

	for i, f := range c.Fields() {
		t = append(t, map[string]any{"term": map[string]any{f: values[i]}})
	}

	return t
}

// Applier narrows search queries with filter conditions, keeping the original query as a must
// clause so that scoring is unchanged.
type Applier struct{}

func (Applier) Apply(query map[string]any, c filter.Conditions) map[string]any {
	if c.IsEmpty() {
		return query
	}

	b := map[string]any{"filter": terms(c)}
	if len(query) > 0 {
		b["must"] = []any{query}
	}

	return map[string]any{"bool": b}
}

// Search runs query against index and returns the _source of every hit.
func (c *Client) Search(ctx context.Context, index string, query map[string]any) ([]map[string]any, error) {
	if strings.TrimSpace(index) == "" {
		return nil, errEmptyIndex
	}

	body, err := json.Marshal(map[string]any{"query": query})
	if err != nil {
		return nil, fmt.Errorf("%w: query: %w", errMarshaling, err)
	}

	defer c.sendOperationStats(time.Now(), index, query)

	req := esapi.SearchRequest{
		Index: []string{index},
		Body:  bytes.NewReader(body),
	}

	res, err := req.Do(ctx, c.Client)
	if err != nil {
		return nil, fmt.Errorf("%w: executing search: %w", errOperation, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("%w: %s", errResponse, res.String())
	}

	var result struct {
		Hits struct {
			Hits []struct {
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %w", errParsingResponse, err)
	}

	sources := make([]map[string]any, len(result.Hits.Hits))
	for i, h := range result.Hits.Hits {
		sources[i] = h.Source
	}

	return sources, nil
}

// SearchWhere returns the _source of the documents of index matching the filter conditions.
func (c *Client) SearchWhere(ctx context.Context, index string, conditions filter.Conditions) ([]map[string]any, error) {
	return c.Search(ctx, index, Query(conditions))
}

func (c *Client) sendOperationStats(start time.Time, index string, query map[string]any) {
	duration := time.Since(start).Milliseconds()

	c.logger.Debug(&QueryLog{Index: index, Query: query, Duration: duration})

	c.metrics.RecordHistogram(context.Background(), "app_elasticsearch_stats", float64(duration),
		"hostname", strings.Join(c.addresses, ","), "index", index)
}

// HealthCheck pings the cluster.
func (c *Client) HealthCheck(ctx context.Context) error {
	res, err := c.Client.Ping(c.Client.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%w: ping: %w", errOperation, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("%w: %s", errResponse, res.String())
	}

	return nil
}
