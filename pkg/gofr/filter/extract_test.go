package filter

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"gofr.dev/filterable/pkg/gofr/queryparam"
)

type request string

func (r request) QueryValues() queryparam.Values {
	return queryparam.Parse(string(r))
}

func TestExtract(t *testing.T) {
	allowAll := Policy{AllowAll: true}

	tests := []struct {
		desc     string
		query    string
		policy   Policy
		expected map[string]string
	}{
		{"no query parameters", "", allowAll, map[string]string{}},
		{"allow all", "filter[]=location&filter[]=type&value[]=firstLocation&value[]=firstType", allowAll,
			map[string]string{"location": "firstLocation", "type": "firstType"}},
		{"allow all disabled", "filter[]=location&filter[]=type&value[]=firstLocation&value[]=firstType",
			Policy{}, map[string]string{}},
		{"allow list matches", "filter[]=location&filter[]=type&value[]=firstLocation&value[]=firstType",
			Policy{AllowList: []string{"location", "type"}},
			map[string]string{"location": "firstLocation", "type": "firstType"}},
		{"allow list matches one field", "filter[]=location&filter[]=type&value[]=firstLocation&value[]=firstType",
			Policy{AllowList: []string{"location"}}, map[string]string{"location": "firstLocation"}},
		{"allow all ignores allow list", "filter[]=location&value[]=firstLocation",
			Policy{AllowAll: true, AllowList: []string{"type"}}, map[string]string{"location": "firstLocation"}},
		{"filter without value", "filter[]=type", allowAll, map[string]string{}},
		{"value under another index", "filter[]=type&value[1]=someType", allowAll, map[string]string{}},
		{"filter under another index", "filter[1]=type&value[]=someType", allowAll, map[string]string{}},
		{"both scalars", "filter=location&value=firstLocation", allowAll, map[string]string{}},
		{"scalar value", "filter[]=location&value=firstLocation", allowAll, map[string]string{}},
		{"scalar filter", "filter=location&value[]=firstLocation", allowAll, map[string]string{}},
		{"fewer values than filters", "filter[]=location&filter[]=type&value[]=firstLocation", allowAll,
			map[string]string{"location": "firstLocation"}},
		{"explicit indices", "filter[3]=type&filter[7]=location&value[7]=firstLocation&value[3]=firstType", allowAll,
			map[string]string{"location": "firstLocation", "type": "firstType"}},
		{"repeated field keeps last value", "filter[]=type&filter[]=type&value[]=hammer&value[]=saw", allowAll,
			map[string]string{"type": "saw"}},
		{"encoded brackets", "filter%5B0%5D=location&value%5B0%5D=first+Location", allowAll,
			map[string]string{"location": "first Location"}},
	}

	for i, tc := range tests {
		got := Extract(queryparam.Parse(tc.query), tc.policy)

		assert.Equal(t, tc.expected, got.Map(), "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestExtract_KeepsFieldOrder(t *testing.T) {
	got := Extract(queryparam.Parse("filter[]=type&filter[]=location&filter[]=brand&value[]=a&value[]=b&value[]=c"),
		Policy{AllowAll: true})

	assert.Equal(t, []string{"type", "location", "brand"}, got.Fields())
	assert.Equal(t, []string{"a", "b", "c"}, got.Values())
}

func TestExtract_DefaultPolicyDeniesEverything(t *testing.T) {
	queries := []string{
		"",
		"filter[]=location&value[]=firstLocation",
		"filter[]=location&filter[]=type&value[]=firstLocation&value[]=firstType",
		"filter=location&value=firstLocation",
	}

	for i, q := range queries {
		assert.True(t, Extract(queryparam.Parse(q), Policy{}).IsEmpty(), "TEST[%d], Failed.\n%s", i, q)
	}
}

func TestNewComponent(t *testing.T) {
	c := NewComponent(request("filter[]=location&filter[]=type&value[]=firstLocation&value[]=firstType"),
		Policy{AllowList: []string{"location"}}, nil)

	assert.Equal(t, map[string]string{"location": "firstLocation"}, c.Conditions().Map())
	assert.Equal(t, Policy{AllowList: []string{"location"}}, c.Policy())
}

func TestNewComponent_ConditionsAreCopied(t *testing.T) {
	c := NewComponent(request("filter[]=location&value[]=firstLocation"), Policy{AllowAll: true}, nil)

	conditions := c.Conditions()
	conditions.Set("type", "hammer")

	assert.Equal(t, 1, c.Conditions().Len())
}

func TestNewComponent_Logging(t *testing.T) {
	ctrl := gomock.NewController(t)

	tests := []struct {
		desc   string
		query  string
		expect func(l *MockLoggerMockRecorder)
	}{
		{"no filter parameters", "page=2", func(*MockLoggerMockRecorder) {}},
		{"valid query", "filter[]=location&value[]=firstLocation", func(*MockLoggerMockRecorder) {}},
		{"rejected field", "filter[]=type&value[]=hammer", func(l *MockLoggerMockRecorder) {
			l.Debugf("filter field %q is not allowed, ignoring it", "type")
		}},
		{"scalar value", "filter[]=location&value=firstLocation", func(l *MockLoggerMockRecorder) {
			l.Debugf("%s: %v", "ignoring filters", gomock.Any())
		}},
	}

	for _, tc := range tests {
		logger := NewMockLogger(ctrl)
		tc.expect(logger.EXPECT())

		NewComponent(request(tc.query), Policy{AllowList: []string{"location"}}, logger)
	}
}

func TestNewComponent_Metrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	metrics := NewMockMetrics(ctrl)

	metrics.EXPECT().IncrementCounter(context.Background(), "app_filter_conditions_total", "field", "location")
	metrics.EXPECT().IncrementCounter(context.Background(), "app_filter_rejected_total")

	c := NewComponent(request("filter[]=location&filter[]=type&value[]=firstLocation&value[]=firstType"),
		Policy{AllowList: []string{"location"}}, nil, WithMetrics(metrics))

	assert.Equal(t, 1, c.Conditions().Len())
}

func TestNewComponent_MetricsLabelsStayBounded(t *testing.T) {
	tests := []struct {
		desc   string
		policy Policy
		expect func(m *MockMetricsMockRecorder)
	}{
		{"rejected fields carry no label", Policy{AllowList: []string{"type"}}, func(m *MockMetricsMockRecorder) {
			m.IncrementCounter(context.Background(), "app_filter_rejected_total").Times(50)
		}},
		{"allow all uses a single label value", Policy{AllowAll: true}, func(m *MockMetricsMockRecorder) {
			m.IncrementCounter(context.Background(), "app_filter_conditions_total", "field", "*").Times(50)
		}},
	}

	for _, tc := range tests {
		metrics := NewMockMetrics(gomock.NewController(t))
		tc.expect(metrics.EXPECT())

		for i := 0; i < 50; i++ {
			NewComponent(request(fmt.Sprintf("filter[]=junk%d&value[]=x", i)), tc.policy, nil, WithMetrics(metrics))
		}
	}
}

func TestRegisterMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	metrics := NewMockMetrics(ctrl)

	metrics.EXPECT().NewCounter("app_filter_conditions_total", gomock.Any())
	metrics.EXPECT().NewCounter("app_filter_rejected_total", gomock.Any())

	RegisterMetrics(metrics)
}

type sliceApplier struct{}

func (sliceApplier) Apply(query []string, c Conditions) []string {
	for _, f := range c.Fields() {
		v, _ := c.Get(f)
		query = append(query, f+"="+v)
	}

	return query
}

func TestApply(t *testing.T) {
	c := NewComponent(request("filter[]=location&filter[]=type&value[]=firstLocation&value[]=firstType"),
		Policy{AllowAll: true}, nil)

	got := Apply[[]string](c, []string{"deleted=0"}, sliceApplier{})

	assert.Equal(t, []string{"deleted=0", "location=firstLocation", "type=firstType"}, got)
}

func TestShapeError(t *testing.T) {
	_, err := parsePairs(queryparam.Parse("filter[]=location&value=firstLocation"))

	assert.Equal(t, &ShapeError{Param: ValueKey, Reason: reasonNotSequence}, err)
	assert.Equal(t, `filter: query parameter "value" is not a sequence`, err.Error())
}
