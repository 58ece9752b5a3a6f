package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gofr.dev/filterable/pkg/gofr/queryparam"
)

func TestLinkBuilder_BuildQuery(t *testing.T) {
	tests := []struct {
		desc     string
		query    string
		field    string
		value    string
		expected string
	}{
		{"no prior filter", "", "field", "value", "filter%5B0%5D=field&value%5B0%5D=value"},
		{"same as prior filter", "filter[]=field&value[]=value", "field", "value", ""},
		{"add another filter", "filter[]=location&value[]=firstLocation", "type", "firstType",
			"filter%5B0%5D=location&filter%5B1%5D=type&value%5B0%5D=firstLocation&value%5B1%5D=firstType"},
		{"remove one of two filters", "filter[]=location&filter[]=type&value[]=firstLocation&value[]=firstType",
			"type", "firstType", "filter%5B0%5D=location&value%5B0%5D=firstLocation"},
		{"unrelated parameter is kept", "something=else&filter[]=location&filter[]=type&value[]=firstLocation&value[]=firstType",
			"type", "firstType", "something=else&filter%5B0%5D=location&value%5B0%5D=firstLocation"},
		{"other value of an active field", "filter[]=type&value[]=hammer", "type", "saw",
			"filter%5B0%5D=type&value%5B0%5D=saw"},
		{"filter parameters come last", "filter[]=location&value[]=firstLocation&page=2", "type", "firstType",
			"page=2&filter%5B0%5D=location&filter%5B1%5D=type&value%5B0%5D=firstLocation&value%5B1%5D=firstType"},
		{"scalars count as one filter", "filter=location&value=firstLocation", "location", "firstLocation", ""},
		{"unpaired parameters are dropped", "filter[]=location&filter[]=type&value[]=firstLocation", "type", "firstType",
			"filter%5B0%5D=type&value%5B0%5D=firstType"},
		{"indices are renumbered", "filter[4]=location&value[9]=firstLocation", "type", "firstType",
			"filter%5B0%5D=location&filter%5B1%5D=type&value%5B0%5D=firstLocation&value%5B1%5D=firstType"},
	}

	for i, tc := range tests {
		b := NewLinkBuilder(queryparam.Parse(tc.query))

		assert.Equal(t, tc.expected, b.BuildQuery(tc.field, tc.value).Encode(), "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestLinkBuilder_ToggleTwice(t *testing.T) {
	original := queryparam.Parse("something=else&filter[]=location&filter[]=type&value[]=firstLocation&value[]=firstType")

	removed := NewLinkBuilder(original).BuildQuery("type", "firstType")
	restored := NewLinkBuilder(removed).BuildQuery("type", "firstType")

	assert.Equal(t, original.Encode(), restored.Encode())
}

func TestLinkBuilder_DoesNotChangeCapturedQuery(t *testing.T) {
	params := queryparam.Parse("filter[]=location&value[]=firstLocation")
	b := NewLinkBuilder(params)

	_ = b.BuildQuery("type", "firstType")
	_ = b.BuildQuery("location", "firstLocation")

	assert.Equal(t, map[string]string{"location": "firstLocation"}, b.ActiveFilters().Map())
	assert.Equal(t, "filter%5B0%5D=location&value%5B0%5D=firstLocation", params.Encode())
}

func TestLinkBuilder_IsCurrentFilter(t *testing.T) {
	tests := []struct {
		desc     string
		query    string
		field    string
		value    string
		expected bool
	}{
		{"no filter applied", "", "type", "firstType", false},
		{"one filter, both match", "filter[]=location&value[]=firstLocation", "location", "firstLocation", true},
		{"two filters, one matches", "filter[]=location&filter[]=type&value[]=firstLocation&value[]=firstType",
			"location", "firstLocation", true},
		{"value of the other filter", "filter[]=location&filter[]=type&value[]=firstLocation&value[]=firstType",
			"location", "firstType", false},
		{"other field", "filter[]=location&value[]=firstLocation", "type", "firstType", false},
		{"only field matches", "filter[]=location&value[]=firstLocation", "location", "secondLocation", false},
		{"only value matches", "filter[]=location&value[]=firstLocation", "type", "firstLocation", false},
		{"value is compared exactly", "filter[]=location&value[]=firstLocation", "location", "firstlocation", false},
	}

	for i, tc := range tests {
		b := NewLinkBuilder(queryparam.Parse(tc.query))

		assert.Equal(t, tc.expected, b.IsCurrentFilter(tc.field, tc.value), "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}
