package filter

import (
	"bytes"
	"errors"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gofr.dev/filterable/pkg/gofr/queryparam"
)

type hrefRenderer struct{}

func (hrefRenderer) RenderLink(title string, query queryparam.Values, attrs map[string]string) (template.HTML, error) {
	href := "/tools/index"
	if q := query.Encode(); q != "" {
		href += "?" + q
	}

	return template.HTML(`<a href="` + template.HTMLEscapeString(href) + `" class="` + attrs["class"] + `">` +
		template.HTMLEscapeString(title) + `</a>`), nil
}

func TestHelper_Link(t *testing.T) {
	tests := []struct {
		desc     string
		query    string
		field    string
		value    string
		expected template.HTML
	}{
		{"without prior filter", "", "field", "value",
			`<a href="/tools/index?filter%5B0%5D=field&amp;value%5B0%5D=value" class="">Title</a>`},
		{"with prior filter", "filter[]=field&value[]=value", "field", "value",
			`<a href="/tools/index" class="">Title</a>`},
		{"prior filter, add another", "filter[]=location&value[]=firstLocation", "type", "firstType",
			`<a href="/tools/index?filter%5B0%5D=location&amp;filter%5B1%5D=type&amp;value%5B0%5D=firstLocation&amp;` +
				`value%5B1%5D=firstType" class="">Title</a>`},
		{"prior filters, remove one", "filter[]=location&filter[]=type&value[]=firstLocation&value[]=firstType",
			"type", "firstType", `<a href="/tools/index?filter%5B0%5D=location&amp;value%5B0%5D=firstLocation" class="">Title</a>`},
		{"unrelated query string", "something=else&filter[]=location&filter[]=type&value[]=firstLocation&value[]=firstType",
			"type", "firstType",
			`<a href="/tools/index?something=else&amp;filter%5B0%5D=location&amp;value%5B0%5D=firstLocation" class="">Title</a>`},
	}

	for i, tc := range tests {
		h := NewHelper(request(tc.query), hrefRenderer{}, nil)

		assert.Equal(t, tc.expected, h.Link("Title", tc.field, tc.value, nil), "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestHelper_LinkRendererError(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := NewMockLinkRenderer(ctrl)
	logger := NewMockLogger(ctrl)

	renderer.EXPECT().RenderLink("Hammers", gomock.Any(), map[string]string{"class": "btn"}).
		Return(template.HTML(""), errors.New("template: missing href"))
	logger.EXPECT().Errorf("could not render filter link %s=%s: %v", "type", "hammer", gomock.Any())

	h := NewHelper(request(""), renderer, logger)

	assert.Equal(t, template.HTML(""), h.Link("Hammers", "type", "hammer", map[string]string{"class": "btn"}))
}

func TestHelper_LogsUnpairedQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := NewMockLogger(ctrl)

	logger.EXPECT().Debugf("%s: %v", "no active filters", gomock.Any())

	h := NewHelper(request("filter[]=location&filter[]=type&value[]=firstLocation"), hrefRenderer{}, logger)

	assert.True(t, h.ActiveFilters().IsEmpty())
}

func TestHelper_FuncMap(t *testing.T) {
	h := NewHelper(request("page=2&filter[]=type&value[]=hammer"), hrefRenderer{}, nil)

	tmpl, err := template.New("links").Funcs(h.FuncMap()).Parse(
		`{{ filterLink "Hammers" "type" "hammer" "class" "active" }}|` +
			`{{ filterLink "Saws" "type" "saw" "class" }}|` +
			`{{ if isCurrentFilter "type" "hammer" }}hammer{{ end }}{{ if isCurrentFilter "type" "saw" }}saw{{ end }}`)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, tmpl.Execute(buf, nil))

	assert.Equal(t, `<a href="/tools/index?page=2" class="active">Hammers</a>|`+
		`<a href="/tools/index?page=2&amp;filter%5B0%5D=type&amp;value%5B0%5D=saw" class="">Saws</a>|hammer`, buf.String())
}

func TestAttrPairs(t *testing.T) {
	assert.Nil(t, attrPairs(nil))
	assert.Nil(t, attrPairs([]string{"class"}))
	assert.Equal(t, map[string]string{"class": "btn", "id": "x"}, attrPairs([]string{"class", "btn", "id", "x", "title"}))
}
