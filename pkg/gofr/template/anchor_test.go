package template

import (
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"

	"gofr.dev/filterable/pkg/gofr/queryparam"
)

func TestAnchorRenderer_RenderLink(t *testing.T) {
	r := AnchorRenderer{Path: "/tools/index"}

	tests := []struct {
		desc     string
		title    string
		query    string
		attrs    map[string]string
		expected template.HTML
	}{
		{"no query", "Title", "", nil, `<a href="/tools/index">Title</a>`},
		{"filter query", "Title", "filter[0]=field&value[0]=value", nil,
			`<a href="/tools/index?filter%5B0%5D=field&amp;value%5B0%5D=value">Title</a>`},
		{"attributes sorted", "Title", "", map[string]string{"id": "hammer", "class": "btn active"},
			`<a href="/tools/index" class="btn active" id="hammer">Title</a>`},
		{"escaped title and attribute", "<b>Saws & co</b>", "", map[string]string{"title": `"saws"`},
			`<a href="/tools/index" title="&#34;saws&#34;">&lt;b&gt;Saws &amp; co&lt;/b&gt;</a>`},
		{"href attribute wins", "Title", "page=2", map[string]string{"href": "/elsewhere"},
			`<a href="/elsewhere">Title</a>`},
	}

	for i, tc := range tests {
		got, err := r.RenderLink(tc.title, queryparam.Parse(tc.query), tc.attrs)

		assert.NoError(t, err, "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.Equal(t, tc.expected, got, "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestAnchorRenderer_InvalidAttribute(t *testing.T) {
	got, err := AnchorRenderer{Path: "/"}.RenderLink("Title", queryparam.Values{}, map[string]string{`x" onclick`: "1"})

	assert.Equal(t, InvalidAttribute{Name: `x" onclick`}, err)
	assert.Empty(t, got)
}
