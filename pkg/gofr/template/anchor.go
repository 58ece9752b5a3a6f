package template

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"sort"

	"gofr.dev/filterable/pkg/gofr/queryparam"
)

//nolint:gochecknoglobals // parsed once, read only
var (
	anchorTemplate = template.Must(template.New("anchor").Parse(
		`<a href="{{ .Href }}"{{ range .Attrs }} {{ . }}{{ end }}>{{ .Title }}</a>`))
	attrName = regexp.MustCompile(`^[a-zA-Z_:][a-zA-Z0-9_:.-]*$`)
)

// InvalidAttribute is returned for attribute names that cannot appear in an HTML tag.
type InvalidAttribute struct {
	Name string
}

func (e InvalidAttribute) Error() string {
	return fmt.Sprintf("invalid attribute name %q", e.Name)
}

// AnchorRenderer renders filter links pointing at Path:
//
//	<a href="/tools/index?filter%5B0%5D=type&amp;value%5B0%5D=hammer" class="btn">Hammers</a>
//
// The href is left without a query when the query is empty. The attributes come sorted by name,
// and an href attribute replaces the computed one.
type AnchorRenderer struct {
	Path string
}

type anchor struct {
	Href  string
	Attrs []template.HTMLAttr
	Title string
}

func (r AnchorRenderer) RenderLink(title string, query queryparam.Values, attrs map[string]string) (template.HTML, error) {
	a := anchor{Href: r.Path, Title: title}

	if q := query.Encode(); q != "" {
		a.Href += "?" + q
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		if !attrName.MatchString(name) {
			return "", InvalidAttribute{Name: name}
		}

		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		if name == "href" {
			a.Href = attrs[name]

			continue
		}

		//nolint:gosec // the name is validated and the value escaped
		a.Attrs = append(a.Attrs, template.HTMLAttr(fmt.Sprintf(`%s="%s"`, name, template.HTMLEscapeString(attrs[name]))))
	}

	var buf bytes.Buffer

	if err := anchorTemplate.Execute(&buf, a); err != nil {
		return "", err
	}

	//nolint:gosec // produced by html/template
	return template.HTML(buf.String()), nil
}
