package filter

import (
	"html/template"
)

// Helper is a LinkBuilder able to render its links in templates.
type Helper struct {
	*LinkBuilder

	renderer LinkRenderer
	logger   Logger
}

// NewHelper captures the query of req. logger may be nil.
func NewHelper(req QueryProvider, renderer LinkRenderer, logger Logger) *Helper {
	if logger == nil {
		logger = nopLogger{}
	}

	b, err := newLinkBuilder(req.QueryValues())
	logShapeError(logger, "no active filters", err)

	return &Helper{LinkBuilder: b, renderer: renderer, logger: logger}
}

// Link renders an anchor toggling field=value. A rendering failure is logged and yields an
// empty fragment so that the page still renders.
func (h *Helper) Link(title, field, value string, attrs map[string]string) template.HTML {
	link, err := h.renderer.RenderLink(title, h.BuildQuery(field, value), attrs)
	if err != nil {
		h.logger.Errorf("could not render filter link %s=%s: %v", field, value, err)

		return ""
	}

	return link
}

// FuncMap exposes the helper to html/template views:
//
//	{{ filterLink "Hammers" "type" "hammer" "class" "btn" }}
//	{{ if isCurrentFilter "type" "hammer" }}active{{ end }}
//
// Attributes of filterLink are given as name, value pairs; a trailing name without value is ignored.
func (h *Helper) FuncMap() template.FuncMap {
	return template.FuncMap{
		"filterLink": func(title, field, value string, attrs ...string) template.HTML {
			return h.Link(title, field, value, attrPairs(attrs))
		},
		"isCurrentFilter": h.IsCurrentFilter,
	}
}

func attrPairs(pairs []string) map[string]string {
	if len(pairs) < 2 {
		return nil
	}

	attrs := make(map[string]string, len(pairs)/2)

	for i := 0; i+1 < len(pairs); i += 2 {
		attrs[pairs[i]] = pairs[i+1]
	}

	return attrs
}
