package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"gofr.dev/filterable/pkg/gofr/queryparam"
)

// Request is an abstraction over the underlying http.Request. This abstraction is useful because it allows us
// to create applications without being aware of the transport.
type Request struct {
	req        *http.Request
	pathParams map[string]string
	query      *queryparam.Values
}

func NewRequest(r *http.Request) *Request {
	return &Request{
		req:        r,
		pathParams: mux.Vars(r),
	}
}

// Param returns the first value of a plain query parameter.
func (r *Request) Param(key string) string {
	return r.req.URL.Query().Get(key)
}

// Params returns every value of a plain query parameter, splitting comma separated values.
func (r *Request) Params(key string) []string {
	var values []string

	for _, v := range r.req.URL.Query()[key] {
		values = append(values, strings.Split(v, ",")...)
	}

	return values
}

// QueryValues returns the query with bracket parameters such as filter[]=type grouped into
// sequences. The query is parsed once per request.
func (r *Request) QueryValues() queryparam.Values {
	if r.query == nil {
		q := queryparam.FromURL(r.req.URL)
		r.query = &q
	}

	return r.query.Clone()
}

func (r *Request) Context() context.Context {
	return r.req.Context()
}

func (r *Request) PathParam(key string) string {
	return r.pathParams[key]
}

// URI returns the path of the request, without its query.
func (r *Request) URI() string {
	return r.req.URL.Path
}

// Bind decodes a JSON body into i. Other content types are ignored.
func (r *Request) Bind(i any) error {
	contentType, _, _ := strings.Cut(r.req.Header.Get("content-type"), ";")

	if contentType != "application/json" {
		return nil
	}

	body, err := r.body()
	if err != nil {
		return err
	}

	return json.Unmarshal(body, &i)
}

func (r *Request) body() ([]byte, error) {
	bodyBytes, err := io.ReadAll(r.req.Body)
	if err != nil {
		return nil, err
	}

	r.req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	return bodyBytes, nil
}
