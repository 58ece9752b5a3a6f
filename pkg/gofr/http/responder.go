package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	resTypes "gofr.dev/filterable/pkg/gofr/http/response"
)

// NewResponder creates a new Responder instance from the given http.ResponseWriter.
func NewResponder(w http.ResponseWriter, method string) *Responder {
	return &Responder{w: w, method: method}
}

// Responder encapsulates a http.ResponseWriter and is responsible for crafting structured responses.
type Responder struct {
	w      http.ResponseWriter
	method string
}

// response represents an HTTP response.
type response struct {
	Data   any           `json:"data,omitempty"`
	Errors []errResponse `json:"errors,omitempty"`
}

type errResponse struct {
	Reason   string    `json:"reason"`
	DateTime time.Time `json:"datetime"`
}

type statusCodeResponder interface {
	StatusCode() int
	Error() string
}

// Page is rendered by the responder as is, for instance a *template.Template.
type Page interface {
	Render() ([]byte, error)
	ContentType() string
}

// Respond sends a response with the given data and handles potential errors, setting appropriate
// status codes and formatting responses as JSON, raw JSON or rendered pages.
func (r Responder) Respond(data any, err error) {
	if page, ok := data.(Page); ok && err == nil {
		r.respondPage(page)

		return
	}

	statusCode := getStatusCode(r.method, data, err)

	var resp any

	switch v := data.(type) {
	case resTypes.Raw:
		v.SetCustomHeaders(r.w)

		resp = v.Data
	default:
		resp = response{
			Data:   v,
			Errors: getErrResponse(err),
		}
	}

	r.w.Header().Set("Content-Type", "application/json")

	r.w.WriteHeader(statusCode)

	_ = json.NewEncoder(r.w).Encode(resp)
}

func (r Responder) respondPage(page Page) {
	content, err := page.Render()
	if err != nil {
		r.Respond(nil, err)

		return
	}

	r.w.Header().Set("Content-Type", page.ContentType())
	r.w.WriteHeader(http.StatusOK)

	_, _ = r.w.Write(content)
}

// getStatusCode returns corresponding HTTP status codes.
func getStatusCode(method string, data any, err error) (status int) {
	if err == nil {
		switch method {
		case http.MethodPost:
			if data != nil {
				return http.StatusCreated
			}

			return http.StatusAccepted
		case http.MethodDelete:
			return http.StatusNoContent
		default:
			return http.StatusOK
		}
	}

	var e statusCodeResponder
	if errors.As(err, &e) {
		if data != nil {
			return http.StatusPartialContent
		}

		status = e.StatusCode()

		if e.StatusCode() == 0 {
			return http.StatusInternalServerError
		}

		return status
	}

	return http.StatusInternalServerError
}

func getErrResponse(err error) []errResponse {
	if err == nil {
		return nil
	}

	return []errResponse{{Reason: err.Error(), DateTime: time.Now()}}
}
