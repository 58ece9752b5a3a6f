package gofr

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gofr.dev/filterable/pkg/gofr/config"
	"gofr.dev/filterable/pkg/gofr/testutil"
)

func newTestApp(t *testing.T, configs map[string]string) *App {
	t.Helper()

	cfg := map[string]string{"LOG_LEVEL": "FATAL", "FILTER_ALLOW_LIST": "type"}
	for k, v := range configs {
		cfg[k] = v
	}

	return NewWithConfig(config.NewMockConfig(cfg))
}

func serve(app *App, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()

	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, http.NoBody))

	return w
}

func TestNewWithConfig_Ports(t *testing.T) {
	tests := []struct {
		desc        string
		configs     map[string]string
		httpPort    int
		metricsPort int
	}{
		{"defaults", nil, defaultHTTPPort, defaultMetricPort},
		{"configured", map[string]string{"HTTP_PORT": "9000", "METRICS_PORT": "9001"}, 9000, 9001},
		{"invalid", map[string]string{"HTTP_PORT": "-1", "METRICS_PORT": "abc"}, defaultHTTPPort, defaultMetricPort},
	}

	for i, tc := range tests {
		app := newTestApp(t, tc.configs)

		assert.Equal(t, tc.httpPort, app.httpServer.port, "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.Equal(t, tc.metricsPort, app.metricServer.port, "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestApp_GETWithFilter(t *testing.T) {
	app := newTestApp(t, nil)

	app.GET("/products", func(c *Context) (any, error) {
		return c.Filter().Conditions().Map(), nil
	})

	w := serve(app, "/products?filter[]=type&filter[]=price&value[]=hammer&value[]=5")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"type":"hammer"}}`, w.Body.String())
}

func TestContext_LoggerCarriesTraceID(t *testing.T) {
	var line string

	logs := testutil.StdoutOutputForFunc(func() {
		app := newTestApp(t, map[string]string{"LOG_LEVEL": "INFO"})

		app.GET("/products", func(c *Context) (any, error) {
			c.Infof("listing %d filters", c.Filter().Conditions().Len())

			return nil, nil
		})

		serve(app, "/products?filter[]=type&value[]=hammer")
	})

	for _, l := range strings.Split(logs, "\n") {
		if strings.Contains(l, "listing 1 filters") {
			line = l
		}
	}

	var entry struct {
		TraceID string `json:"trace_id"`
	}

	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Len(t, entry.TraceID, 32)
}

func TestApp_POST(t *testing.T) {
	app := newTestApp(t, nil)

	app.POST("/products", func(*Context) (any, error) {
		return "created", nil
	})

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/products", http.NoBody))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestApp_Template(t *testing.T) {
	dir := t.TempDir()
	page := `{{ range .Items }}{{ . }} {{ end }}{{ filterLink "Saws" "type" "saw" }}` +
		`{{ if isCurrentFilter "type" "hammer" }} hammers{{ end }}`

	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.html"), []byte(page), 0o600))

	app := newTestApp(t, map[string]string{"TEMPLATE_DIR": dir})

	app.GET("/tools/index", func(c *Context) (any, error) {
		return c.Template("products.html", map[string]any{"Items": []string{"Claw hammer"}}), nil
	})

	w := serve(app, "/tools/index?filter%5B0%5D=type&value%5B0%5D=hammer")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `Claw hammer <a href="/tools/index?filter%5B0%5D=type&amp;value%5B0%5D=saw">Saws</a> hammers`,
		w.Body.String())
}

func TestApp_HandlerError(t *testing.T) {
	app := newTestApp(t, nil)

	app.GET("/error", func(*Context) (any, error) {
		return nil, errors.New("store unavailable")
	})

	w := serve(app, "/error")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "store unavailable")
}

func TestApp_PanicRecovery(t *testing.T) {
	app := newTestApp(t, nil)

	app.GET("/panic", func(*Context) (any, error) {
		panic("boom")
	})

	var w *httptest.ResponseRecorder

	testutil.StderrOutputForFunc(func() {
		w = serve(app, "/panic")
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), http.StatusText(http.StatusInternalServerError))
}

func TestApp_HealthAndCatchAll(t *testing.T) {
	app := newTestApp(t, nil)

	w := serve(app, "/.well-known/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"status":"UP"}}`, w.Body.String())

	w = serve(app, "/unknown")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "route not registered")
}

func TestApp_ShutdownWithoutRun(t *testing.T) {
	app := newTestApp(t, nil)

	assert.NoError(t, app.Shutdown(context.Background()))
}

func TestShutdownWithContext(t *testing.T) {
	errForce := errors.New("force close")

	err := ShutdownWithContext(context.Background(), func(context.Context) error { return nil }, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err = ShutdownWithContext(ctx, func(ctx context.Context) error {
		time.Sleep(time.Second)
		return nil
	}, func() error { return errForce })

	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.ErrorIs(t, err, errForce)
}

func TestGracePeriod(t *testing.T) {
	tests := []struct {
		desc     string
		value    string
		expected time.Duration
		hasErr   bool
	}{
		{"default", "", defaultGracePeriod, false},
		{"configured", "5s", 5 * time.Second, false},
		{"invalid", "five", defaultGracePeriod, true},
	}

	for i, tc := range tests {
		cfg := map[string]string{}
		if tc.value != "" {
			cfg["SHUTDOWN_GRACE_PERIOD"] = tc.value
		}

		timeout, err := gracePeriod(config.NewMockConfig(cfg))

		assert.Equal(t, tc.expected, timeout, "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.Equal(t, tc.hasErr, err != nil, "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestErrDatasourceDown(t *testing.T) {
	err := errDatasourceDown{details: map[string]string{"sql": "DOWN", "mongo": "UP", "elasticsearch": "DOWN"}}

	assert.Equal(t, "datasources down: elasticsearch, sql", err.Error())
	assert.Equal(t, http.StatusServiceUnavailable, err.StatusCode())
}
