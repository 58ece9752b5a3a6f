package metrics

import (
	"context"
	"slices"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Manager registers metrics by name and records them with labels given as name, value pairs:
//
//	m.NewCounter("app_filter_conditions_total", "Number of filter conditions")
//	m.IncrementCounter(ctx, "app_filter_conditions_total", "field", "type")
//
// The label names of a metric are fixed by its first use. Errors are logged, not returned.
type Manager interface {
	NewCounter(name, desc string)
	NewHistogram(name, desc string, buckets ...float64)
	NewGauge(name, desc string)

	IncrementCounter(ctx context.Context, name string, labels ...string)
	RecordHistogram(ctx context.Context, name string, value float64, labels ...string)
	SetGauge(name string, value float64, labels ...string)
}

type Logger interface {
	Errorf(format string, args ...any)
}

type kind int

const (
	counterKind kind = iota + 1
	histogramKind
	gaugeKind
)

type definition struct {
	kind    kind
	desc    string
	buckets []float64

	labels []string
	vec    prometheus.Collector
}

type metricsManager struct {
	mu       sync.Mutex
	registry *prometheus.Registry
	metrics  map[string]*definition
	logger   Logger
}

// NewMetricsManager returns a Manager backed by its own prometheus registry, with the system
// gauges served by GetHandler already registered.
func NewMetricsManager(logger Logger) Manager {
	m := &metricsManager{
		registry: prometheus.NewRegistry(),
		metrics:  make(map[string]*definition),
		logger:   logger,
	}

	m.NewGauge("app_go_routines", "Number of Go routines running.")
	m.NewGauge("app_sys_memory_alloc", "Number of bytes allocated for heap objects.")
	m.NewGauge("app_sys_total_alloc", "Number of cumulative bytes allocated for heap objects.")
	m.NewGauge("app_go_numGC", "Number of completed Garbage Collector cycles.")
	m.NewGauge("app_go_sys", "Number of total bytes of memory.")

	return m
}

// NewCounter registers a counter, whose value only increases.
func (m *metricsManager) NewCounter(name, desc string) {
	m.register(name, &definition{kind: counterKind, desc: desc})
}

// NewHistogram registers a histogram. Without buckets the prometheus default buckets are used.
func (m *metricsManager) NewHistogram(name, desc string, buckets ...float64) {
	m.register(name, &definition{kind: histogramKind, desc: desc, buckets: buckets})
}

// NewGauge registers a gauge, whose value can be set to anything.
func (m *metricsManager) NewGauge(name, desc string) {
	m.register(name, &definition{kind: gaugeKind, desc: desc})
}

func (m *metricsManager) IncrementCounter(_ context.Context, name string, labels ...string) {
	if vec, values, ok := m.collector(name, counterKind, labels); ok {
		vec.(*prometheus.CounterVec).WithLabelValues(values...).Inc()
	}
}

func (m *metricsManager) RecordHistogram(_ context.Context, name string, value float64, labels ...string) {
	if vec, values, ok := m.collector(name, histogramKind, labels); ok {
		vec.(*prometheus.HistogramVec).WithLabelValues(values...).Observe(value)
	}
}

func (m *metricsManager) SetGauge(name string, value float64, labels ...string) {
	if vec, values, ok := m.collector(name, gaugeKind, labels); ok {
		vec.(*prometheus.GaugeVec).WithLabelValues(values...).Set(value)
	}
}

func (m *metricsManager) register(name string, d *definition) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.metrics[name]; ok {
		m.logger.Errorf("%v", metricsAlreadyRegistered{metricsName: name})

		return
	}

	m.metrics[name] = d
}

// collector returns the vector of name with the label values of labels, creating the vector on
// first use.
func (m *metricsManager) collector(name string, k kind, labels []string) (prometheus.Collector, []string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.metrics[name]
	if !ok || d.kind != k {
		m.logger.Errorf("%v", metricsNotRegistered{metricsName: name})

		return nil, nil, false
	}

	names, values, ok := splitLabels(labels)
	if !ok || (d.vec != nil && !slices.Equal(names, d.labels)) {
		m.logger.Errorf("%v", labelsMismatch{metricsName: name, labels: labels})

		return nil, nil, false
	}

	if d.vec != nil {
		return d.vec, values, true
	}

	vec := newVec(name, d, names)

	if err := m.registry.Register(vec); err != nil {
		m.logger.Errorf("could not register metrics %v: %v", name, err)

		return nil, nil, false
	}

	d.labels, d.vec = names, vec

	return vec, values, true
}

func newVec(name string, d *definition, labelNames []string) prometheus.Collector {
	switch d.kind {
	case histogramKind:
		return prometheus.NewHistogramVec(prometheus.HistogramOpts{Name: name, Help: d.desc, Buckets: d.buckets}, labelNames)
	case gaugeKind:
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: name, Help: d.desc}, labelNames)
	default:
		return prometheus.NewCounterVec(prometheus.CounterOpts{Name: name, Help: d.desc}, labelNames)
	}
}

func splitLabels(labels []string) (names, values []string, ok bool) {
	if len(labels)%2 != 0 {
		return nil, nil, false
	}

	names = make([]string, 0, len(labels)/2)
	values = make([]string, 0, len(labels)/2)

	for i := 0; i < len(labels); i += 2 {
		names = append(names, labels[i])
		values = append(values, labels[i+1])
	}

	return names, values, true
}
