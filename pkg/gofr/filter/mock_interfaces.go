package filter

import (
	"context"
	"html/template"
	"reflect"

	"go.uber.org/mock/gomock"

	"gofr.dev/filterable/pkg/gofr/queryparam"
)

// MockLinkRenderer is a mock of LinkRenderer interface.
type MockLinkRenderer struct {
	ctrl     *gomock.Controller
	recorder *MockLinkRendererMockRecorder
}

// MockLinkRendererMockRecorder is the mock recorder for MockLinkRenderer.
type MockLinkRendererMockRecorder struct {
	mock *MockLinkRenderer
}

// NewMockLinkRenderer creates a new mock instance.
func NewMockLinkRenderer(ctrl *gomock.Controller) *MockLinkRenderer {
	mock := &MockLinkRenderer{ctrl: ctrl}
	mock.recorder = &MockLinkRendererMockRecorder{mock}

	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLinkRenderer) EXPECT() *MockLinkRendererMockRecorder {
	return m.recorder
}

// RenderLink mocks base method.
func (m *MockLinkRenderer) RenderLink(title string, query queryparam.Values,
	attrs map[string]string) (template.HTML, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RenderLink", title, query, attrs)
	ret0, _ := ret[0].(template.HTML)
	ret1, _ := ret[1].(error)

	return ret0, ret1
}

// RenderLink indicates an expected call of RenderLink.
func (mr *MockLinkRendererMockRecorder) RenderLink(title, query, attrs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()

	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RenderLink",
		reflect.TypeOf((*MockLinkRenderer)(nil).RenderLink), title, query, attrs)
}

// MockLogger is a mock of Logger interface.
type MockLogger struct {
	ctrl     *gomock.Controller
	recorder *MockLoggerMockRecorder
}

// MockLoggerMockRecorder is the mock recorder for MockLogger.
type MockLoggerMockRecorder struct {
	mock *MockLogger
}

// NewMockLogger creates a new mock instance.
func NewMockLogger(ctrl *gomock.Controller) *MockLogger {
	mock := &MockLogger{ctrl: ctrl}
	mock.recorder = &MockLoggerMockRecorder{mock}

	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLogger) EXPECT() *MockLoggerMockRecorder {
	return m.recorder
}

// Debugf mocks base method.
func (m *MockLogger) Debugf(format string, args ...any) {
	m.ctrl.T.Helper()

	varargs := append([]any{format}, args...)
	m.ctrl.Call(m, "Debugf", varargs...)
}

// Debugf indicates an expected call of Debugf.
func (mr *MockLoggerMockRecorder) Debugf(format any, args ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()

	varargs := append([]any{format}, args...)

	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Debugf", reflect.TypeOf((*MockLogger)(nil).Debugf), varargs...)
}

// Errorf mocks base method.
func (m *MockLogger) Errorf(format string, args ...any) {
	m.ctrl.T.Helper()

	varargs := append([]any{format}, args...)
	m.ctrl.Call(m, "Errorf", varargs...)
}

// Errorf indicates an expected call of Errorf.
func (mr *MockLoggerMockRecorder) Errorf(format any, args ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()

	varargs := append([]any{format}, args...)

	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Errorf", reflect.TypeOf((*MockLogger)(nil).Errorf), varargs...)
}

// MockMetrics is a mock of Metrics interface.
type MockMetrics struct {
	ctrl     *gomock.Controller
	recorder *MockMetricsMockRecorder
}

// MockMetricsMockRecorder is the mock recorder for MockMetrics.
type MockMetricsMockRecorder struct {
	mock *MockMetrics
}

// NewMockMetrics creates a new mock instance.
func NewMockMetrics(ctrl *gomock.Controller) *MockMetrics {
	mock := &MockMetrics{ctrl: ctrl}
	mock.recorder = &MockMetricsMockRecorder{mock}

	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMetrics) EXPECT() *MockMetricsMockRecorder {
	return m.recorder
}

// NewCounter mocks base method.
func (m *MockMetrics) NewCounter(name, desc string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "NewCounter", name, desc)
}

// NewCounter indicates an expected call of NewCounter.
func (mr *MockMetricsMockRecorder) NewCounter(name, desc any) *gomock.Call {
	mr.mock.ctrl.T.Helper()

	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NewCounter", reflect.TypeOf((*MockMetrics)(nil).NewCounter), name, desc)
}

// IncrementCounter mocks base method.
func (m *MockMetrics) IncrementCounter(ctx context.Context, name string, labels ...string) {
	m.ctrl.T.Helper()

	varargs := []any{ctx, name}
	for _, a := range labels {
		varargs = append(varargs, a)
	}

	m.ctrl.Call(m, "IncrementCounter", varargs...)
}

// IncrementCounter indicates an expected call of IncrementCounter.
func (mr *MockMetricsMockRecorder) IncrementCounter(ctx, name any, labels ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()

	varargs := append([]any{ctx, name}, labels...)

	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementCounter",
		reflect.TypeOf((*MockMetrics)(nil).IncrementCounter), varargs...)
}
