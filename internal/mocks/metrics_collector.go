package mocks

import (
	context "context"
	time "time"

	mock "github.com/stretchr/testify/mock"
)

// MetricsCollector is a mock type for the MetricsCollector type
type MetricsCollector struct {
	mock.Mock
}

type MetricsCollector_Expecter struct {
	mock *mock.Mock
}

func (_m *MetricsCollector) EXPECT() *MetricsCollector_Expecter {
	return &MetricsCollector_Expecter{mock: &_m.Mock}
}

// RecordCacheHit provides a mock function with given fields: ctx
func (_m *MetricsCollector) RecordCacheHit(ctx context.Context) {
	_m.Called(ctx)
}

// MetricsCollector_RecordCacheHit_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RecordCacheHit'
type MetricsCollector_RecordCacheHit_Call struct {
	*mock.Call
}

// RecordCacheHit is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MetricsCollector_Expecter) RecordCacheHit(ctx interface{}) *MetricsCollector_RecordCacheHit_Call {
	return &MetricsCollector_RecordCacheHit_Call{Call: _e.mock.On("RecordCacheHit", ctx)}
}

func (_c *MetricsCollector_RecordCacheHit_Call) Run(run func(ctx context.Context)) *MetricsCollector_RecordCacheHit_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MetricsCollector_RecordCacheHit_Call) Return() *MetricsCollector_RecordCacheHit_Call {
	_c.Call.Return()
	return _c
}

// RecordCacheMiss provides a mock function with given fields: ctx
func (_m *MetricsCollector) RecordCacheMiss(ctx context.Context) {
	_m.Called(ctx)
}

// MetricsCollector_RecordCacheMiss_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RecordCacheMiss'
type MetricsCollector_RecordCacheMiss_Call struct {
	*mock.Call
}

// RecordCacheMiss is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MetricsCollector_Expecter) RecordCacheMiss(ctx interface{}) *MetricsCollector_RecordCacheMiss_Call {
	return &MetricsCollector_RecordCacheMiss_Call{Call: _e.mock.On("RecordCacheMiss", ctx)}
}

func (_c *MetricsCollector_RecordCacheMiss_Call) Run(run func(ctx context.Context)) *MetricsCollector_RecordCacheMiss_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MetricsCollector_RecordCacheMiss_Call) Return() *MetricsCollector_RecordCacheMiss_Call {
	_c.Call.Return()
	return _c
}

// RecordCacheOperation provides a mock function with given fields: ctx, operation, duration
func (_m *MetricsCollector) RecordCacheOperation(ctx context.Context, operation string, duration time.Duration) {
	_m.Called(ctx, operation, duration)
}

// MetricsCollector_RecordCacheOperation_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RecordCacheOperation'
type MetricsCollector_RecordCacheOperation_Call struct {
	*mock.Call
}

// RecordCacheOperation is a helper method to define mock.On call
//   - ctx context.Context
//   - operation string
//   - duration time.Duration
func (_e *MetricsCollector_Expecter) RecordCacheOperation(ctx interface{}, operation interface{}, duration interface{}) *MetricsCollector_RecordCacheOperation_Call {
	return &MetricsCollector_RecordCacheOperation_Call{Call: _e.mock.On("RecordCacheOperation", ctx, operation, duration)}
}

func (_c *MetricsCollector_RecordCacheOperation_Call) Run(run func(ctx context.Context, operation string, duration time.Duration)) *MetricsCollector_RecordCacheOperation_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(time.Duration))
	})
	return _c
}

func (_c *MetricsCollector_RecordCacheOperation_Call) Return() *MetricsCollector_RecordCacheOperation_Call {
	_c.Call.Return()
	return _c
}

// RecordProviderCall provides a mock function with given fields: ctx, operation, success
func (_m *MetricsCollector) RecordProviderCall(ctx context.Context, operation string, success bool) {
	_m.Called(ctx, operation, success)
}

// MetricsCollector_RecordProviderCall_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RecordProviderCall'
type MetricsCollector_RecordProviderCall_Call struct {
	*mock.Call
}

// RecordProviderCall is a helper method to define mock.On call
//   - ctx context.Context
//   - operation string
//   - success bool
func (_e *MetricsCollector_Expecter) RecordProviderCall(ctx interface{}, operation interface{}, success interface{}) *MetricsCollector_RecordProviderCall_Call {
	return &MetricsCollector_RecordProviderCall_Call{Call: _e.mock.On("RecordProviderCall", ctx, operation, success)}
}

func (_c *MetricsCollector_RecordProviderCall_Call) Run(run func(ctx context.Context, operation string, success bool)) *MetricsCollector_RecordProviderCall_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(bool))
	})
	return _c
}

func (_c *MetricsCollector_RecordProviderCall_Call) Return() *MetricsCollector_RecordProviderCall_Call {
	_c.Call.Return()
	return _c
}

// RecordFallback provides a mock function with given fields: ctx, outcome
func (_m *MetricsCollector) RecordFallback(ctx context.Context, outcome string) {
	_m.Called(ctx, outcome)
}

// MetricsCollector_RecordFallback_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RecordFallback'
type MetricsCollector_RecordFallback_Call struct {
	*mock.Call
}

// RecordFallback is a helper method to define mock.On call
//   - ctx context.Context
//   - outcome string
func (_e *MetricsCollector_Expecter) RecordFallback(ctx interface{}, outcome interface{}) *MetricsCollector_RecordFallback_Call {
	return &MetricsCollector_RecordFallback_Call{Call: _e.mock.On("RecordFallback", ctx, outcome)}
}

func (_c *MetricsCollector_RecordFallback_Call) Run(run func(ctx context.Context, outcome string)) *MetricsCollector_RecordFallback_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MetricsCollector_RecordFallback_Call) Return() *MetricsCollector_RecordFallback_Call {
	_c.Call.Return()
	return _c
}

// RecordResolution provides a mock function with given fields: ctx, source, duration
func (_m *MetricsCollector) RecordResolution(ctx context.Context, source string, duration time.Duration) {
	_m.Called(ctx, source, duration)
}

// MetricsCollector_RecordResolution_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RecordResolution'
type MetricsCollector_RecordResolution_Call struct {
	*mock.Call
}

// RecordResolution is a helper method to define mock.On call
//   - ctx context.Context
//   - source string
//   - duration time.Duration
func (_e *MetricsCollector_Expecter) RecordResolution(ctx interface{}, source interface{}, duration interface{}) *MetricsCollector_RecordResolution_Call {
	return &MetricsCollector_RecordResolution_Call{Call: _e.mock.On("RecordResolution", ctx, source, duration)}
}

func (_c *MetricsCollector_RecordResolution_Call) Run(run func(ctx context.Context, source string, duration time.Duration)) *MetricsCollector_RecordResolution_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(time.Duration))
	})
	return _c
}

func (_c *MetricsCollector_RecordResolution_Call) Return() *MetricsCollector_RecordResolution_Call {
	_c.Call.Return()
	return _c
}

// NewMetricsCollector creates a new instance of MetricsCollector. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMetricsCollector(t interface {
	mock.TestingT
	Cleanup(func())
}) *MetricsCollector {
	mock := &MetricsCollector{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
