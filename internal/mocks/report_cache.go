package mocks

import (
	context "context"
	time "time"

	mock "github.com/stretchr/testify/mock"
)

// ReportCache is a mock type for the ReportCache type
type ReportCache struct {
	mock.Mock
}

type ReportCache_Expecter struct {
	mock *mock.Mock
}

func (_m *ReportCache) EXPECT() *ReportCache_Expecter {
	return &ReportCache_Expecter{mock: &_m.Mock}
}

// Get provides a mock function with given fields: ctx, key
func (_m *ReportCache) Get(ctx context.Context, key string) (string, error) {
	ret := _m.Called(ctx, key)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (string, error)); ok {
		return rf(ctx, key)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) string); ok {
		r0 = rf(ctx, key)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, key)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ReportCache_Get_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Get'
type ReportCache_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
//   - ctx context.Context
//   - key string
func (_e *ReportCache_Expecter) Get(ctx interface{}, key interface{}) *ReportCache_Get_Call {
	return &ReportCache_Get_Call{Call: _e.mock.On("Get", ctx, key)}
}

func (_c *ReportCache_Get_Call) Run(run func(ctx context.Context, key string)) *ReportCache_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *ReportCache_Get_Call) Return(_a0 string, _a1 error) *ReportCache_Get_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// Set provides a mock function with given fields: ctx, key, text, ttl
func (_m *ReportCache) Set(ctx context.Context, key string, text string, ttl time.Duration) error {
	ret := _m.Called(ctx, key, text, ttl)

	if len(ret) == 0 {
		panic("no return value specified for Set")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, time.Duration) error); ok {
		r0 = rf(ctx, key, text, ttl)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ReportCache_Set_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Set'
type ReportCache_Set_Call struct {
	*mock.Call
}

// Set is a helper method to define mock.On call
//   - ctx context.Context
//   - key string
//   - text string
//   - ttl time.Duration
func (_e *ReportCache_Expecter) Set(ctx interface{}, key interface{}, text interface{}, ttl interface{}) *ReportCache_Set_Call {
	return &ReportCache_Set_Call{Call: _e.mock.On("Set", ctx, key, text, ttl)}
}

func (_c *ReportCache_Set_Call) Run(run func(ctx context.Context, key string, text string, ttl time.Duration)) *ReportCache_Set_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(time.Duration))
	})
	return _c
}

func (_c *ReportCache_Set_Call) Return(_a0 error) *ReportCache_Set_Call {
	_c.Call.Return(_a0)
	return _c
}

// NewReportCache creates a new instance of ReportCache. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewReportCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReportCache {
	mock := &ReportCache{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
