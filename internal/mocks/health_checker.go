package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	ports "weatherbot.app/internal/ports"
)

// HealthChecker is a mock type for the HealthChecker type
type HealthChecker struct {
	mock.Mock
}

type HealthChecker_Expecter struct {
	mock *mock.Mock
}

func (_m *HealthChecker) EXPECT() *HealthChecker_Expecter {
	return &HealthChecker_Expecter{mock: &_m.Mock}
}

// Check provides a mock function with given fields: ctx
func (_m *HealthChecker) Check(ctx context.Context) ports.HealthStatus {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Check")
	}

	var r0 ports.HealthStatus
	if rf, ok := ret.Get(0).(func(context.Context) ports.HealthStatus); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(ports.HealthStatus)
	}

	return r0
}

// HealthChecker_Check_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Check'
type HealthChecker_Check_Call struct {
	*mock.Call
}

// Check is a helper method to define mock.On call
//   - ctx context.Context
func (_e *HealthChecker_Expecter) Check(ctx interface{}) *HealthChecker_Check_Call {
	return &HealthChecker_Check_Call{Call: _e.mock.On("Check", ctx)}
}

func (_c *HealthChecker_Check_Call) Return(_a0 ports.HealthStatus) *HealthChecker_Check_Call {
	_c.Call.Return(_a0)
	return _c
}

// NewHealthChecker creates a new instance of HealthChecker. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewHealthChecker(t interface {
	mock.TestingT
	Cleanup(func())
}) *HealthChecker {
	mock := &HealthChecker{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
