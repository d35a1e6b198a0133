package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ports "weatherbot.app/internal/ports"
)

// Logger is a mock type for the Logger type
type Logger struct {
	mock.Mock
}

type Logger_Expecter struct {
	mock *mock.Mock
}

func (_m *Logger) EXPECT() *Logger_Expecter {
	return &Logger_Expecter{mock: &_m.Mock}
}

func (_m *Logger) call(method string, msg string, fields []ports.Field) {
	_va := make([]interface{}, len(fields))
	for _i := range fields {
		_va[_i] = fields[_i]
	}
	var _ca []interface{}
	_ca = append(_ca, msg)
	_ca = append(_ca, _va...)
	_m.MethodCalled(method, _ca...)
}

// Debug provides a mock function with given fields: msg, fields
func (_m *Logger) Debug(msg string, fields ...ports.Field) {
	_m.call("Debug", msg, fields)
}

// Info provides a mock function with given fields: msg, fields
func (_m *Logger) Info(msg string, fields ...ports.Field) {
	_m.call("Info", msg, fields)
}

// Warn provides a mock function with given fields: msg, fields
func (_m *Logger) Warn(msg string, fields ...ports.Field) {
	_m.call("Warn", msg, fields)
}

// Error provides a mock function with given fields: msg, fields
func (_m *Logger) Error(msg string, fields ...ports.Field) {
	_m.call("Error", msg, fields)
}

// Logger_Log_Call is a *mock.Call shared by all log levels
type Logger_Log_Call struct {
	*mock.Call
}

func (_e *Logger_Expecter) on(method string, msg interface{}, fields []interface{}) *Logger_Log_Call {
	return &Logger_Log_Call{Call: _e.mock.On(method, append([]interface{}{msg}, fields...)...)}
}

// Debug is a helper method to define mock.On call
//   - msg string
//   - fields ...ports.Field
func (_e *Logger_Expecter) Debug(msg interface{}, fields ...interface{}) *Logger_Log_Call {
	return _e.on("Debug", msg, fields)
}

// Info is a helper method to define mock.On call
func (_e *Logger_Expecter) Info(msg interface{}, fields ...interface{}) *Logger_Log_Call {
	return _e.on("Info", msg, fields)
}

// Warn is a helper method to define mock.On call
func (_e *Logger_Expecter) Warn(msg interface{}, fields ...interface{}) *Logger_Log_Call {
	return _e.on("Warn", msg, fields)
}

// Error is a helper method to define mock.On call
func (_e *Logger_Expecter) Error(msg interface{}, fields ...interface{}) *Logger_Log_Call {
	return _e.on("Error", msg, fields)
}

func (_c *Logger_Log_Call) Run(run func(msg string, fields ...ports.Field)) *Logger_Log_Call {
	_c.Call.Run(func(args mock.Arguments) {
		variadicArgs := make([]ports.Field, len(args)-1)
		for i, a := range args[1:] {
			if a != nil {
				variadicArgs[i] = a.(ports.Field)
			}
		}
		run(args[0].(string), variadicArgs...)
	})
	return _c
}

func (_c *Logger_Log_Call) Return() *Logger_Log_Call {
	_c.Call.Return()
	return _c
}

// NewLogger creates a new instance of Logger. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewLogger(t interface {
	mock.TestingT
	Cleanup(func())
}) *Logger {
	mock := &Logger{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
