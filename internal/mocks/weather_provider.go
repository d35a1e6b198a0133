package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	ports "weatherbot.app/internal/ports"
)

// WeatherProvider is a mock type for the WeatherProvider type
type WeatherProvider struct {
	mock.Mock
}

type WeatherProvider_Expecter struct {
	mock *mock.Mock
}

func (_m *WeatherProvider) EXPECT() *WeatherProvider_Expecter {
	return &WeatherProvider_Expecter{mock: &_m.Mock}
}

// GetCurrentWeather provides a mock function with given fields: ctx, city, units
func (_m *WeatherProvider) GetCurrentWeather(ctx context.Context, city string, units string) (*ports.CurrentConditions, error) {
	ret := _m.Called(ctx, city, units)

	if len(ret) == 0 {
		panic("no return value specified for GetCurrentWeather")
	}

	var r0 *ports.CurrentConditions
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (*ports.CurrentConditions, error)); ok {
		return rf(ctx, city, units)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *ports.CurrentConditions); ok {
		r0 = rf(ctx, city, units)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*ports.CurrentConditions)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, city, units)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// WeatherProvider_GetCurrentWeather_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetCurrentWeather'
type WeatherProvider_GetCurrentWeather_Call struct {
	*mock.Call
}

// GetCurrentWeather is a helper method to define mock.On call
//   - ctx context.Context
//   - city string
//   - units string
func (_e *WeatherProvider_Expecter) GetCurrentWeather(ctx interface{}, city interface{}, units interface{}) *WeatherProvider_GetCurrentWeather_Call {
	return &WeatherProvider_GetCurrentWeather_Call{Call: _e.mock.On("GetCurrentWeather", ctx, city, units)}
}

func (_c *WeatherProvider_GetCurrentWeather_Call) Run(run func(ctx context.Context, city string, units string)) *WeatherProvider_GetCurrentWeather_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *WeatherProvider_GetCurrentWeather_Call) Return(_a0 *ports.CurrentConditions, _a1 error) *WeatherProvider_GetCurrentWeather_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// GetForecast provides a mock function with given fields: ctx, city, units
func (_m *WeatherProvider) GetForecast(ctx context.Context, city string, units string) ([]ports.ForecastSample, error) {
	ret := _m.Called(ctx, city, units)

	if len(ret) == 0 {
		panic("no return value specified for GetForecast")
	}

	var r0 []ports.ForecastSample
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) ([]ports.ForecastSample, error)); ok {
		return rf(ctx, city, units)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) []ports.ForecastSample); ok {
		r0 = rf(ctx, city, units)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]ports.ForecastSample)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, city, units)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// WeatherProvider_GetForecast_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetForecast'
type WeatherProvider_GetForecast_Call struct {
	*mock.Call
}

// GetForecast is a helper method to define mock.On call
//   - ctx context.Context
//   - city string
//   - units string
func (_e *WeatherProvider_Expecter) GetForecast(ctx interface{}, city interface{}, units interface{}) *WeatherProvider_GetForecast_Call {
	return &WeatherProvider_GetForecast_Call{Call: _e.mock.On("GetForecast", ctx, city, units)}
}

func (_c *WeatherProvider_GetForecast_Call) Run(run func(ctx context.Context, city string, units string)) *WeatherProvider_GetForecast_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *WeatherProvider_GetForecast_Call) Return(_a0 []ports.ForecastSample, _a1 error) *WeatherProvider_GetForecast_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// GetProviderName provides a mock function with no fields
func (_m *WeatherProvider) GetProviderName() string {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for GetProviderName")
	}

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// WeatherProvider_GetProviderName_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetProviderName'
type WeatherProvider_GetProviderName_Call struct {
	*mock.Call
}

// GetProviderName is a helper method to define mock.On call
func (_e *WeatherProvider_Expecter) GetProviderName() *WeatherProvider_GetProviderName_Call {
	return &WeatherProvider_GetProviderName_Call{Call: _e.mock.On("GetProviderName")}
}

func (_c *WeatherProvider_GetProviderName_Call) Return(_a0 string) *WeatherProvider_GetProviderName_Call {
	_c.Call.Return(_a0)
	return _c
}

// NewWeatherProvider creates a new instance of WeatherProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewWeatherProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *WeatherProvider {
	mock := &WeatherProvider{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
