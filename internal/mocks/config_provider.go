package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ports "weatherbot.app/internal/ports"
)

// ConfigProvider is a mock type for the ConfigProvider type
type ConfigProvider struct {
	mock.Mock
}

type ConfigProvider_Expecter struct {
	mock *mock.Mock
}

func (_m *ConfigProvider) EXPECT() *ConfigProvider_Expecter {
	return &ConfigProvider_Expecter{mock: &_m.Mock}
}

// GetWeatherConfig provides a mock function with no fields
func (_m *ConfigProvider) GetWeatherConfig() ports.WeatherConfig {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for GetWeatherConfig")
	}

	var r0 ports.WeatherConfig
	if rf, ok := ret.Get(0).(func() ports.WeatherConfig); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(ports.WeatherConfig)
	}

	return r0
}

// ConfigProvider_GetWeatherConfig_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetWeatherConfig'
type ConfigProvider_GetWeatherConfig_Call struct {
	*mock.Call
}

// GetWeatherConfig is a helper method to define mock.On call
func (_e *ConfigProvider_Expecter) GetWeatherConfig() *ConfigProvider_GetWeatherConfig_Call {
	return &ConfigProvider_GetWeatherConfig_Call{Call: _e.mock.On("GetWeatherConfig")}
}

func (_c *ConfigProvider_GetWeatherConfig_Call) Return(_a0 ports.WeatherConfig) *ConfigProvider_GetWeatherConfig_Call {
	_c.Call.Return(_a0)
	return _c
}

// GetServerConfig provides a mock function with no fields
func (_m *ConfigProvider) GetServerConfig() ports.ServerConfig {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for GetServerConfig")
	}

	var r0 ports.ServerConfig
	if rf, ok := ret.Get(0).(func() ports.ServerConfig); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(ports.ServerConfig)
	}

	return r0
}

// ConfigProvider_GetServerConfig_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetServerConfig'
type ConfigProvider_GetServerConfig_Call struct {
	*mock.Call
}

// GetServerConfig is a helper method to define mock.On call
func (_e *ConfigProvider_Expecter) GetServerConfig() *ConfigProvider_GetServerConfig_Call {
	return &ConfigProvider_GetServerConfig_Call{Call: _e.mock.On("GetServerConfig")}
}

func (_c *ConfigProvider_GetServerConfig_Call) Return(_a0 ports.ServerConfig) *ConfigProvider_GetServerConfig_Call {
	_c.Call.Return(_a0)
	return _c
}

// GetCacheConfig provides a mock function with no fields
func (_m *ConfigProvider) GetCacheConfig() ports.CacheConfig {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for GetCacheConfig")
	}

	var r0 ports.CacheConfig
	if rf, ok := ret.Get(0).(func() ports.CacheConfig); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(ports.CacheConfig)
	}

	return r0
}

// ConfigProvider_GetCacheConfig_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetCacheConfig'
type ConfigProvider_GetCacheConfig_Call struct {
	*mock.Call
}

// GetCacheConfig is a helper method to define mock.On call
func (_e *ConfigProvider_Expecter) GetCacheConfig() *ConfigProvider_GetCacheConfig_Call {
	return &ConfigProvider_GetCacheConfig_Call{Call: _e.mock.On("GetCacheConfig")}
}

func (_c *ConfigProvider_GetCacheConfig_Call) Return(_a0 ports.CacheConfig) *ConfigProvider_GetCacheConfig_Call {
	_c.Call.Return(_a0)
	return _c
}

// GetScrapeConfig provides a mock function with no fields
func (_m *ConfigProvider) GetScrapeConfig() ports.ScrapeConfig {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for GetScrapeConfig")
	}

	var r0 ports.ScrapeConfig
	if rf, ok := ret.Get(0).(func() ports.ScrapeConfig); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(ports.ScrapeConfig)
	}

	return r0
}

// ConfigProvider_GetScrapeConfig_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetScrapeConfig'
type ConfigProvider_GetScrapeConfig_Call struct {
	*mock.Call
}

// GetScrapeConfig is a helper method to define mock.On call
func (_e *ConfigProvider_Expecter) GetScrapeConfig() *ConfigProvider_GetScrapeConfig_Call {
	return &ConfigProvider_GetScrapeConfig_Call{Call: _e.mock.On("GetScrapeConfig")}
}

func (_c *ConfigProvider_GetScrapeConfig_Call) Return(_a0 ports.ScrapeConfig) *ConfigProvider_GetScrapeConfig_Call {
	_c.Call.Return(_a0)
	return _c
}

// NewConfigProvider creates a new instance of ConfigProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewConfigProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *ConfigProvider {
	mock := &ConfigProvider{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
