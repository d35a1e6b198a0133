package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	ports "weatherbot.app/internal/ports"
)

// WeatherScraper is a mock type for the WeatherScraper type
type WeatherScraper struct {
	mock.Mock
}

type WeatherScraper_Expecter struct {
	mock *mock.Mock
}

func (_m *WeatherScraper) EXPECT() *WeatherScraper_Expecter {
	return &WeatherScraper_Expecter{mock: &_m.Mock}
}

// Scrape provides a mock function with given fields: ctx, city
func (_m *WeatherScraper) Scrape(ctx context.Context, city string) (*ports.ScrapedWeather, error) {
	ret := _m.Called(ctx, city)

	if len(ret) == 0 {
		panic("no return value specified for Scrape")
	}

	var r0 *ports.ScrapedWeather
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*ports.ScrapedWeather, error)); ok {
		return rf(ctx, city)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *ports.ScrapedWeather); ok {
		r0 = rf(ctx, city)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*ports.ScrapedWeather)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, city)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// WeatherScraper_Scrape_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Scrape'
type WeatherScraper_Scrape_Call struct {
	*mock.Call
}

// Scrape is a helper method to define mock.On call
//   - ctx context.Context
//   - city string
func (_e *WeatherScraper_Expecter) Scrape(ctx interface{}, city interface{}) *WeatherScraper_Scrape_Call {
	return &WeatherScraper_Scrape_Call{Call: _e.mock.On("Scrape", ctx, city)}
}

func (_c *WeatherScraper_Scrape_Call) Run(run func(ctx context.Context, city string)) *WeatherScraper_Scrape_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *WeatherScraper_Scrape_Call) Return(_a0 *ports.ScrapedWeather, _a1 error) *WeatherScraper_Scrape_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// NewWeatherScraper creates a new instance of WeatherScraper. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewWeatherScraper(t interface {
	mock.TestingT
	Cleanup(func())
}) *WeatherScraper {
	mock := &WeatherScraper{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
