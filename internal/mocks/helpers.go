package mocks

import (
	mock "github.com/stretchr/testify/mock"
)

// AllowAll registers optional expectations for every level and field count up to maxFields
func (_m *Logger) AllowAll(maxFields int) *Logger {
	for _, method := range []string{"Debug", "Info", "Warn", "Error"} {
		for n := 0; n <= maxFields; n++ {
			args := make([]interface{}, n+1)
			for i := range args {
				args[i] = mock.Anything
			}
			_m.On(method, args...).Maybe()
		}
	}
	return _m
}

// AllowAll registers optional expectations for every metrics method
func (_m *MetricsCollector) AllowAll() *MetricsCollector {
	_m.On("RecordCacheHit", mock.Anything).Maybe()
	_m.On("RecordCacheMiss", mock.Anything).Maybe()
	_m.On("RecordCacheOperation", mock.Anything, mock.Anything, mock.Anything).Maybe()
	_m.On("RecordProviderCall", mock.Anything, mock.Anything, mock.Anything).Maybe()
	_m.On("RecordFallback", mock.Anything, mock.Anything).Maybe()
	_m.On("RecordResolution", mock.Anything, mock.Anything, mock.Anything).Maybe()
	return _m
}
