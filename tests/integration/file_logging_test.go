package integration

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"
)

func (s *IntegrationTestSuite) TestFileLogging_ProviderCallsAreRecorded() {
	s.get(s.router, "/api/weather?city=Berlin", nil)

	file, err := os.Open(s.config.Weather.LogFilePath)
	s.Require().NoError(err)
	defer func() { _ = file.Close() }()

	var events []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry map[string]interface{}
		s.Require().NoError(json.Unmarshal(scanner.Bytes(), &entry), scanner.Text())

		s.Contains(entry, "timestamp")
		s.Contains(entry, "level")
		if entry["city"] == "Berlin" {
			events = append(events, entry["event"].(string))
			s.Equal("openweathermap", entry["provider"])
		}
	}
	s.Require().NoError(scanner.Err())

	s.Contains(events, "request")
	s.Contains(events, "response")
}

func (s *IntegrationTestSuite) TestFileLogging_FailuresAreRecorded() {
	s.get(s.router, "/api/weather?city=servererror", nil)

	data, err := os.ReadFile(s.config.Weather.LogFilePath)
	s.Require().NoError(err)

	found := false
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if strings.Contains(line, `"city":"servererror"`) && strings.Contains(line, `"event":"error"`) {
			found = true
			s.Contains(line, "OpenWeatherMap returned status 500")
		}
	}
	s.True(found, "expected an error entry for servererror")
}
