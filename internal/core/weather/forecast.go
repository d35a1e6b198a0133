package weather

import (
	"time"

	"weatherbot.app/internal/ports"
)

// Reading is the representative temperature and description for one slot
type Reading struct {
	Temperature float64
	Description string
}

// ForecastDay holds at most one reading per slot for a calendar date
type ForecastDay struct {
	Date     time.Time
	Readings map[Slot]Reading
}

// BucketForecast groups samples by calendar date in loc and by time-of-day slot.
// The first sample seen for a (date, slot) pair wins. Dates keep the order in
// which they first appear and only the first maxDays of them are returned.
func BucketForecast(samples []ports.ForecastSample, maxDays int, loc *time.Location) []ForecastDay {
	if loc == nil {
		loc = time.Local
	}

	var days []ForecastDay
	index := make(map[string]int)

	for _, sample := range samples {
		local := sample.Time.In(loc)
		dateKey := local.Format("2006-01-02")

		i, seen := index[dateKey]
		if !seen {
			if len(days) >= maxDays {
				continue
			}
			i = len(days)
			index[dateKey] = i
			days = append(days, ForecastDay{
				Date:     time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc),
				Readings: make(map[Slot]Reading, len(slotOrder)),
			})
		}

		slot := SlotForHour(local.Hour())
		if _, filled := days[i].Readings[slot]; filled {
			continue
		}
		days[i].Readings[slot] = Reading{
			Temperature: sample.Temperature,
			Description: sample.Description,
		}
	}

	return days
}
