package domain

import "time"

// TimeLayout is the stored timestamp format: UTC, fixed millisecond precision,
// so that string order equals time order in sort keys.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// Now returns the current time formatted with TimeLayout.
func Now() string {
	return FormatTime(time.Now())
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}
