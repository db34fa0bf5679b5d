package schedule

import "time"

const clockLayout = "15:04"

// parseClock converts an HH:MM string to minutes since midnight.
func parseClock(s string) (int, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func clockHour(minutes int) int {
	return minutes / 60
}
