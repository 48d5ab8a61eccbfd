package utils

import "time"

// TodayString returns the process-local calendar date as YYYY-MM-DD.
// Daily log storage keys are derived from it.
func TodayString() string {
	return time.Now().Format("2006-01-02")
}
