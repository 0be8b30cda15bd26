package shared

import "time"

// TimeFormat is the timestamp layout used throughout the snapshot.
// Lexicographic order on these strings equals chronological order, which the
// ledgers rely on for sorting and range filtering.
const TimeFormat = "2006-01-02 15:04:05"

// FormatTime renders t in the snapshot timestamp layout.
func FormatTime(t time.Time) string {
	return t.Format(TimeFormat)
}
