package models

import "time"

// TimeLayout is the wire format for every timestamp the API accepts or
// produces (zero-padded, 24-hour clock).
const TimeLayout = "2006/01/02 15:04:05"

func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}
