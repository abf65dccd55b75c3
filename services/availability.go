package services

import "time"

// BookingInterval is the slice of a place's calendar one booking occupies:
// the half-open range [start-of-day, start-of-day + nights).
type BookingInterval struct {
	Start  time.Time
	Nights int
}

// TruncateToDay normalizes a timestamp to midnight of its calendar day. A
// booking that starts at 14:00 still blocks the entire day.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Conflicts reports whether a candidate stay overlaps any existing booking
// of the same place. Both sides are normalized to midnight first. The three
// comparisons below are each half-open on the end date, so a booking ending
// exactly when another starts does not conflict: checkout and checkin can
// share a day.
//
// Pure computation; the caller is responsible for loading the existing set.
func Conflicts(candidateStart time.Time, candidateNights int, existing []BookingInterval) bool {
	start := TruncateToDay(candidateStart)
	end := start.AddDate(0, 0, candidateNights)

	for _, booked := range existing {
		bookedStart := TruncateToDay(booked.Start)
		bookedEnd := bookedStart.AddDate(0, 0, booked.Nights)

		// Candidate starts inside the booked stay.
		if !start.Before(bookedStart) && start.Before(bookedEnd) {
			return true
		}
		// Candidate ends inside the booked stay.
		if end.After(bookedStart) && !end.After(bookedEnd) {
			return true
		}
		// Candidate swallows the booked stay whole.
		if !bookedStart.Before(start) && bookedStart.Before(end) {
			return true
		}
	}
	return false
}
