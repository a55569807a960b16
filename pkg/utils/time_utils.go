package utils

import (
	"fmt"
	"time"
)

// Turkey time location (TRT, +03:00). Follow-up dates are normalized to
// this zone no matter where the server runs.
var trLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Europe/Istanbul"); err == nil {
		return loc
	}
	return time.FixedZone("TRT", 3*3600)
}()

// Fixed zone used when serializing follow-up dates so the rendered
// offset is always +03:00 regardless of tzdata availability.
var trFixed = time.FixedZone("+03", 3*3600)

func TurkeyLocation() *time.Location { return trLoc }

// TodayTurkey returns the current calendar date in Europe/Istanbul as
// "2006-01-02".
func TodayTurkey(now time.Time) string {
	return now.In(trLoc).Format("2006-01-02")
}

// FollowupDate computes the target date for a follow-up offset and
// serializes it at local midnight with a fixed +03:00 designation.
// Only the calendar date of the base matters; its time-of-day is
// discarded.
func FollowupDate(base time.Time, offset int, months bool) string {
	d := base.In(trLoc)
	if months {
		d = d.AddDate(0, offset, 0)
	} else {
		d = d.AddDate(0, 0, offset)
	}
	midnight := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, trFixed)
	return midnight.Format(time.RFC3339)
}

// DateOnly extracts the calendar-date prefix of a serialized follow-up
// date for string comparison against TodayTurkey.
func DateOnly(isoDate string) string {
	if len(isoDate) < 10 {
		return isoDate
	}
	return isoDate[:10]
}

// ParseScheduleDate accepts either a bare date or a full RFC3339
// timestamp for a plan's scheduled base date.
func ParseScheduleDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, trLoc); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}

// Ordinal renders 1 -> "1st", 2 -> "2nd", 11 -> "11th" for the
// human-readable follow-up phrasing in history entries and
// notifications.
func Ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
		// 11th, 12th, 13th
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
