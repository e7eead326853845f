// FILE: lixenwraith/buflog/stamp/stamp.go
// Package stamp derives the approximate calendar timestamps used to stamp log
// entries and name flushed log files.
//
// The derivation works on whole seconds since the UNIX epoch and approximates
// the calendar: every year is 365 days long, one day is taken off
// for every four elapsed years, and months follow a fixed non-leap table.
// Existing log file names depend on this exact arithmetic.
package stamp

import (
	"strconv"
	"time"

	"github.com/trickstertwo/xclock"
)

// Derivation constants
const (
	SecondsPerMinute uint64 = 60
	SecondsPerHour   uint64 = 60 * SecondsPerMinute
	SecondsPerDay    uint64 = 24 * SecondsPerHour
	SecondsPerYear   uint64 = 365 * SecondsPerDay

	EpochYear uint64 = 1970
)

// monthEnds holds the cumulative day-of-year on which each month ends,
// built from the non-leap month lengths 31,28,31,30,31,30,31,31,30,31,30,31.
// The last boundary is 366 so a leap-adjusted ordinal still maps to December.
var monthEnds = [12]uint64{31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 366}

// Clock is the wall-clock collaborator. xclock.Clock satisfies it.
type Clock interface {
	Now() time.Time
}

// Timestamp is an approximate calendar rendering of Raw elapsed seconds.
// All fields are a pure function of Raw.
type Timestamp struct {
	Raw    uint64
	Second uint64
	Minute uint64
	Hour   uint64
	Day    uint64
	Month  uint64
	Year   uint64
}

// Derive computes the timestamp fields for raw seconds since the epoch.
func Derive(raw uint64) Timestamp {
	day, month := monthDay(DayOfYear(raw))
	return Timestamp{
		Raw:    raw,
		Second: raw % SecondsPerMinute,
		Minute: (raw % SecondsPerHour) / SecondsPerMinute,
		Hour:   (raw % SecondsPerDay) / SecondsPerHour,
		Day:    day,
		Month:  month,
		Year:   EpochYear + raw/SecondsPerYear,
	}
}

// DayOfYear returns the 1-based, leap-adjusted ordinal day for raw.
// The arithmetic is unsigned: during the first days of a derived year the
// leap adjustment exceeds the remainder and the result wraps past 366.
func DayOfYear(raw uint64) uint64 {
	years := raw / SecondsPerYear
	return (raw%SecondsPerYear-(years/4)*SecondsPerDay)/SecondsPerDay + 1
}

// monthDay maps a day-of-year ordinal onto the fixed month table.
// Ordinals beyond the table land in December with the day left as is.
func monthDay(dayOfYear uint64) (day, month uint64) {
	var prev uint64
	for i, end := range monthEnds {
		if dayOfYear <= end {
			return dayOfYear - prev, uint64(i + 1)
		}
		prev = end
	}
	return dayOfYear, 12
}

// FromTime derives the timestamp for t, truncated to whole seconds.
// Instants before the epoch derive from zero.
func FromTime(t time.Time) Timestamp {
	secs := t.Unix()
	if secs < 0 {
		secs = 0
	}
	return Derive(uint64(secs))
}

// Now derives the timestamp for the current process clock.
func Now() Timestamp {
	return FromTime(xclock.Now())
}

// NowFrom derives the timestamp for c, falling back to the process clock when c is nil.
func NowFrom(c Clock) Timestamp {
	if c == nil {
		return Now()
	}
	return FromTime(c.Now())
}

// Time returns the exact instant the timestamp was derived from.
func (ts Timestamp) Time() time.Time {
	return time.Unix(int64(ts.Raw), 0).UTC()
}

// String renders "D.M.YYYY - H:M:S" without zero padding.
func (ts Timestamp) String() string {
	return string(ts.AppendTo(make([]byte, 0, 32)))
}

// AppendTo appends the rendered timestamp to buf.
func (ts Timestamp) AppendTo(buf []byte) []byte {
	buf = strconv.AppendUint(buf, ts.Day, 10)
	buf = append(buf, '.')
	buf = strconv.AppendUint(buf, ts.Month, 10)
	buf = append(buf, '.')
	buf = strconv.AppendUint(buf, ts.Year, 10)
	buf = append(buf, " - "...)
	buf = strconv.AppendUint(buf, ts.Hour, 10)
	buf = append(buf, ':')
	buf = strconv.AppendUint(buf, ts.Minute, 10)
	buf = append(buf, ':')
	buf = strconv.AppendUint(buf, ts.Second, 10)
	return buf
}
