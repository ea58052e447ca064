package core

import (
	"strings"
	"time"
)

const (
	// ReturnDateLayout is the only accepted textual format of a ReturnDate (yyyy-MM-dd).
	ReturnDateLayout = "2006-01-02"

	// DefaultLoanPeriod is used when a loan is made without an explicit return date.
	DefaultLoanPeriod = 14 * 24 * time.Hour
)

// ReturnDateConstraints describes the format rule for a ReturnDate.
const ReturnDateConstraints = "return dates must be real calendar dates in the format yyyy-MM-dd"

// ReturnDate is the day a loaned copy is due back. It has day precision and is always UTC.
type ReturnDate struct {
	day time.Time
}

// ParseReturnDate strictly parses raw in ReturnDateLayout.
// Out-of-range parts like 2023-02-30 or 2023-13-01 are rejected instead of being rolled forward.
func ParseReturnDate(raw string) (ReturnDate, error) {
	if strings.TrimSpace(raw) == "" {
		return ReturnDate{}, IllegalValue(FieldReturnDate, "return date must not be blank")
	}

	day, err := time.Parse(ReturnDateLayout, raw)
	if err != nil {
		return ReturnDate{}, IllegalValue(FieldReturnDate, ReturnDateConstraints)
	}

	return ReturnDate{day: day}, nil
}

// ReturnDateOf truncates t to its calendar day (in t's location) and returns it as a ReturnDate.
func ReturnDateOf(t time.Time) ReturnDate {
	y, m, d := t.Date()

	return ReturnDate{day: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// DefaultReturnDate returns the due date for a loan made at loanedAt with the given loan period.
func DefaultReturnDate(loanedAt time.Time, loanPeriod time.Duration) ReturnDate {
	return ReturnDateOf(loanedAt.Add(loanPeriod))
}

// IsZero reports whether the ReturnDate was never set.
func (r ReturnDate) IsZero() bool {
	return r.day.IsZero()
}

// Time returns the due day at midnight UTC.
func (r ReturnDate) Time() time.Time {
	return r.day
}

// Before reports whether r is an earlier day than other.
func (r ReturnDate) Before(other ReturnDate) bool {
	return r.day.Before(other.day)
}

// Equals compares two return dates by day.
func (r ReturnDate) Equals(other ReturnDate) bool {
	return r.day.Equal(other.day)
}

// String formats the ReturnDate in ReturnDateLayout, or returns "" for the zero value.
func (r ReturnDate) String() string {
	if r.IsZero() {
		return ""
	}

	return r.day.Format(ReturnDateLayout)
}
