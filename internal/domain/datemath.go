package domain

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// BirthdayLayout is the only accepted birthday format. Anything else,
// including leading or trailing whitespace, degrades to nil/passthrough.
const BirthdayLayout = "2006-01-02"

// ParseBirthday parses a YYYY-MM-DD date string. The second return value
// reports whether the string was a valid calendar date.
func ParseBirthday(birthday string) (time.Time, bool) {
	if birthday == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(BirthdayLayout, birthday)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Age returns completed years between the birth date and now's local
// calendar day, or nil when the birthday is empty or unparseable.
func Age(now time.Time, birthday string) *int {
	birth, ok := ParseBirthday(birthday)
	if !ok {
		return nil
	}
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return &years
}

// FormattedBirthday renders the birth month and day as "March 4". The
// date's own calendar components are used directly, never re-interpreted
// through a timezone-shifting parse. Unparseable input passes through
// unchanged; empty input yields "".
func FormattedBirthday(birthday string) string {
	if birthday == "" {
		return ""
	}
	birth, ok := ParseBirthday(birthday)
	if !ok {
		return birthday
	}
	return birth.Month().String() + " " + strconv.Itoa(birth.Day())
}

// DaysUntilBirthday counts calendar days from now's local midnight to the
// next occurrence of the birth month/day: this year's date if it has not
// yet passed, else next year's. 0 means the birthday is today. Both
// endpoints are built at midnight in the same location and the difference
// rounded to the nearest day, so DST transitions never skew the count.
// Returns nil when the birthday is empty or unparseable.
func DaysUntilBirthday(now time.Time, birthday string) *int {
	birth, ok := ParseBirthday(birthday)
	if !ok {
		return nil
	}
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	next := occurrenceIn(now.Year(), birth, loc)
	if next.Before(today) {
		next = occurrenceIn(now.Year()+1, birth, loc)
	}

	days := int(math.Round(next.Sub(today).Hours() / 24))
	return &days
}

// occurrenceIn places the birth month/day in the given year. A February 29
// birthday falls on February 28 in non-leap years.
func occurrenceIn(year int, birth time.Time, loc *time.Location) time.Time {
	day := birth.Day()
	if birth.Month() == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return time.Date(year, birth.Month(), day, 0, 0, 0, 0, loc)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DetailedAge breaks the age down as "Y years, M months[, D days] old"
// using calendar-field subtraction with borrow: borrowing a month adds the
// length of the previous calendar month, borrowing a year adds 12 months.
// The days component is omitted when exactly zero. Returns "" when the
// birthday is empty or unparseable.
func DetailedAge(now time.Time, birthday string) string {
	birth, ok := ParseBirthday(birthday)
	if !ok {
		return ""
	}

	years := now.Year() - birth.Year()
	months := int(now.Month()) - int(birth.Month())
	days := now.Day() - birth.Day()

	if days < 0 {
		months--
		// Day zero of the current month is the last day of the previous one.
		days += time.Date(now.Year(), now.Month(), 0, 0, 0, 0, 0, now.Location()).Day()
	}
	if months < 0 {
		years--
		months += 12
	}

	if days == 0 {
		return fmt.Sprintf("%d years, %d months old", years, months)
	}
	return fmt.Sprintf("%d years, %d months, %d days old", years, months, days)
}
