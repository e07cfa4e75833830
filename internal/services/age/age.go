// Package age computes whole-year ages from YYYY-MM-DD date strings.
package age

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// dobLayout is the only accepted date-of-birth format.
const dobLayout = "2006-01-02"

// clock is a package-level time source so tests can freeze "today".
// Production code uses the real clock; tests inject a fake for
// deterministic birthday-boundary cases.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// Calculate parses a strict YYYY-MM-DD date of birth and returns the age in
// whole years: the year difference, minus one if the birthday has not yet
// occurred this year. Unparseable input is an error — callers that want the
// degraded "unknown age" behavior handle it themselves.
func Calculate(dob string) (int, error) {
	born, err := time.Parse(dobLayout, dob)
	if err != nil {
		return 0, fmt.Errorf("invalid date of birth %q: want YYYY-MM-DD", dob)
	}

	today := clock.Now()
	years := today.Year() - born.Year()

	// "Has the birthday occurred yet this year" — compare (month, day) pairs.
	if today.Month() < born.Month() ||
		(today.Month() == born.Month() && today.Day() < born.Day()) {
		years--
	}

	return years, nil
}
