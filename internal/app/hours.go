package app

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"matcha_map/internal/domain"
)

// e.g. "7:00 AM - 3:00 PM"; AM/PM markers are case-insensitive.
var hoursPattern = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)\s*-\s*(\d{1,2}):(\d{2})\s*(AM|PM)`)

// IsOpen reports whether a cafe is open at the given local instant.
//
// The policy is fail-open on every missing or malformed input: no hours
// table, no entry for the weekday, or an entry that doesn't match the
// interval grammar all read as open. Only an exact "Closed" entry (the
// sentinel is case-sensitive) or an instant outside a parsed interval
// reads as closed. Both interval endpoints are inclusive.
//
// Intervals that cross local midnight are not supported: with plain
// minutes-since-midnight arithmetic the close endpoint sorts before the
// open endpoint, so post-midnight instants evaluate false. The tests pin
// that behavior rather than hide it.
func IsOpen(c domain.Cafe, now time.Time) bool {
	if c.Hours == nil {
		return true
	}

	day := strings.ToLower(now.Weekday().String())
	entry, ok := c.Hours[day]
	if !ok || entry == "" {
		return true
	}
	if entry == domain.Closed {
		return false
	}

	m := hoursPattern.FindStringSubmatch(entry)
	if m == nil {
		return true
	}

	openMin := clockMinutes(m[1], m[2], m[3])
	closeMin := clockMinutes(m[4], m[5], m[6])
	nowMin := now.Hour()*60 + now.Minute()

	return nowMin >= openMin && nowMin <= closeMin
}

// clockMinutes converts a 12-hour clock reading to minutes since local
// midnight: 12 AM is hour zero, 12 PM stays at noon.
func clockMinutes(hh, mm, period string) int {
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	switch strings.ToUpper(period) {
	case "PM":
		if h != 12 {
			h += 12
		}
	case "AM":
		if h == 12 {
			h = 0
		}
	}
	return h*60 + m
}
