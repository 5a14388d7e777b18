package bergfex

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

// SiteTimezone is the fixed reference timezone in which the site renders
// every date string, regardless of viewer locale.
const SiteTimezone = "Europe/Vienna"

var siteLocation = sync.OnceValue(func() *time.Location {
	loc, err := time.LoadLocation(SiteTimezone)
	if err != nil {
		// No tzdata available; CET keeps absolute dates on the right day.
		return time.FixedZone("CET", 60*60)
	}
	return loc
})

// SiteLocation returns the reference timezone, loaded once per process.
func SiteLocation() *time.Location {
	return siteLocation()
}

var (
	clockRe    = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	absoluteRe = regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\.(?:\s*(\d{4}))?(?:,|\.)?\s*(\d{1,2}):(\d{2})`)
)

var (
	todayWords     = []string{"aujourd", "today", "heute"}
	yesterdayWords = []string{"hier", "yesterday", "gestern"}
)

// ParseUpdateTime parses a free-text last-update string from the site
// into an absolute timestamp. It recognizes, in priority order, relative
// "today"/"yesterday" forms carrying an embedded H:MM time, and absolute
// "d.m[.yyyy][,] h:mm" forms. When the absolute form omits the year, the
// current year is assumed and rolled back by one if the result would land
// more than 180 days in the future (pages published near year-end
// reference dates that belong to the now-past year).
//
// now anchors the relative forms and the year inference; the result is
// expressed in now's location, which callers set to SiteLocation().
// Parsing is best-effort: unrecognized or calendar-invalid input returns
// ok=false, never an error.
func ParseUpdateTime(raw string, now time.Time) (time.Time, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return time.Time{}, false
	}

	if hasAnyPrefix(s, todayWords) {
		if hour, minute, ok := clockTime(s); ok {
			return onDay(now, hour, minute), true
		}
	}

	if hasAnyPrefix(s, yesterdayWords) {
		if hour, minute, ok := clockTime(s); ok {
			return onDay(now.AddDate(0, 0, -1), hour, minute), true
		}
	}

	m := absoluteRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])

	year := now.Year()
	hasYear := m[3] != ""
	if hasYear {
		year, _ = strconv.Atoi(m[3])
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, now.Location())
	// time.Date normalizes out-of-range components (31.11 becomes 01.12),
	// so a changed component means the calendar date was invalid.
	if t.Day() != day || int(t.Month()) != month || t.Hour() != hour || t.Minute() != minute {
		return time.Time{}, false
	}

	if !hasYear && t.After(now.Add(180*24*time.Hour)) {
		t = time.Date(year-1, time.Month(month), day, hour, minute, 0, 0, now.Location())
	}

	return t, true
}

// clockTime extracts the first embedded H:MM time from s.
func clockTime(s string) (hour, minute int, ok bool) {
	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// onDay returns day's calendar date at the given wall-clock time.
func onDay(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
