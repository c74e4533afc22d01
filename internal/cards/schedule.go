package cards

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	clockPattern    = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	durationPattern = regexp.MustCompile(`(?i)(?:(\d+)\s*h(?:ours?)?)?\s*(?:(\d+)\s*m(?:in(?:utes?)?)?)?`)
	minutesPattern  = regexp.MustCompile(`^\d+$`)
)

// Schedule is the travel time attached to a card. Known is false when the
// raw text was empty or could not be parsed; such cards sort after every
// card with a known schedule.
type Schedule struct {
	Raw     string
	Minutes int
	Known   bool
}

// ParseSchedule reads a time expression in one of three forms, trying
// them in order:
//
//	"14:30"   clock of day, hours*60 + minutes
//	"2h 30m"  duration, either part optional ("2 hours", "45 min")
//	"150"     bare minutes
//
// Anything else yields an unknown schedule.
func ParseSchedule(raw string) Schedule {
	s := Schedule{Raw: raw}
	text := strings.TrimSpace(raw)
	if text == "" {
		return s
	}

	if m := clockPattern.FindStringSubmatch(text); m != nil {
		return known(s, m[1], m[2])
	}

	// The duration pattern can match the empty string, so only a match
	// anchored where the text starts counts, and only if it captured a
	// number.
	if loc := durationPattern.FindStringSubmatchIndex(text); loc != nil && loc[0] == 0 {
		hours, minutes := group(text, loc, 1), group(text, loc, 2)
		if hours != "" || minutes != "" {
			return known(s, hours, minutes)
		}
	}

	if minutesPattern.MatchString(text) {
		return known(s, "", text)
	}
	return s
}

func group(text string, loc []int, n int) string {
	start, end := loc[2*n], loc[2*n+1]
	if start < 0 {
		return ""
	}
	return text[start:end]
}

func known(s Schedule, hours, minutes string) Schedule {
	h, err := atoiOrZero(hours)
	if err != nil {
		return s
	}
	m, err := atoiOrZero(minutes)
	if err != nil {
		return s
	}
	if h > (math.MaxInt-m)/60 {
		return s
	}
	s.Minutes = h*60 + m
	s.Known = true
	return s
}

func atoiOrZero(digits string) (int, error) {
	if digits == "" {
		return 0, nil
	}
	return strconv.Atoi(digits)
}
