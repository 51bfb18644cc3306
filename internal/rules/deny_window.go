package rules

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DenyWindow blocks dispatch while the wall clock in the configured timezone
// falls inside a recurring weekly blackout. Windows whose end time is not
// after their start time span midnight into the following day.
type DenyWindow struct {
	Name      string
	Timezone  string
	Days      []string // lowercase weekday names
	StartTime string   // "HH:MM"
	EndTime   string   // "HH:MM"
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Evaluate denies with retryAt = window end when now falls inside the window.
// A misconfigured window (bad timezone, unparsable time, unknown day) fails
// closed: dispatch is denied with the configuration error as the reason.
func (w DenyWindow) Evaluate(now time.Time) Result {
	loc, err := time.LoadLocation(w.Timezone)
	if err != nil {
		return Denied(fmt.Sprintf("deny window %q has invalid timezone %q", w.Name, w.Timezone))
	}
	startMin, err := parseClock(w.StartTime)
	if err != nil {
		return Denied(fmt.Sprintf("deny window %q has invalid start time: %v", w.Name, err))
	}
	endMin, err := parseClock(w.EndTime)
	if err != nil {
		return Denied(fmt.Sprintf("deny window %q has invalid end time: %v", w.Name, err))
	}

	local := now.In(loc)
	// check today's window and, for overnight windows, the one that started
	// yesterday
	for _, dayOffset := range []int{0, -1} {
		day := local.AddDate(0, 0, dayOffset)
		if !w.appliesOn(day.Weekday()) {
			continue
		}
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc).Add(time.Duration(startMin) * time.Minute)
		end := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc).Add(time.Duration(endMin) * time.Minute)
		if endMin <= startMin {
			end = end.AddDate(0, 0, 1)
		}
		if dayOffset == -1 && endMin > startMin {
			// same-day window from yesterday ended before midnight
			continue
		}
		if !local.Before(start) && local.Before(end) {
			reason := fmt.Sprintf("inside deny window %q (%s-%s %s)", w.Name, w.StartTime, w.EndTime, w.Timezone)
			return DeniedUntil(reason, end)
		}
	}
	return Allowed()
}

func (w DenyWindow) appliesOn(day time.Weekday) bool {
	for _, name := range w.Days {
		if wd, ok := weekdayNames[strings.ToLower(name)]; ok && wd == day {
			return true
		}
	}
	return false
}

func parseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected HH:MM, got %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour*60 + minute, nil
}
