// Package policy implements the reservation availability and policy engine:
// slot/date parsing, time-based policy gates, capacity and waitlist
// arithmetic, and slot status resolution. Everything here is pure and
// side-effect free; wall-clock time is always an explicit parameter so a
// caller can sample it once per decision.
package policy

import (
	"strconv"
	"strings"
	"time"
)

const (
	// MaxWaitingCount is the number of waitlist spots on top of a court's capacity.
	MaxWaitingCount = 10
	// CancelDeadlineHours is how long before game start cancellation closes.
	CancelDeadlineHours = 2
	// DefaultCapacity is assumed when a court has no valid capacity.
	DefaultCapacity = 6

	// SlotSeparator splits a time slot label into start and end, e.g. "08:00~10:00".
	SlotSeparator = "~"
	// DateLayout is the calendar date format used throughout the club API.
	DateLayout = "2006-01-02"
)

// SlotStart is the parsed wall-clock start of a time slot label.
type SlotStart struct {
	Hours   int
	Minutes int
}

// ParseSlotStart parses the start time out of a slot label like "08:00~10:00".
// Only the start segment is load-bearing. Value ranges are not validated;
// malformed labels report ok=false so gates can fail open.
func ParseSlotStart(timeSlot string) (SlotStart, bool) {
	start := strings.TrimSpace(strings.Split(timeSlot, SlotSeparator)[0])
	parts := strings.Split(start, ":")
	if len(parts) < 2 {
		return SlotStart{}, false
	}

	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return SlotStart{}, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return SlotStart{}, false
	}

	return SlotStart{Hours: h, Minutes: m}, true
}

// ToLocalTime combines a "YYYY-MM-DD" date string with an hour and minute
// into a local timestamp. Out-of-range components normalize the way calendar
// construction does (e.g. minute 90 rolls into the next hour). Malformed
// dates report ok=false.
func ToLocalTime(gameDate string, hours, minutes int) (time.Time, bool) {
	parts := strings.Split(gameDate, "-")
	if len(parts) < 3 {
		return time.Time{}, false
	}

	y, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, false
	}
	mon, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, false
	}
	d, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return time.Time{}, false
	}

	return time.Date(y, time.Month(mon), d, hours, minutes, 0, 0, time.Local), true
}

// SlotStartTime resolves a (timeSlot, gameDate) pair to its concrete local
// start timestamp.
func SlotStartTime(timeSlot, gameDate string) (time.Time, bool) {
	start, ok := ParseSlotStart(timeSlot)
	if !ok {
		return time.Time{}, false
	}
	return ToLocalTime(gameDate, start.Hours, start.Minutes)
}
