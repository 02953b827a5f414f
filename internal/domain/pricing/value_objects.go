package pricing

import (
	"errors"
	"regexp"
	"time"
)

var (
	ErrInvalidTimeOfDay  = errors.New("invalid time of day, expected HH:mm")
	ErrInvalidTimeWindow = errors.New("time window start must not be after end")
	ErrInvalidDowMask    = errors.New("day-of-week mask out of range")
)

var timeOfDayRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// TimeOfDay is a zero-padded "HH:mm" string. All values share the format, so
// lexicographic comparison is exact time-of-day comparison.
type TimeOfDay string

func NewTimeOfDay(s string) (TimeOfDay, error) {
	if !timeOfDayRegex.MatchString(s) {
		return "", ErrInvalidTimeOfDay
	}
	return TimeOfDay(s), nil
}

func (t TimeOfDay) String() string {
	return string(t)
}

func (t TimeOfDay) IsValid() bool {
	return timeOfDayRegex.MatchString(string(t))
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return string(t) < string(other)
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return string(t) > string(other)
}

// TimeWindow is an inclusive [From, To] time-of-day range.
type TimeWindow struct {
	From TimeOfDay
	To   TimeOfDay
}

func NewTimeWindow(from, to string) (TimeWindow, error) {
	f, err := NewTimeOfDay(from)
	if err != nil {
		return TimeWindow{}, err
	}
	t, err := NewTimeOfDay(to)
	if err != nil {
		return TimeWindow{}, err
	}
	if f.After(t) {
		return TimeWindow{}, ErrInvalidTimeWindow
	}
	return TimeWindow{From: f, To: t}, nil
}

func (w TimeWindow) Validate() error {
	if !w.From.IsValid() || !w.To.IsValid() {
		return ErrInvalidTimeOfDay
	}
	if w.From.After(w.To) {
		return ErrInvalidTimeWindow
	}
	return nil
}

// Contains reports whether t falls inside the window, boundaries included.
func (w TimeWindow) Contains(t TimeOfDay) bool {
	return !t.Before(w.From) && !t.After(w.To)
}

// DowMask encodes eligible days of week as bits, bit 1<<dow with
// 0=Sunday..6=Saturday. Zero means "unset"; callers fall back to DayGroup.
type DowMask uint8

const DowMaskAll DowMask = 0x7F

func NewDowMask(days ...time.Weekday) DowMask {
	var m DowMask
	for _, d := range days {
		m |= 1 << uint(d)
	}
	return m
}

func (m DowMask) Has(d time.Weekday) bool {
	return m&(1<<uint(d)) != 0
}

func (m DowMask) IsZero() bool {
	return m == 0
}

func (m DowMask) Validate() error {
	if m > DowMaskAll {
		return ErrInvalidDowMask
	}
	return nil
}

// IsRestricted reports whether the mask excludes at least one day.
func (m DowMask) IsRestricted() bool {
	return m != 0 && m != DowMaskAll
}
