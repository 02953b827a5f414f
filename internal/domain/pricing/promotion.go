package pricing

import (
	"errors"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("promotion start date must not be after end date")
	ErrInvalidStacking  = errors.New("invalid stacking mode")
)

// Promotion is a date-ranged, prioritized container of bands. Bands have no
// independent lifecycle; deleting the promotion deletes them.
type Promotion struct {
	ID          int64
	Code        string
	Name        string
	Description *string
	StartDate   time.Time
	EndDate     time.Time
	IsActive    bool
	Priority    int32
	Stacking    Stacking
}

func (p Promotion) Validate() error {
	if dateOnly(p.StartDate).After(dateOnly(p.EndDate)) {
		return ErrInvalidDateRange
	}
	if !p.Stacking.IsValid() {
		return ErrInvalidStacking
	}
	return nil
}

// InScopeOn reports whether the promotion applies to a request date. The
// range is inclusive on both ends and compared at date granularity.
func (p Promotion) InScopeOn(date time.Time) bool {
	if !p.IsActive {
		return false
	}
	d := dateOnly(date)
	return !d.Before(dateOnly(p.StartDate)) && !d.After(dateOnly(p.EndDate))
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
