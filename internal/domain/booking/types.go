package booking

// Status is the booking lifecycle state. Transitions are plain field updates;
// there is no slot locking or payment capture behind them.
type Status string

const (
	StatusBooked    Status = "BOOKED"
	StatusCheckedIn Status = "CHECKED_IN"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
	StatusNoShow    Status = "NO_SHOW"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusBooked, StatusCheckedIn, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	default:
		return false
	}
}

// CanTransitionTo encodes the lifecycle: everything leaves BOOKED, a checked-in
// round can only complete, and the remaining states are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusBooked:
		return next == StatusCheckedIn || next == StatusCancelled ||
			next == StatusCompleted || next == StatusNoShow
	case StatusCheckedIn:
		return next == StatusCompleted
	default:
		return false
	}
}
