package reservation

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusRejected  Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusRejected:
		return true
	default:
		return false
	}
}

// BlocksCalendar reports whether a reservation in this status occupies its interval.
func (s Status) BlocksCalendar() bool {
	return s == StatusPending || s == StatusConfirmed
}

// BlockingStatuses lists the statuses that occupy a listing's calendar.
func BlockingStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed}
}
