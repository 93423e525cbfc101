package checkout

// Status is the submission state of a session's checkout.
type Status string

const (
	StatusIdle       Status = "IDLE"
	StatusSubmitting Status = "SUBMITTING"
	StatusCompleted  Status = "COMPLETED"
)

// String representation (for logging)
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo reports whether the submission machine may move from
// s to next. Submitting may fall back to Idle so a failed payment or
// persist leaves the session able to retry; Completed resets to Idle
// when the session starts a new checkout.
func CanTransitionTo(s, next Status) bool {
	switch s {
	case StatusIdle:
		return next == StatusSubmitting
	case StatusSubmitting:
		return next == StatusCompleted || next == StatusIdle
	case StatusCompleted:
		return next == StatusIdle
	}
	return false
}
