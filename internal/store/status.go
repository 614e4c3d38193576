package store

// Phase is the lifecycle marker of the most recently invoked operation
// on a resource.
type Phase int

const (
	// Idle means no operation has run since creation or the last reset.
	Idle Phase = iota
	// Pending means an operation has been invoked and has not settled.
	Pending
	// Succeeded means the last settled operation applied its transition.
	Succeeded
	// Failed means the last settled operation left the data untouched.
	Failed
)

// String returns the string representation of the Phase.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Status is the shared request lifecycle record of a resource. Message is
// populated only when Phase is Failed.
type Status struct {
	Phase   Phase
	Message string
}
