package order

// Status is the fulfillment state of a persisted order.
type Status string

const (
	// StatusPending is the unique initial state, assigned at checkout.
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	// StatusDelivered is terminal.
	StatusDelivered Status = "delivered"
	// StatusCancelled is terminal and reachable from any non-terminal state.
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string { return string(s) }

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no transition may leave s.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// forward is the single-step fulfillment path.
var forward = map[Status]Status{
	StatusPending:   StatusConfirmed,
	StatusConfirmed: StatusPreparing,
	StatusPreparing: StatusReady,
	StatusReady:     StatusDelivered,
}

// CanTransition reports whether from -> to is legal: exactly one step along
// the forward path, or cancellation from any non-terminal state.
func CanTransition(from, to Status) bool {
	if from.IsTerminal() {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	return forward[from] == to
}
