package order

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Priority represents the urgency of an order.
// It is a value object with a closed set of valid values.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// PriorityNormal is the default urgency.
	PriorityNormal

	// PriorityUrgent marks orders the client wants fast-tracked.
	PriorityUrgent

	// PriorityCritical marks orders that jump every queue.
	PriorityCritical
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown:  "UNKNOWN",
		PriorityNormal:   "NORMAL",
		PriorityUrgent:   "URGENT",
		PriorityCritical: "CRITICAL",
	}
}

// PriorityFromString parses a priority from its wire representation.
// Accepts the enum names ("NORMAL", "URGENT", "CRITICAL") as well as the
// title-case labels used by older clients ("Normal", "Urgent", "Critical").
func PriorityFromString(s string) (Priority, error) {
	switch s {
	case "NORMAL", "Normal":
		return PriorityNormal, nil
	case "URGENT", "Urgent":
		return PriorityUrgent, nil
	case "CRITICAL", "Critical":
		return PriorityCritical, nil
	default:
		return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
			"priority",
			fmt.Errorf("%q is not a valid priority", s),
		)
	}
}

// Validate checks if the Priority value is valid.
// PriorityUnknown and out-of-range values are invalid.
func (p Priority) Validate() error {
	if p != PriorityNormal && p != PriorityUrgent && p != PriorityCritical {
		return errs.NewValueIsInvalidErrorWithCause(
			"priority is invalid",
			fmt.Errorf("%d is not a valid priority", p),
		)
	}
	return nil
}

// String returns the wire name of the priority.
// Implements fmt.Stringer and is safe to call on any Priority value.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}
