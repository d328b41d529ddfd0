package order

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// CodeFromSequence formats a human-facing order code from a sequence number,
// e.g. 7 -> "ORD-007". The number must come from an atomic source (a database
// sequence); deriving it from a live row count races under concurrent
// creation. Codes wider than three digits render naturally ("ORD-1042").
func CodeFromSequence(n int64) (string, error) {
	if n <= 0 {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"code sequence",
			fmt.Errorf("%d is not greater than 0", n),
		)
	}
	return fmt.Sprintf("ORD-%03d", n), nil
}
