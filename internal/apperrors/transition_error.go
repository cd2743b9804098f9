package apperrors

import (
	"fmt"
	"strings"
)

// TransitionError reports an illegal document status transition. It carries
// the attempted edge plus the statuses that are reachable from the current
// one, so callers can render a precise message.
type TransitionError struct {
	DocType   string
	From      string
	To        string
	ValidNext []string
}

func (e *TransitionError) Error() string {
	if len(e.ValidNext) == 0 {
		return fmt.Sprintf("invalid %s status transition from %s to %s: %s is terminal", strings.ToLower(e.DocType), e.From, e.To, e.From)
	}
	return fmt.Sprintf("invalid %s status transition from %s to %s: valid next statuses are %s", strings.ToLower(e.DocType), e.From, e.To, strings.Join(e.ValidNext, ", "))
}

// Unwrap lets errors.Is route TransitionError through the validation bucket.
func (e *TransitionError) Unwrap() error {
	return ErrValidation
}
