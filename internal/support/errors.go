package support

import (
	"fmt"
)

// PermissionDeniedError reports a write that was attempted without the
// explicit confirmation flag. The underlying store is never contacted.
type PermissionDeniedError struct {
	Op string
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("%s requires confirm_post=true; refusing to write without explicit confirmation", e.Op)
}

// TransportError wraps a failed call to the underlying ticket store,
// naming the operation and the ticket involved.
type TransportError struct {
	Op       string
	TicketID int64
	Err      error
}

func (e *TransportError) Error() string {
	if e.TicketID != 0 {
		return fmt.Sprintf("%s: ticket %d: %v", e.Op, e.TicketID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ScoringError reports a priority computation that could not complete
// because fetching the ticket or its comments failed. No partial score is
// ever produced.
type ScoringError struct {
	TicketID int64
	Err      error
}

func (e *ScoringError) Error() string {
	return fmt.Sprintf("failed to score ticket %d: %v", e.TicketID, e.Err)
}

func (e *ScoringError) Unwrap() error {
	return e.Err
}
