package library

import "errors"

var (
	ErrUnknownBook     = errors.New("unknown book")
	ErrUnknownMember   = errors.New("unknown member")
	ErrUnknownActivity = errors.New("unknown reading activity")
	ErrAlreadyReturned = errors.New("reading activity is already closed")
	ErrMemberInactive  = errors.New("member is not in the library")
	ErrNotInQueue      = errors.New("member has no pending reservation for this book")
	ErrBookUnavailable = errors.New("no available copies")
	ErrInvalidDuration = errors.New("duration must be at least one hour")
)

// IsRecoverable reports whether err belongs to the domain taxonomy that is
// surfaced to callers as a structured response rather than a transport
// failure.
func IsRecoverable(err error) bool {
	for _, domainErr := range []error{
		ErrUnknownBook,
		ErrUnknownMember,
		ErrUnknownActivity,
		ErrAlreadyReturned,
		ErrMemberInactive,
		ErrNotInQueue,
		ErrBookUnavailable,
		ErrInvalidDuration,
	} {
		if errors.Is(err, domainErr) {
			return true
		}
	}
	return false
}
