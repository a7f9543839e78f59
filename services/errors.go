package services

import (
	"errors"
	"fmt"
)

// Stable error taxonomy of the admission and voting services. Handlers
// translate these into HTTP status codes; raw storage driver errors never
// cross the service boundary.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrQuotaExceeded      = errors.New("submission quota exceeded")
	ErrDuplicateTitle     = errors.New("duplicate title")
	ErrAlreadyVoted       = errors.New("already voted for this photo")
	ErrVoteLimitReached   = errors.New("vote limit reached")
	ErrStorageWriteFailed = errors.New("failed to store file")
	ErrPersistenceFailed  = errors.New("failed to persist submission")
	ErrInvalidState       = errors.New("invalid state for this operation")
)

// ValidationError lists every violated constraint keyed by field name
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// ErrorCode returns the stable machine-readable code for a service error
func ErrorCode(err error) string {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrForbidden):
		return "FORBIDDEN"
	case errors.Is(err, ErrQuotaExceeded):
		return "QUOTA_EXCEEDED"
	case errors.Is(err, ErrDuplicateTitle):
		return "DUPLICATE_TITLE"
	case errors.Is(err, ErrAlreadyVoted):
		return "ALREADY_VOTED"
	case errors.Is(err, ErrVoteLimitReached):
		return "LIMIT_REACHED"
	case errors.Is(err, ErrStorageWriteFailed):
		return "STORAGE_WRITE_FAILED"
	case errors.Is(err, ErrInvalidState):
		return "INVALID_STATE"
	default:
		return "INTERNAL_ERROR"
	}
}
