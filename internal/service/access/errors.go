package access

import (
	"fmt"
	"net/http"

	"itinerary/internal/domain"
	"itinerary/internal/domain/models"
)

// Reason classifies why an authorization attempt did not allow the caller.
type Reason int

const (
	ReasonInvalidInput Reason = iota + 1
	ReasonNotFound
	ReasonForbidden
	ReasonRepositoryFailure
)

func (r Reason) String() string {
	switch r {
	case ReasonInvalidInput:
		return "invalid_input"
	case ReasonNotFound:
		return "not_found"
	case ReasonForbidden:
		return "forbidden"
	case ReasonRepositoryFailure:
		return "repository_failure"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Caller-facing messages for the expected outcomes
const (
	MessageInvalidID = "invalid id"
	MessageNotFound  = "id does not exist"
	MessageForbidden = "you do not have permission"
)

// Error is returned by Authorizer.Authorize for every outcome other than allow.
//
// It matches domain.ErrValidation, domain.ErrNotFound and domain.ErrForbidden
// through errors.Is. A repository failure unwraps to the underlying fault and
// reports its message unchanged.
type Error struct {
	Reason Reason
	Kind   models.ResourceKind
	RawID  string
	Err    error
}

func (e *Error) Error() string {
	if e.Reason == ReasonRepositoryFailure && e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s %q: %s", e.Kind, e.RawID, e.Message())
}

// Message is the text shown to the caller
func (e *Error) Message() string {
	switch e.Reason {
	case ReasonInvalidInput:
		return MessageInvalidID
	case ReasonNotFound:
		return MessageNotFound
	case ReasonForbidden:
		return MessageForbidden
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "internal server error"
	}
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	switch e.Reason {
	case ReasonInvalidInput:
		return target == domain.ErrValidation
	case ReasonNotFound:
		return target == domain.ErrNotFound
	case ReasonForbidden:
		return target == domain.ErrForbidden
	}
	return false
}

// StatusCode implements domain.HTTPError
func (e *Error) StatusCode() int {
	switch e.Reason {
	case ReasonInvalidInput:
		return http.StatusBadRequest
	case ReasonNotFound:
		return http.StatusNotFound
	case ReasonForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
