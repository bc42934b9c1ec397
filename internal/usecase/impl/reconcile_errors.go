package impl

import (
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/errors"
	"servicehub/internal/usecase"
)

// stepError tags the cause of a failed reconciliation step with its failure kind.
// errors.Is matches both the kind sentinel and anything in the cause chain.
type stepError struct {
	kind  *domainerrors.BaseError
	cause error
}

func newStepError(kind *domainerrors.BaseError, cause error) error {
	return &stepError{kind: kind, cause: cause}
}

func (e *stepError) Error() string {
	return e.kind.Message() + ": " + e.cause.Error()
}

func (e *stepError) Unwrap() []error {
	return []error{e.kind, e.cause}
}

// HTTPCode returns the HTTP status code of the failure kind.
func (e *stepError) HTTPCode() int { return e.kind.HTTPCode() }

// ErrorCode returns the business error code of the failure kind.
func (e *stepError) ErrorCode() string { return e.kind.ErrorCode() }

// Message returns the user-friendly message of the failure kind.
func (e *stepError) Message() string { return e.kind.Message() }

// Details returns the underlying cause.
func (e *stepError) Details() string { return e.cause.Error() }

func classifyFailure(err error) usecase.FailureKind {
	switch {
	case errors.Is(err, domainerrors.ErrIdentityResolutionFailed):
		return usecase.FailureKindIdentityResolution
	case errors.Is(err, domainerrors.ErrProfileValidationFailed):
		return usecase.FailureKindProfileValidation
	case errors.Is(err, domainerrors.ErrProfilePersistenceFailed):
		return usecase.FailureKindProfilePersistence
	case errors.Is(err, domainerrors.ErrSourceRecordAccessFailed):
		return usecase.FailureKindSourceRecordAccess
	default:
		return usecase.FailureKindUnclassifiedFailure
	}
}

func failureFields(err error) []string {
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Fields()
	}

	return nil
}
