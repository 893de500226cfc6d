package details

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDetail agrupa todas las ValidationError (errors.Is).
	ErrInvalidDetail = errors.New("invalid record detail")

	// Violaciones de contrato: bugs del caller, no resultados de negocio.
	ErrTypeMismatch         = errors.New("record detail type mismatch")
	ErrUnsupportedOperation = errors.New("unsupported operation")

	ErrInvalidTransition = errors.New("invalid status transition")

	ErrUnknownRecordType = errors.New("unknown record type")
	ErrUnknownStatus     = errors.New("unknown record status")
	ErrUnknownAction     = errors.New("unknown record action")
)

// ValidationError indica el primer invariante violado por un detalle.
type ValidationError struct {
	Kind   MedicalRecordType
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s detail: %s %s", e.Kind, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidDetail }

func invalid(kind MedicalRecordType, field, reason string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Reason: reason}
}

// TransitionError: la acción no está definida para el estado actual de ese tipo.
type TransitionError struct {
	Kind   MedicalRecordType
	From   MedicalRecordStatus
	Action RecordAction
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s a %s record that is %s", e.Action, e.Kind, e.From)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

func typeMismatch(want MedicalRecordType, got Detail) error {
	if got == nil {
		return fmt.Errorf("%w: cannot compare %s with <nil>", ErrTypeMismatch, want)
	}
	return fmt.Errorf("%w: cannot compare %s with %s", ErrTypeMismatch, want, got.Kind())
}
