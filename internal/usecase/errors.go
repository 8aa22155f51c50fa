package usecase

import "errors"

const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeNotFound      = "NOT_FOUND"
	CodeNotConfigured = "NOT_CONFIGURED"
	CodePersistence   = "PERSISTENCE_ERROR"
	CodeIntegration   = "INTEGRATION_ERROR"
)

// DomainError is caused by the caller: bad input or a missing record.
type DomainError struct {
	Code    string
	Message string
	Fields  []ValidationError
}

func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap lets errors.Is(err, ErrNotFound) match missing-record errors.
func (e *DomainError) Unwrap() error {
	if e.Code == CodeNotFound {
		return ErrNotFound
	}
	return nil
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError is a server-side failure. Service names the adapter that
// failed, or is empty for storage failures.
type TechnicalError struct {
	Code    string
	Message string
	Service string
	Err     error
}

func (e *TechnicalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

var ErrNotFound = errors.New("not found")

// ErrNotConfigured is returned by the manual-trigger use cases when the
// adapter they exist to drive has no credentials.
var ErrNotConfigured = errors.New("integration not configured")

func notFound(what string) error {
	return &DomainError{Code: CodeNotFound, Message: what + " not found"}
}

func persistenceError(op string, err error) error {
	return &TechnicalError{Code: CodePersistence, Message: "failed to " + op, Err: err}
}

func integrationError(service, op string, err error) error {
	return &TechnicalError{Code: CodeIntegration, Message: "failed to " + op, Service: service, Err: err}
}
