package domain

import "fmt"

// ErrorCode is one of the fixed codes returned to API clients.
type ErrorCode string

const (
	CodeInvalidURL             ErrorCode = "invalid-url"
	CodeUnauthorized           ErrorCode = "unauthorized"
	CodeInvalidRequest         ErrorCode = "invalid-request"
	CodeEmailAlreadyRegistered ErrorCode = "email-already-registered"
	CodeNotFound               ErrorCode = "not-found"
	CodeInvalidPayload         ErrorCode = "invalid-payload"
)

// Error is a client-facing failure. Message is for humans only.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

var (
	ErrUnauthenticated  = &Error{Code: CodeUnauthorized, Message: "You are not authorized to make this request"}
	ErrMissingHeaders   = &Error{Code: CodeUnauthorized, Message: "Please provide proper headers"}
	ErrNotOwner         = &Error{Code: CodeUnauthorized, Message: "Invalid permissions"}
	ErrInvalidSession   = &Error{Code: CodeUnauthorized, Message: "Session token is invalid or already used"}
	ErrIdentityMismatch = &Error{Code: CodeInvalidRequest, Message: "You are not authorized"}
	ErrEmailDomain      = &Error{Code: CodeInvalidRequest, Message: "Your email domain is not accepted by the university"}
	ErrEmailRegistered  = &Error{Code: CodeEmailAlreadyRegistered, Message: "Email is already registered"}
	ErrNotFound         = &Error{Code: CodeNotFound, Message: "No such record found"}
	ErrUnknownUniv      = &Error{Code: CodeNotFound, Message: "Provided university is not registered in our system"}
	ErrUnknownRoute     = &Error{Code: CodeInvalidURL, Message: "No such endpoint"}
	ErrEmptyPayload     = &Error{Code: CodeInvalidPayload, Message: "Please provide data to process"}
)

// InvalidPayload builds an invalid-payload error with a field-specific message.
func InvalidPayload(msg string) *Error {
	return &Error{Code: CodeInvalidPayload, Message: msg}
}

// ProviderError wraps a failure returned by the identity provider. Its detail
// is surfaced to the client as-is.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
