package errors

import (
	"net/http"
	"strings"

	"catalog/internal/errors"
)

// Kind groups application errors by how callers should react to them.
type Kind int

const (
	// KindInternal covers unexpected failures.
	KindInternal Kind = iota
	// KindInvalidArgument covers malformed or missing input, one error per field.
	KindInvalidArgument
	// KindNotFound covers absent or inactive entities.
	KindNotFound
	// KindConflict covers uniqueness violations.
	KindConflict
	// KindAuthFailure covers rejected credentials and sessions.
	KindAuthFailure
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindAuthFailure:
		return "auth_failure"
	default:
		return "internal"
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Error category
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the error category
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details. The copy still matches the
// original with errors.Is.
func (e *BaseError) WithDetails(details string) error {
	return &detailedError{BaseError: e, details: details}
}

type detailedError struct {
	*BaseError
	details string
}

func (e *detailedError) Details() string {
	return e.details
}

func (e *detailedError) Unwrap() error {
	return e.BaseError
}

func invalidArgument(code, message string) *BaseError {
	return NewBaseError(KindInvalidArgument, http.StatusBadRequest, code, message, "")
}

func notFound(code, message string) *BaseError {
	return NewBaseError(KindNotFound, http.StatusNotFound, code, message, "")
}

func authFailure(httpCode int, code, message string) *BaseError {
	return NewBaseError(KindAuthFailure, httpCode, code, message, "")
}

// Predefined error types
var (
	// Field validation errors
	ErrInvalidIdentifier  = invalidArgument("INVALID_IDENTIFIER", "Invalid identifier")
	ErrInvalidFirstName   = invalidArgument("INVALID_FIRST_NAME", "Invalid first name")
	ErrInvalidLastName    = invalidArgument("INVALID_LAST_NAME", "Invalid last name")
	ErrInvalidAlias       = invalidArgument("INVALID_ALIAS", "Invalid alias")
	ErrInvalidTitle       = invalidArgument("INVALID_TITLE", "Invalid title")
	ErrInvalidReleaseDate = invalidArgument("INVALID_RELEASE_DATE", "Invalid release date")
	ErrInvalidUsername    = invalidArgument("INVALID_USERNAME", "Invalid username")
	ErrInvalidPassword    = invalidArgument("INVALID_PASSWORD", "Invalid password")
	ErrInvalidPage        = invalidArgument("INVALID_PAGE", "Invalid page")
	ErrInvalidLimit       = invalidArgument("INVALID_LIMIT", "Invalid limit")
	ErrInvalidRole        = invalidArgument("INVALID_ROLE", "Invalid role")

	// Not found errors
	ErrPersonNotFound = notFound("PERSON_NOT_FOUND", "Person not found")
	ErrMovieNotFound  = notFound("MOVIE_NOT_FOUND", "Movie not found")
	ErrUserNotFound   = notFound("USER_NOT_FOUND", "User not found")

	// ErrAliasTaken is matched by every AliasTakenError.
	ErrAliasTaken = NewBaseError(KindConflict, http.StatusConflict, "ALIAS_TAKEN", "Alias already taken", "")

	// Authentication errors
	ErrWrongPassword   = authFailure(http.StatusUnauthorized, "WRONG_PASSWORD", "Wrong password")
	ErrInactiveUser    = authFailure(http.StatusForbidden, "INACTIVE_USER", "User is inactive")
	ErrUnauthenticated = authFailure(http.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// AliasTakenError reports alias values already held by another person.
type AliasTakenError struct {
	Values []string
}

// NewAliasTakenError creates an AliasTakenError for values.
func NewAliasTakenError(values []string) *AliasTakenError {
	return &AliasTakenError{Values: values}
}

// Error implements the error interface
func (e *AliasTakenError) Error() string {
	return ErrAliasTaken.Message() + ": " + strings.Join(e.Values, ", ")
}

// Is lets errors.Is(err, ErrAliasTaken) match.
func (e *AliasTakenError) Is(target error) bool {
	return target == ErrAliasTaken
}

// Kind returns KindConflict.
func (e *AliasTakenError) Kind() Kind {
	return KindConflict
}

// HTTPCode returns the HTTP status code
func (e *AliasTakenError) HTTPCode() int {
	return ErrAliasTaken.HTTPCode()
}

// ErrorCode returns the business error code
func (e *AliasTakenError) ErrorCode() string {
	return ErrAliasTaken.ErrorCode()
}

// Message returns the user-friendly error message
func (e *AliasTakenError) Message() string {
	return ErrAliasTaken.Message()
}

// Details lists the conflicting values.
func (e *AliasTakenError) Details() string {
	return strings.Join(e.Values, ", ")
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap returns the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns KindInternal.
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// KindOf returns the kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	if appErr, ok := errors.AsType[AppError](err); ok {
		return appErr.Kind()
	}

	return KindInternal
}
