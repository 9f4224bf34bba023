package derrors

import "fmt"

// Kind is the explicit discriminant of an Error. The HTTP layer maps kinds
// to status codes with an exhaustive switch instead of type assertions on an
// error hierarchy.
type Kind string

const (
	// Domain kinds (client fault).
	KindNotFound        Kind = "deliveryman_not_found"
	KindInvalidEmail    Kind = "invalid_email"
	KindInvalidCpf      Kind = "invalid_cpf"
	KindInvalidPassword Kind = "invalid_password"

	// Application kind: a use-case precondition was violated.
	KindApplication Kind = "application"

	// Infrastructure kinds always wrap an underlying transport failure.
	KindDatabaseConnection Kind = "database_connection"
	KindDatabaseQuery      Kind = "database_query"
	KindPublish            Kind = "publish"
)

// Error is the single error variant used across the core.
type Error struct {
	Kind    Kind
	Message string
	Err     error // underlying cause, nil for domain kinds
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound reports that no delivery person exists for the given id.
func NotFound(id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("delivery person with ID %s not found", id)}
}

func InvalidEmail(email string) *Error {
	return &Error{Kind: KindInvalidEmail, Message: fmt.Sprintf("email %s is invalid", email)}
}

func InvalidCpf(cpf string) *Error {
	return &Error{Kind: KindInvalidCpf, Message: fmt.Sprintf("CPF %s is invalid", cpf)}
}

func InvalidPassword() *Error {
	return &Error{Kind: KindInvalidPassword, Message: "password must be at least 6 characters long"}
}

func Application(msg string) *Error {
	return &Error{Kind: KindApplication, Message: msg}
}

func DatabaseConnection(err error) *Error {
	return &Error{Kind: KindDatabaseConnection, Message: "database connection error", Err: err}
}

// DatabaseQuery wraps a backend failure for one repository operation, so raw
// backend error text never reaches the domain layer uninterpreted.
func DatabaseQuery(operation string, err error) *Error {
	return &Error{Kind: KindDatabaseQuery, Message: fmt.Sprintf("database error during %s", operation), Err: err}
}

func Publish(operation string, err error) *Error {
	return &Error{Kind: KindPublish, Message: fmt.Sprintf("failed to publish %s", operation), Err: err}
}

// KindOf extracts the Kind of err, walking wrapped causes. The second return
// is false when err carries no *Error anywhere in its chain.
func KindOf(err error) (Kind, bool) {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return "", false
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}
