package apiclient

import (
	"errors"
	"fmt"
)

// Kind classifies a failed backend call.
type Kind int

const (
	KindInvalidResponse Kind = iota + 1
	KindInvalidData
	KindUnauthorized
	KindNotFound
	KindServerError
)

func (k Kind) String() string {
	switch k {
	case KindInvalidResponse:
		return "invalid_response"
	case KindInvalidData:
		return "invalid_data"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindServerError:
		return "server_error"
	}
	return "unknown"
}

// Error is returned for every classified failure. Status is the HTTP status
// when one was received; Detail is the server-provided message, if any.
type Error struct {
	Kind   Kind
	Status int
	Detail string
	Err    error
}

var (
	ErrInvalidResponse = &Error{Kind: KindInvalidResponse}
	ErrInvalidData     = &Error{Kind: KindInvalidData}
	ErrUnauthorized    = &Error{Kind: KindUnauthorized}
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrServerError     = &Error{Kind: KindServerError}
)

func newError(kind Kind, status int) *Error {
	return &Error{Kind: kind, Status: status}
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on kind, and on status when the target carries one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Status == 0 || t.Status == e.Status)
}

// Message is the French text shown to the user.
func (e *Error) Message() string {
	var msg string
	switch e.Kind {
	case KindInvalidData:
		msg = "Les données envoyées ou reçues sont invalides."
	case KindUnauthorized:
		msg = "Session expirée ou accès refusé. Veuillez vous reconnecter."
	case KindNotFound:
		msg = "Élément introuvable."
	case KindServerError:
		msg = fmt.Sprintf("Erreur serveur (%d). Veuillez réessayer plus tard.", e.Status)
	default:
		msg = "Réponse du serveur invalide."
	}
	if e.Detail != "" {
		msg += " " + e.Detail
	}
	return msg
}

// KindOf returns the kind of a classified error, 0 otherwise.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return 0
}

// UserMessage renders err for display.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	return "Impossible de joindre le serveur : " + err.Error()
}
