package apperr

import "net/http"

// Kind enumerates every business error the API can return. Controllers map
// kinds to HTTP statuses; anything that is not an *Error surfaces as INTERNAL_ERROR.
type Kind string

const (
	Validation         Kind = "VALIDATION_ERROR"
	NotFound           Kind = "NOT_FOUND"
	Unauthorized       Kind = "UNAUTHORIZED"
	Forbidden          Kind = "FORBIDDEN"
	RestaurantMismatch Kind = "RESTAURANT_MISMATCH"
	MinimumOrderNotMet Kind = "MINIMUM_ORDER_NOT_MET"
	PromoInactive      Kind = "PROMO_INACTIVE"
	Internal           Kind = "INTERNAL_ERROR"
)

type Error struct {
	Kind    Kind           `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *Error) Error() string { return string(e.Kind) + ": " + e.Message }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = map[string]any{}
	}
	e.Details[key] = value
	return e
}

// From normalizes any error into an *Error, wrapping unknown ones as internal
// so raw driver messages never leak to clients.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	if ae, ok := err.(*Error); ok {
		return ae
	}
	return &Error{Kind: Internal, Message: "internal error"}
}

func (k Kind) HTTPStatus() int {
	switch k {
	case Validation, PromoInactive:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case RestaurantMismatch, MinimumOrderNotMet:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
