package apperrors

import "net/http"

// Error is a domain error carrying the HTTP status it should be served with.
// Handlers serialize it once at the boundary as {"detail": message}.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string { return e.Detail }

func New(status int, detail string) *Error {
	return &Error{Status: status, Detail: detail}
}

var (
	ErrTokenExpired                  = New(http.StatusUnauthorized, "Token expired")
	ErrTokenValidation               = New(http.StatusForbidden, "Could not validate token")
	ErrUserNotFound                  = New(http.StatusNotFound, "Could not find user")
	ErrDeviceNotFound                = New(http.StatusNotFound, "Could not find device")
	ErrUserAlreadyExists             = New(http.StatusBadRequest, "User already exists")
	ErrIncorrectEmailOrPassword      = New(http.StatusBadRequest, "Incorrect email or password")
	ErrSerialNumberNotFound          = New(http.StatusBadRequest, "Serial number not found")
	ErrSerialNumberAlreadyRegistered = New(http.StatusBadRequest, "Serial number already registered")
	ErrNotAuthorized                 = New(http.StatusForbidden, "Notification does not belong to user")
	ErrDeviceNotConnected            = New(http.StatusBadRequest, "Device is not connected to server")
	ErrWeatherLangSupport            = New(http.StatusNotFound, "Only supports `en` or `ja`")
	ErrUpstreamRequest               = New(http.StatusInternalServerError, "Failed to request upstream API")
)
