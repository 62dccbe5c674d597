package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrStore
	ErrConfiguration
	ErrLocationNotSet
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:          "success",
	ErrInternal:         "error internal",
	ErrNotFound:         "data not found",
	ErrInvalidRequest:   "invalid request",
	ErrUnauthorize:      "unauthorize request",
	ErrCredentialExists: "phone number already registered",
	ErrStore:            "store unavailable",
	ErrConfiguration:    "catalog or record type mismatch",
	ErrLocationNotSet:   "user location not set",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:          http.StatusOK,
	ErrInternal:         http.StatusInternalServerError,
	ErrNotFound:         http.StatusNotFound,
	ErrInvalidRequest:   http.StatusBadRequest,
	ErrUnauthorize:      http.StatusUnauthorized,
	ErrCredentialExists: http.StatusBadRequest,
	ErrStore:            http.StatusServiceUnavailable,
	ErrConfiguration:    http.StatusInternalServerError,
	ErrLocationNotSet:   http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:          "0000",
	ErrInternal:         "0001",
	ErrNotFound:         "0002",
	ErrInvalidRequest:   "0003",
	ErrUnauthorize:      "0004",
	ErrCredentialExists: "0005",
	ErrStore:            "0006",
	ErrConfiguration:    "0007",
	ErrLocationNotSet:   "0008",
}
