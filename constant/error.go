package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrConflict
	ErrNoValidFields
	ErrInvalidStatus
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:        "success",
	ErrInternal:       "error internal",
	ErrNotFound:       "data not found",
	ErrInvalidRequest: "invalid request",
	ErrConflict:       "value already exists",
	ErrNoValidFields:  "No valid fields provided for update",
	ErrInvalidStatus:  "invalid job status",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:        http.StatusOK,
	ErrInternal:       http.StatusInternalServerError,
	ErrNotFound:       http.StatusNotFound,
	ErrInvalidRequest: http.StatusBadRequest,
	ErrConflict:       http.StatusBadRequest,
	ErrNoValidFields:  http.StatusBadRequest,
	ErrInvalidStatus:  http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:        "0000",
	ErrInternal:       "0001",
	ErrNotFound:       "0002",
	ErrInvalidRequest: "0003",
	ErrConflict:       "0004",
	ErrNoValidFields:  "0005",
	ErrInvalidStatus:  "0006",
}
