package errors

import (
	"errors"
	"net/http"
)

// ErrNotFound is returned when a lookup by primary key yields no row.
var ErrNotFound = errors.New("record not found")

// ErrShortIDTaken is returned when an insert hits an existing short_id.
var ErrShortIDTaken = errors.New("short id already taken")

// ErrShortCodeGenerationFailed is returned when a bounded generator runs out of attempts.
var ErrShortCodeGenerationFailed = errors.New("failed to generate unique short code")

// Messages carried by the 404 responses of each endpoint.
const (
	DetailShortURLNotFound   = "Short URL not found"
	DetailTaskNotFound       = "Task not found"
	DetailTaskUpdateNotFound = "Task for update not found"
	DetailTaskDeleteNotFound = "Task for delete not found"
)

// DetailError is an error surfaced to HTTP clients as {"detail": Detail}.
type DetailError struct {
	Status int
	Detail string
}

func (e *DetailError) Error() string {
	return e.Detail
}

// NotFound builds the 404 error of an endpoint.
func NotFound(detail string) *DetailError {
	return &DetailError{Status: http.StatusNotFound, Detail: detail}
}

// IsNotFound reports whether err is a not-found condition.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
