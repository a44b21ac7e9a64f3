package client

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned by Login when the server answers without
// a token, which is how the API signals a bad email/password pair.
var ErrInvalidCredentials = errors.New("invalid email or password")

// APIError is any non-2xx response from the course API. The console does not
// branch on individual status codes beyond success/failure; the status is
// kept for logging.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// IsAPIError reports whether err is a server-side rejection as opposed to a
// transport failure.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
