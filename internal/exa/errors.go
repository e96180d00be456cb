package exa

import (
	"fmt"
	"strconv"
)

// Error is a failed outbound call. StatusCode is zero when the failure
// happened before an HTTP status was received.
type Error struct {
	StatusCode int
	Message    string
	Timeout    bool
}

func (e *Error) Error() string {
	return fmt.Sprintf("exa api error (%s): %s", e.Status(), e.Message)
}

// Status renders the status code, or "unknown".
func (e *Error) Status() string {
	if e.StatusCode == 0 {
		return "unknown"
	}
	return strconv.Itoa(e.StatusCode)
}
