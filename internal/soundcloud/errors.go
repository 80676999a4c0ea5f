package soundcloud

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrRemoteAPI matches every [RemoteAPIError] with [errors.Is].
var ErrRemoteAPI = errors.New("soundcloud API request failed")

// maxMessageBytes caps how much of an error response body is kept in the message.
const maxMessageBytes = 512

// RemoteAPIError reports a failed call to the SoundCloud API.
//
// StatusCode is zero when the request never produced a response.
type RemoteAPIError struct {
	Method     string
	URL        string
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteAPIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Message)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.StatusCode, e.Message)
}

func (e *RemoteAPIError) Unwrap() error {
	return e.Err
}

func (e *RemoteAPIError) Is(target error) bool {
	return target == ErrRemoteAPI
}

// Transport reports whether the request failed before a response was received.
func (e *RemoteAPIError) Transport() bool {
	return e.StatusCode == 0
}

func transportError(method, url string, err error) *RemoteAPIError {
	return &RemoteAPIError{Method: method, URL: url, Message: err.Error(), Err: err}
}

func statusError(method, url string, status int, body []byte) *RemoteAPIError {
	kind := "client error"
	if status >= 500 {
		kind = "server error"
	}

	msg := fmt.Sprintf("%s: %s", kind, http.StatusText(status))
	if excerpt := truncate(body, maxMessageBytes); excerpt != "" {
		msg += ": " + excerpt
	}

	return &RemoteAPIError{Method: method, URL: url, StatusCode: status, Message: msg}
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + " (truncated...)"
}
