// package testing contains shared testing utilities
package testing

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"os"
	"sync"
	"testing"
)

// RecordedRequest is a request captured by [RecordingRoundTripper] with its body read out.
type RecordedRequest struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// RecordingRoundTripper records every request and answers with a canned response.
//
// Requests never leave the process, so tests can assert on the real SoundCloud URLs.
type RecordingRoundTripper struct {
	StatusCode int
	Body       string
	Header     http.Header
	Err        error

	mu       sync.Mutex
	requests []RecordedRequest
}

// NewRecordingRoundTripper answers every request with status and body.
func NewRecordingRoundTripper(status int, body string) *RecordingRoundTripper {
	return &RecordingRoundTripper{
		StatusCode: status,
		Body:       body,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func (m *RecordingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	rec := RecordedRequest{
		Method: req.Method,
		URL:    req.URL.String(),
		Header: req.Header.Clone(),
	}
	if req.Body != nil {
		data, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		req.Body.Close()
		rec.Body = data
	}

	m.mu.Lock()
	m.requests = append(m.requests, rec)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	return &http.Response{
		StatusCode: m.StatusCode,
		Status:     http.StatusText(m.StatusCode),
		Header:     m.Header.Clone(),
		Body:       io.NopCloser(bytes.NewBufferString(m.Body)),
		Request:    req,
	}, nil
}

// Requests returns the recorded requests in order.
func (m *RecordingRoundTripper) Requests() []RecordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]RecordedRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// Last returns the most recent request. Fails the test when none was recorded.
func (m *RecordingRoundTripper) Last(t *testing.T) RecordedRequest {
	t.Helper()
	reqs := m.Requests()
	if len(reqs) == 0 {
		t.Fatal("expected a request to be recorded")
	}
	return reqs[len(reqs)-1]
}

// Client returns an [http.Client] using m as its transport.
func (m *RecordingRoundTripper) Client() *http.Client {
	return &http.Client{Transport: m}
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
