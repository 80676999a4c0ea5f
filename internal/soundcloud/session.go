package soundcloud

import "net/http"

const (
	headerAccept        = "Accept"
	headerAuthorization = "Authorization"
	mimeJSON            = "application/json"
)

// Session is the credential state attached to outgoing requests.
//
// A Session is never modified in place; [Client.SetAccessToken] installs a new one.
type Session struct {
	accessToken string
	headers     http.Header
}

// NewSession returns a Session for token. An empty token yields an anonymous session.
func NewSession(token string) Session {
	h := http.Header{}
	h.Set(headerAccept, mimeJSON)
	if token != "" {
		h.Set(headerAuthorization, "OAuth "+token)
	}
	return Session{accessToken: token, headers: h}
}

// AccessToken returns the bearer token, or "" for an anonymous session.
func (s Session) AccessToken() string {
	return s.accessToken
}

// Authenticated reports whether the session carries a token.
func (s Session) Authenticated() bool {
	return s.accessToken != ""
}

// Headers returns a copy of the default request headers.
func (s Session) Headers() http.Header {
	if s.headers == nil {
		return NewSession(s.accessToken).headers
	}
	return s.headers.Clone()
}
