package models

import (
	"errors"
	"time"

	"golang.org/x/oauth2"
)

// Session is a stored SoundCloud access token and the account it was issued for.
type Session struct {
	id          string
	sequence    int
	userID      int64
	username    string
	accessToken string
	scope       string
	sandbox     bool
	createdAt   time.Time
	updatedAt   time.Time
	deletedAt   *time.Time
}

// NewSession creates a Session for accessToken with creation timestamps set to now.
func NewSession(sequence int, accessToken, scope string, sandbox bool) *Session {
	now := time.Now()
	return &Session{
		sequence:    sequence,
		accessToken: accessToken,
		scope:       scope,
		sandbox:     sandbox,
		createdAt:   now,
		updatedAt:   now,
	}
}

func (s *Session) ID() string                { return s.id }
func (s *Session) Sequence() int             { return s.sequence }
func (s *Session) UserID() int64             { return s.userID }
func (s *Session) Username() string          { return s.username }
func (s *Session) AccessToken() string       { return s.accessToken }
func (s *Session) Scope() string             { return s.scope }
func (s *Session) Sandbox() bool             { return s.sandbox }
func (s *Session) CreatedAt() time.Time      { return s.createdAt }
func (s *Session) UpdatedAt() time.Time      { return s.updatedAt }
func (s *Session) DeletedAt() *time.Time     { return s.deletedAt }
func (s *Session) SetID(id string)           { s.id = id }
func (s *Session) SetSequence(n int)         { s.sequence = n }
func (s *Session) SetAccessToken(t string)   { s.accessToken = t }
func (s *Session) SetScope(scope string)     { s.scope = scope }
func (s *Session) SetCreatedAt(t time.Time)  { s.createdAt = t }
func (s *Session) SetUpdatedAt(t time.Time)  { s.updatedAt = t }
func (s *Session) SetDeletedAt(t *time.Time) { s.deletedAt = t }

// SetUser records the SoundCloud account that owns the token.
func (s *Session) SetUser(id int64, username string) {
	s.userID = id
	s.username = username
}

// Token returns the stored credential as a non-expiring [oauth2.Token].
func (s *Session) Token() *oauth2.Token {
	return &oauth2.Token{AccessToken: s.accessToken, TokenType: "OAuth"}
}

// Validate checks the session has a token.
func (s *Session) Validate() error {
	if s.accessToken == "" {
		return errors.New("access token is required")
	}
	return nil
}
