package models

import (
	"errors"
	"time"
)

// Upload is a track created on SoundCloud by a [Session].
type Upload struct {
	id           string
	sequence     int
	sessionID    string
	trackID      int64
	title        string
	permalinkURL string
	createdAt    time.Time
}

// NewUpload creates an Upload for the track returned by the API.
func NewUpload(sequence int, sessionID string, trackID int64, title, permalinkURL string) *Upload {
	return &Upload{
		sequence:     sequence,
		sessionID:    sessionID,
		trackID:      trackID,
		title:        title,
		permalinkURL: permalinkURL,
		createdAt:    time.Now(),
	}
}

func (u *Upload) ID() string           { return u.id }
func (u *Upload) Sequence() int        { return u.sequence }
func (u *Upload) SessionID() string    { return u.sessionID }
func (u *Upload) TrackID() int64       { return u.trackID }
func (u *Upload) Title() string        { return u.title }
func (u *Upload) PermalinkURL() string { return u.permalinkURL }
func (u *Upload) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns the creation time; uploads are immutable once recorded.
func (u *Upload) UpdatedAt() time.Time { return u.createdAt }

func (u *Upload) SetID(id string)          { u.id = id }
func (u *Upload) SetSequence(n int)        { u.sequence = n }
func (u *Upload) SetCreatedAt(t time.Time) { u.createdAt = t }

// Validate checks the upload belongs to a session and has a title.
func (u *Upload) Validate() error {
	if u.sessionID == "" {
		return errors.New("session id is required")
	}
	if u.title == "" {
		return errors.New("title is required")
	}
	return nil
}
