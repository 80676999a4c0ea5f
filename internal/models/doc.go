// Package models defines the persistent entities of scx and the interfaces used to store them.
//
//   - [Session] : an access token obtained from SoundCloud together with the account it belongs to
//   - [Upload] : a track created through the API by a session
//
// Both implement [Model], which provides ID, timestamps, and validation. The [Repository] interface defines standard
// CRUD operations for database access. Sessions are soft deleted; uploads are removed with their session.
package models
