// Package repositories implements SQLite persistence for scx's models.
//
//   - [SessionRepository] : access tokens and the account they belong to, soft deleted
//   - [UploadRepository] : tracks created through the API, per session
//
// Sequence numbers provide stable, human-readable ordering independent of UUIDs and creation timestamps.
// The [NextSequence] function atomically increments per-table sequence counters in dedicated sequence tables.
package repositories
