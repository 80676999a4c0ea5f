package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/scx/internal/models"
	"github.com/desertthunder/scx/internal/shared"
)

const uploadColumns = `id, sequence, session_id, track_id, title, permalink_url, created_at`

var _ models.Repository[*models.Upload] = (*UploadRepository)(nil)

// UploadRepository persists [models.Upload] records.
type UploadRepository struct {
	db *sql.DB
}

// NewUploadRepository creates a new [UploadRepository] with the given database connection
func NewUploadRepository(db *sql.DB) *UploadRepository {
	return &UploadRepository{db: db}
}

// Create inserts a new upload with a generated ID and sequence
func (r *UploadRepository) Create(upload *models.Upload) error {
	if err := upload.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	sequence, err := NextSequence(r.db, "uploads")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	upload.SetID(shared.GenerateID())
	upload.SetSequence(sequence)

	query := `
		INSERT INTO uploads (id, sequence, session_id, track_id, title, permalink_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		upload.ID(), sequence, upload.SessionID(), upload.TrackID(), upload.Title(), upload.PermalinkURL(), upload.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert upload: %w", err)
	}

	return nil
}

// Get retrieves an upload by ID
func (r *UploadRepository) Get(id string) (*models.Upload, error) {
	query := `SELECT ` + uploadColumns + ` FROM uploads WHERE id = ?`

	upload, err := scanUpload(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: upload %s", shared.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query upload: %w", err)
	}

	return upload, nil
}

// Update is not supported; uploads are immutable once recorded.
func (r *UploadRepository) Update(upload *models.Upload) error {
	return fmt.Errorf("%w: uploads are immutable", shared.ErrNotImplemented)
}

// Delete removes an upload record by ID
func (r *UploadRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM uploads WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete upload: %w", err)
	}

	return expectOne(result, "upload", id)
}

// List retrieves uploads newest first. Supported criteria: "session_id" (string).
func (r *UploadRepository) List(criteria map[string]any) ([]*models.Upload, error) {
	query := `SELECT ` + uploadColumns + ` FROM uploads`
	args := []any{}

	if sessionID, ok := criteria["session_id"].(string); ok && sessionID != "" {
		query += " WHERE session_id = ?"
		args = append(args, sessionID)
	}

	query += " ORDER BY sequence DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query uploads: %w", err)
	}
	defer rows.Close()

	var uploads []*models.Upload
	for rows.Next() {
		upload, err := scanUpload(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan upload: %w", err)
		}
		uploads = append(uploads, upload)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return uploads, nil
}

func scanUpload(row scanner) (*models.Upload, error) {
	var (
		id           string
		sequence     int
		sessionID    string
		trackID      int64
		title        string
		permalinkURL string
		createdAt    time.Time
	)

	if err := row.Scan(&id, &sequence, &sessionID, &trackID, &title, &permalinkURL, &createdAt); err != nil {
		return nil, err
	}

	upload := models.NewUpload(sequence, sessionID, trackID, title, permalinkURL)
	upload.SetID(id)
	upload.SetCreatedAt(createdAt)

	return upload, nil
}
