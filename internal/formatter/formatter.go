// package formatter provides functions to export recorded uploads to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/desertthunder/scx/internal/models"
	"github.com/desertthunder/scx/internal/shared"
)

// Format names accepted by [Export].
const (
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
	FormatText     = "text"
)

// ExportToCSV converts uploads to CSV format with columns: ID, TrackID, Title, Permalink, UploadedAt
func ExportToCSV(uploads []*models.Upload) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "TrackID", "Title", "Permalink", "UploadedAt"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, u := range uploads {
		record := []string{
			u.ID(),
			strconv.FormatInt(u.TrackID(), 10),
			u.Title(),
			u.PermalinkURL(),
			u.CreatedAt().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts uploads to a Markdown list headed by the account name
func ExportToMarkdown(username string, uploads []*models.Upload) ([]byte, error) {
	var buf bytes.Buffer

	if username == "" {
		username = "SoundCloud"
	}
	buf.WriteString(fmt.Sprintf("# %s uploads\n\n", username))
	buf.WriteString(fmt.Sprintf("**Tracks**: %d\n\n", len(uploads)))

	for i, u := range uploads {
		title := u.Title()
		if u.PermalinkURL() != "" {
			title = fmt.Sprintf("[%s](%s)", u.Title(), u.PermalinkURL())
		}
		buf.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, title, u.CreatedAt().Format(time.DateOnly)))
	}

	return buf.Bytes(), nil
}

// ExportToText converts uploads to plain text format
func ExportToText(uploads []*models.Upload) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Uploads: %d\n\n", len(uploads)))
	for i, u := range uploads {
		buf.WriteString(fmt.Sprintf("%d. %s [%d]\n", i+1, u.Title(), u.TrackID()))
	}

	return buf.Bytes(), nil
}

// Export renders uploads in the named format.
func Export(format, username string, uploads []*models.Upload) ([]byte, error) {
	switch format {
	case FormatCSV:
		return ExportToCSV(uploads)
	case FormatMarkdown, "md":
		return ExportToMarkdown(username, uploads)
	case FormatText, "txt":
		return ExportToText(uploads)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, format)
	}
}

// WriteExport renders uploads in format and writes them to path.
func WriteExport(format, username string, uploads []*models.Upload, path string) error {
	data, err := Export(format, username, uploads)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	return nil
}
