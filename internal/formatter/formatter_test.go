package formatter

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/scx/internal/models"
	"github.com/desertthunder/scx/internal/shared"
	th "github.com/desertthunder/scx/internal/testing"
)

func testUploads() []*models.Upload {
	first := models.NewUpload(1, "s1", 101, "Song One", "https://soundcloud.com/someone/song-one")
	first.SetID("u1")
	first.SetCreatedAt(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	second := models.NewUpload(2, "s1", 102, "Song, Two", "")
	second.SetID("u2")
	second.SetCreatedAt(time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC))

	return []*models.Upload{first, second}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(testUploads())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "ID,TrackID,Title,Permalink,UploadedAt") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "u1,101,Song One,https://soundcloud.com/someone/song-one,2025-03-01T12:00:00Z") {
			t.Errorf("CSV missing first upload, got: %s", output)
		}
		if !strings.Contains(output, `"Song, Two"`) {
			t.Errorf("CSV should quote titles with commas, got: %s", output)
		}
	})

	t.Run("ExportToCSV empty", func(t *testing.T) {
		data, err := ExportToCSV(nil)
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}
		if lines := strings.Count(string(data), "\n"); lines != 1 {
			t.Errorf("expected header only, got %d lines", lines)
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown("someone", testUploads())
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)
		for _, want := range []string{
			"# someone uploads",
			"**Tracks**: 2",
			"1. [Song One](https://soundcloud.com/someone/song-one) (2025-03-01)",
			"2. Song, Two (2025-03-02)",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("Markdown missing %q, got: %s", want, output)
			}
		}
	})

	t.Run("ExportToMarkdown without username", func(t *testing.T) {
		data, _ := ExportToMarkdown("", nil)
		if !strings.HasPrefix(string(data), "# SoundCloud uploads") {
			t.Errorf("expected fallback heading, got: %s", data)
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(testUploads())
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "Uploads: 2") {
			t.Errorf("Text missing count, got: %s", output)
		}
		if !strings.Contains(output, "1. Song One [101]") {
			t.Errorf("Text missing first upload, got: %s", output)
		}
	})

	t.Run("Export", func(t *testing.T) {
		tc := []struct {
			format string
			want   string
		}{
			{format: FormatCSV, want: "ID,TrackID"},
			{format: FormatMarkdown, want: "# someone uploads"},
			{format: "md", want: "# someone uploads"},
			{format: FormatText, want: "Uploads: 2"},
			{format: "txt", want: "Uploads: 2"},
		}

		for _, tt := range tc {
			data, err := Export(tt.format, "someone", testUploads())
			if err != nil {
				t.Errorf("Export(%q) failed: %v", tt.format, err)
				continue
			}
			if !strings.Contains(string(data), tt.want) {
				t.Errorf("Export(%q) = %s, want %s", tt.format, data, tt.want)
			}
		}

		if _, err := Export("xml", "", nil); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestWriteExport(t *testing.T) {
	t.Run("writes file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "uploads.csv")

		if err := WriteExport(FormatCSV, "someone", testUploads(), path); err != nil {
			t.Fatalf("WriteExport failed: %v", err)
		}

		th.AssertFileExists(t, path)
		if content := th.MustReadFile(t, path); !strings.Contains(content, "Song One") {
			t.Errorf("export file missing upload, got: %s", content)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "uploads.xml")

		if err := WriteExport("xml", "", nil, path); err == nil {
			t.Fatal("expected error for unknown format")
		}
	})

	t.Run("unwritable path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "uploads.csv")

		if err := WriteExport(FormatText, "", testUploads(), path); err == nil {
			t.Fatal("expected error for missing directory")
		}
	})
}
