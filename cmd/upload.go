package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/desertthunder/scx/internal/formatter"
	"github.com/desertthunder/scx/internal/models"
	"github.com/desertthunder/scx/internal/shared"
	"github.com/desertthunder/scx/internal/soundcloud"
	"github.com/desertthunder/scx/internal/ui"
	"github.com/urfave/cli/v3"
)

// Upload creates a track from flags and records it against the stored session.
func (r *Runner) Upload(ctx context.Context, cmd *cli.Command) error {
	data, err := shared.ParseFields(cmd.StringSlice("field"))
	if err != nil {
		return err
	}
	for _, name := range []string{"title", "description", "sharing"} {
		if v := cmd.String(name); v != "" {
			data[name] = v
		}
	}
	if data["title"] == "" {
		return fmt.Errorf("%w: --title", shared.ErrMissingArgument)
	}

	client, session, err := r.authenticate(cmd)
	if err != nil {
		return err
	}

	var track soundcloud.Result
	if path := cmd.String("file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("%w: %w", shared.ErrInvalidArgument, err)
		}
		defer f.Close()

		r.logger.Info("uploading track", "title", data["title"], "file", path)
		track, err = client.UploadTrackFile(ctx, data, soundcloud.Asset{Filename: filepath.Base(path), Reader: f})
		if err != nil {
			return fmt.Errorf("%w: %w", shared.ErrAPIRequest, err)
		}
	} else {
		r.logger.Info("uploading track", "title", data["title"])
		track, err = client.UploadTrack(ctx, data)
		if err != nil {
			return fmt.Errorf("%w: %w", shared.ErrAPIRequest, err)
		}
	}

	if session != nil {
		if err := r.recordUpload(session, track, data["title"]); err != nil {
			r.logger.Warn("failed to record upload", "error", err)
		}
	} else {
		r.logger.Debug("upload not recorded, no stored session")
	}

	if cmd.Bool("json") {
		return r.writeJSON(track, cmd.Bool("pretty"))
	}
	return r.render(ui.RenderUpload(track) + "\n")
}

func (r *Runner) recordUpload(session *models.Session, track soundcloud.Result, title string) error {
	if t := track.String("title"); t != "" {
		title = t
	}

	repo, err := r.uploads()
	if err != nil {
		return err
	}
	return repo.Create(models.NewUpload(0, session.ID(), track.Int("id"), title, track.String("permalink_url")))
}

// Uploads lists recorded uploads, newest first.
func (r *Runner) Uploads(ctx context.Context, cmd *cli.Command) error {
	criteria := map[string]any{}
	username := ""
	if !cmd.Bool("all") {
		sessions, err := r.sessions()
		if err != nil {
			return err
		}
		session, err := sessions.Latest(r.config.Credentials.SoundCloud.Sandbox)
		if err != nil {
			return fmt.Errorf("%w: %w", shared.ErrNotAuthenticated, err)
		}
		criteria["session_id"] = session.ID()
		username = session.Username()
	}

	repo, err := r.uploads()
	if err != nil {
		return err
	}
	uploads, err := repo.List(criteria)
	if err != nil {
		return err
	}

	if format := cmd.String("format"); format != "" {
		if path := cmd.String("output"); path != "" {
			if err := formatter.WriteExport(format, username, uploads, path); err != nil {
				return err
			}
			return r.writePlain("✓ Exported %d uploads to %s\n", len(uploads), path)
		}

		data, err := formatter.Export(format, username, uploads)
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)
	}

	if cmd.Bool("json") {
		out := make([]map[string]any, 0, len(uploads))
		for _, u := range uploads {
			out = append(out, map[string]any{
				"id":            u.ID(),
				"track_id":      u.TrackID(),
				"title":         u.Title(),
				"permalink_url": u.PermalinkURL(),
				"created_at":    u.CreatedAt().Format(time.RFC3339),
			})
		}
		return r.writeJSON(out, cmd.Bool("pretty"))
	}

	if len(uploads) == 0 {
		return r.writePlain("No uploads recorded\n")
	}
	for _, u := range uploads {
		if err := r.writePlain("%-12d %-40s %s\n", u.TrackID(), u.Title(), u.PermalinkURL()); err != nil {
			return err
		}
	}
	return nil
}
