package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/desertthunder/scx/internal/soundcloud"
)

// Field is a labelled value shown on a card.
type Field struct {
	Label string
	Key   string
}

var userFields = []Field{
	{"ID", "id"},
	{"Username", "username"},
	{"Full name", "full_name"},
	{"City", "city"},
	{"Country", "country"},
	{"Tracks", "track_count"},
	{"Followers", "followers_count"},
	{"Plan", "plan"},
	{"Profile", "permalink_url"},
}

var uploadFields = []Field{
	{"ID", "id"},
	{"Title", "title"},
	{"Sharing", "sharing"},
	{"State", "state"},
	{"Permalink", "permalink_url"},
}

// RenderUser formats a /me response.
func RenderUser(user soundcloud.Result) string {
	return card("SoundCloud profile", user, userFields)
}

// RenderUpload formats a /tracks response.
func RenderUpload(track soundcloud.Result) string {
	return card("Track uploaded", track, uploadFields)
}

// RenderFields formats any result with the given fields.
func RenderFields(title string, r soundcloud.Result, fields []Field) string {
	return card(title, r, fields)
}

func card(title string, r soundcloud.Result, fields []Field) string {
	rows := []string{styles.title.Render(title)}
	for _, f := range fields {
		v := r.String(f.Key)
		if v == "" {
			continue
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, styles.label.Render(f.Label), v))
	}
	return styles.card.Render(strings.Join(rows, "\n"))
}

// Plain removes ANSI styling from s.
func Plain(s string) string {
	return ansi.Strip(s)
}
