package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./scx.db" {
			t.Errorf("expected database path ./scx.db, got %s", config.Database.Path)
		}
		if config.Server.Port != 3000 {
			t.Errorf("expected server port 3000, got %d", config.Server.Port)
		}
		if config.Server.Addr() != "localhost:3000" {
			t.Errorf("expected addr localhost:3000, got %s", config.Server.Addr())
		}
		if config.Credentials.SoundCloud.ClientID != "your_soundcloud_client_id" {
			t.Errorf("expected placeholder client_id, got %s", config.Credentials.SoundCloud.ClientID)
		}
		if config.Credentials.SoundCloud.Sandbox {
			t.Error("expected sandbox to default to false")
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		if config.Database.Path != DefaultConfig().Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[credentials.soundcloud]
client_id = "test_client_id"
client_secret = "test_secret"
redirect_uri = "http://localhost:4000/cb"
sandbox = true

[server]
port = 4000
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		sc := config.Credentials.SoundCloud
		if sc.ClientID != "test_client_id" || sc.ClientSecret != "test_secret" {
			t.Errorf("unexpected credentials %+v", sc)
		}
		if !sc.Sandbox {
			t.Error("expected sandbox true")
		}
		if config.Server.Port != 4000 {
			t.Errorf("expected server port 4000, got %d", config.Server.Port)
		}
		if config.Server.Host != "localhost" {
			t.Errorf("expected default host to be kept, got %s", config.Server.Host)
		}
		if config.Database.Path != "./scx.db" {
			t.Errorf("expected default database path to be kept, got %s", config.Database.Path)
		}
	})

	t.Run("LoadConfig Errors", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
			t.Error("expected error for missing file")
		}

		configPath := filepath.Join(t.TempDir(), "bad.toml")
		if err := os.WriteFile(configPath, []byte("[[not toml"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}
		if _, err := LoadConfig(configPath); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("SaveConfig", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")

		config := DefaultConfig()
		config.Credentials.SoundCloud.ClientID = "saved_id"
		config.Credentials.SoundCloud.Sandbox = true

		if err := SaveConfig(configPath, config); err != nil {
			t.Fatalf("failed to save config: %v", err)
		}

		loaded, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load saved config: %v", err)
		}
		if loaded.Credentials.SoundCloud.ClientID != "saved_id" || !loaded.Credentials.SoundCloud.Sandbox {
			t.Errorf("saved values not round-tripped: %+v", loaded.Credentials.SoundCloud)
		}
	})

	t.Run("Validate", func(t *testing.T) {
		tc := []struct {
			name    string
			config  SoundCloudConfig
			wantErr bool
		}{
			{name: "complete", config: SoundCloudConfig{ClientID: "a", ClientSecret: "b", RedirectURI: "c"}},
			{name: "missing id", config: SoundCloudConfig{ClientSecret: "b", RedirectURI: "c"}, wantErr: true},
			{name: "missing secret", config: SoundCloudConfig{ClientID: "a", RedirectURI: "c"}, wantErr: true},
			{name: "missing redirect", config: SoundCloudConfig{ClientID: "a", ClientSecret: "b"}, wantErr: true},
			{name: "template id", config: SoundCloudConfig{ClientID: "your_soundcloud_client_id", ClientSecret: "b", RedirectURI: "c"}, wantErr: true},
			{name: "template secret", config: SoundCloudConfig{ClientID: "a", ClientSecret: "your_soundcloud_client_secret", RedirectURI: "c"}, wantErr: true},
			{name: "defaults", config: DefaultConfig().Credentials.SoundCloud, wantErr: true},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.config.Validate()
				if tt.wantErr && !errors.Is(err, ErrMissingCredentials) {
					t.Errorf("expected ErrMissingCredentials, got %v", err)
				}
				if !tt.wantErr && err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			})
		}
	})
}
