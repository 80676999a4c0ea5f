package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/scx/internal/repositories"
	"github.com/desertthunder/scx/internal/shared"
	"github.com/desertthunder/scx/internal/soundcloud"
	"github.com/desertthunder/scx/internal/ui"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config      *shared.Config
	configPath  string
	configFixed bool
	client      *soundcloud.Client
	httpClient  *http.Client
	db          *sql.DB
	logger      *log.Logger
	output      io.Writer
	openBrowser func(string) error
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config      *shared.Config
	ConfigPath  string
	Client      *soundcloud.Client
	HTTPClient  *http.Client
	DB          *sql.DB
	Logger      *log.Logger
	Output      io.Writer
	OpenBrowser func(string) error
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	fixed := opts.Config != nil
	if !fixed {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.OpenBrowser == nil {
		opts.OpenBrowser = shared.OpenBrowser
	}

	return &Runner{
		config:      opts.Config,
		configPath:  opts.ConfigPath,
		configFixed: fixed,
		client:      opts.Client,
		httpClient:  opts.HTTPClient,
		db:          opts.DB,
		logger:      opts.Logger,
		output:      opts.Output,
		openBrowser: opts.OpenBrowser,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, meCommand, uploadCommand, uploadsCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// soundcloud returns the API client, building it from config on first use.
func (r *Runner) soundcloud() (*soundcloud.Client, error) {
	if r.client != nil {
		return r.client, nil
	}

	creds := r.config.Credentials.SoundCloud
	if err := creds.Validate(); err != nil {
		return nil, fmt.Errorf("%w: set [credentials.soundcloud] in %s", err, r.configPathOrDefault())
	}

	r.client = soundcloud.NewClient(soundcloud.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		RedirectURI:  creds.RedirectURI,
		Sandbox:      creds.Sandbox,
	}, r.httpClient, r.logger)

	return r.client, nil
}

// openDatabase opens the configured database once without touching its schema.
func (r *Runner) openDatabase() (*sql.DB, error) {
	if r.db != nil {
		return r.db, nil
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, err
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	r.db = db
	return db, nil
}

// database opens the configured database and applies pending migrations.
func (r *Runner) database() (*sql.DB, error) {
	db, err := r.openDatabase()
	if err != nil {
		return nil, err
	}
	if err := shared.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

func (r *Runner) sessions() (*repositories.SessionRepository, error) {
	db, err := r.database()
	if err != nil {
		return nil, err
	}
	return repositories.NewSessionRepository(db), nil
}

func (r *Runner) uploads() (*repositories.UploadRepository, error) {
	db, err := r.database()
	if err != nil {
		return nil, err
	}
	return repositories.NewUploadRepository(db), nil
}

// Close releases the database connection if one was opened.
func (r *Runner) Close() error {
	if r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	return err
}

func (r *Runner) configPathOrDefault() string {
	if r.configPath == "" {
		return defaultConfigPath
	}
	return r.configPath
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// render writes styled text, stripping the styling unless output is the terminal.
func (r *Runner) render(s string) error {
	if r.output != os.Stdout {
		s = ui.Plain(s)
	}
	return r.writePlain("%s", s)
}
