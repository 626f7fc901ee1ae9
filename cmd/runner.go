package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/vidcat/internal/repositories"
	"github.com/desertthunder/vidcat/internal/services"
	"github.com/desertthunder/vidcat/internal/shared"
	"github.com/desertthunder/vidcat/internal/store"
	"github.com/desertthunder/vidcat/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	api        services.CatalogAPI
	raw        *services.APIService
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
	catalog    *store.Catalog
	engine     *tasks.CatalogEngine
	db         *sql.DB
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Catalog    services.CatalogAPI
	API        *services.APIService
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
	Journal    tasks.JournalRecorder
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
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

	r := &Runner{
		config:     opts.Config,
		api:        opts.Catalog,
		raw:        opts.API,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
		catalog:    store.NewCatalog(),
	}

	journal := opts.Journal
	if journal == nil {
		journal = r.openJournal()
	}
	r.engine = tasks.NewCatalogEngine(r.api, r.catalog, journal, r.logger)

	return r
}

// openJournal wires the sqlite operation journal when the database file
// already exists. Absent database means auditing is off until `vidcat setup`.
func (r *Runner) openJournal() tasks.JournalRecorder {
	path := r.config.Database.Path
	if path == "" {
		return nil
	}
	if path != ":memory:" {
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	}

	db, err := shared.OpenJournalDB(r.config.Database)
	if err != nil {
		r.logger.Warn("failed to open journal database", "path", path, "err", err)
		return nil
	}

	if err := shared.RunMigrations(db); err != nil {
		r.logger.Warn("failed to migrate journal database", "err", err)
		db.Close()
		return nil
	}

	r.db = db
	return repositories.NewJournalAdapter(repositories.NewJournalRepository(db))
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, videosCommand, authorsCommand, categoriesCommand, exportCommand, historyCommand, apiCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
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

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
