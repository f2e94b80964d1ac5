// Package cli implements the gridsnap command-line interface.
//
// Every command reads a layout file (JSON, YAML, TOML, CSV or XLSX), runs
// one engine operation over it and writes the answer to stdout. Logs go to
// stderr; --verbose (-v) switches them to debug level.
package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/gridsnap/internal/config"
	"github.com/piwi3910/gridsnap/internal/engine"
	"github.com/piwi3910/gridsnap/internal/importer"
	"github.com/piwi3910/gridsnap/internal/model"
	"github.com/piwi3910/gridsnap/internal/project"
)

const appName = "gridsnap"

var version = "dev"

// SetVersion sets the version shown by --version.
func SetVersion(v string) {
	version = v
}

// ErrInvalidLayout is returned by validate when the layout has problems.
var ErrInvalidLayout = errors.New("layout is invalid")

// app holds the state shared by all commands of one invocation.
type app struct {
	verbose    bool
	configPath string
	maxCols    int
	maxRows    int

	cfg model.AppConfig
	// saved holds the settings recorded in a layout written with --out, if
	// the layout argument is one. They rank above the config, below flags.
	saved *model.GridSettings
}

// Execute runs the gridsnap CLI with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the root command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:               appName,
		Short:             "gridsnap places, moves and checks items on an integer grid",
		Long:              `gridsnap answers layout questions for dashboard-style grids: how big a layout is, which items overlap, where a new item fits, and what a layout looks like after a move, resize or compaction.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&a.configPath, "config", "", "config file (default ~/.gridsnap/config.json)")
	flags.IntVar(&a.maxCols, "max-cols", 0, "column limit, 0 for unbounded (default from config)")
	flags.IntVar(&a.maxRows, "max-rows", 0, "row limit, 0 for unbounded (default from config)")

	root.AddCommand(a.dimsCommand())
	root.AddCommand(a.collisionsCommand())
	root.AddCommand(a.placeCommand())
	root.AddCommand(a.compressCommand())
	root.AddCommand(a.moveCommand())
	root.AddCommand(a.resizeCommand())
	root.AddCommand(a.packCommand())
	root.AddCommand(a.compareCommand())
	root.AddCommand(a.validateCommand())
	root.AddCommand(a.configCommand())

	return root
}

// setup loads the configuration and attaches a logger to the command context.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path := a.resolvedConfigPath()
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if a.verbose {
		level = log.DebugLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), level)
	cmd.SetContext(withLogger(cmd.Context(), logger))

	logger.Debug("loaded config", "path", path, "max_cols", cfg.DefaultMaxCols,
		"max_rows", cfg.DefaultMaxRows, "collision", cfg.DefaultCollision)
	return nil
}

func (a *app) resolvedConfigPath() string {
	if a.configPath != "" {
		return a.configPath
	}
	return project.DefaultConfigPath()
}

// settings merges the config defaults with the flags given on the command line.
func (a *app) settings(cmd *cobra.Command, mode string) (model.GridSettings, error) {
	s := model.DefaultSettings()
	a.cfg.ApplyToSettings(&s)
	if a.saved != nil {
		s = *a.saved
	}

	if cmd.Flags().Changed("max-cols") {
		s.Bounds.MaxCols = model.BoundFromLimit(a.maxCols)
	}
	if cmd.Flags().Changed("max-rows") {
		s.Bounds.MaxRows = model.BoundFromLimit(a.maxRows)
	}
	if mode != "" {
		m := model.CollisionMode(mode)
		if !m.Valid() {
			return s, fmt.Errorf("%w: %q (want none, push or compress)", config.ErrInvalidCollisionMode, mode)
		}
		s.Collision = m
	}
	return s, nil
}

func (a *app) controller(cmd *cobra.Command, mode string) (*engine.Controller, error) {
	s, err := a.settings(cmd, mode)
	if err != nil {
		return nil, err
	}
	return engine.New(s), nil
}

// importPath imports path, or CSV from stdin when path is "-", logging
// importer warnings at debug level. Row errors are left in the result.
func importPath(cmd *cobra.Command, path string) (importer.ImportResult, error) {
	var result importer.ImportResult
	if path == importer.StdinPath {
		result = importer.ImportStdin(cmd.InOrStdin())
	} else {
		var err error
		if result, err = importer.ImportFile(path); err != nil {
			return result, err
		}
	}
	logger := loggerFromContext(cmd.Context())
	for _, w := range result.Warnings {
		logger.Debug(w, "file", path)
	}
	return result, nil
}

// loadLayout imports path and fails on any row error.
func loadLayout(cmd *cobra.Command, path string) ([]model.LayoutItem, error) {
	result, err := importPath(cmd, path)
	if err != nil {
		return nil, err
	}
	if err := result.Err(path); err != nil {
		return nil, err
	}
	loggerFromContext(cmd.Context()).Debug("loaded layout", "file", path, "items", len(result.Items))
	return result.Items, nil
}

// loadBase loads the layout a command edits. When it is a document saved
// with --out, the grid settings stored in it become the defaults.
func (a *app) loadBase(cmd *cobra.Command, path string) ([]model.LayoutItem, error) {
	items, err := loadLayout(cmd, path)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return items, nil
	}
	doc, err := project.ReadLayoutDocument(path)
	if err != nil {
		// plain item lists carry no settings
		return items, nil
	}
	s := doc.Settings()
	a.saved = &s
	loggerFromContext(cmd.Context()).Debug("using saved settings", "file", path, "version", doc.Version,
		"max_cols", doc.MaxCols, "max_rows", doc.MaxRows, "collision", s.Collision)
	return items, nil
}
