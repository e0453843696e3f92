// Package cli implements the orgchart command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/pkg/buildinfo"
	"github.com/matzehuels/orgchart/pkg/cache"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "orgchart"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	stderr     io.Writer
	configFile string
	logFile    string
	chartFile  string
	logCloser  io.Closer
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: defaultConfig(),
		stderr: w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Close releases the log file, if one was opened.
func (c *CLI) Close() error {
	if c.logCloser == nil {
		return nil
	}
	err := c.logCloser.Close()
	c.logCloser = nil
	return err
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Orgchart reorganizes org charts with undoable moves",
		Long: `Orgchart loads an organization chart, moves employees (together with
everyone reporting to them) under new supervisors, and undoes or redoes those
moves. Charts can be rendered as text, Graphviz DOT, SVG, JSON, or YAML, and
served over HTTP.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return c.setup(cmd) },
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/orgchart/config.toml)")
	root.PersistentFlags().StringVar(&c.logFile, "log-file", "", "also write logs to this file (rotated by size)")
	root.PersistentFlags().StringVarP(&c.chartFile, "chart", "c", "", "chart file (.json, .yaml); overrides the config file")

	// Register all subcommands
	root.AddCommand(c.showCommand())
	root.AddCommand(c.moveCommand())
	root.AddCommand(c.applyCommand())
	root.AddCommand(c.historyCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file, enables the log file, and attaches the
// logger to the command context.
func (c *CLI) setup(cmd *cobra.Command) error {
	path, explicit := c.configFile, c.configFile != ""
	if !explicit {
		var err error
		if path, err = configPath(); err != nil {
			c.Logger.Debug("no config directory", "err", err)
			path = ""
		}
	}
	if path != "" {
		cfg, err := loadConfig(path, explicit)
		if err != nil {
			return err
		}
		c.Config = cfg
		c.Logger.Debug("config loaded", "path", path)
	}

	if c.logFile != "" {
		c.enableLogFile(c.logFile)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// enableLogFile tees log output into a rotated file at path.
func (c *CLI) enableLogFile(path string) {
	_ = c.Close()
	lf := newLogFile(path)
	c.logCloser = lf
	c.Logger.SetOutput(io.MultiWriter(c.stderr, lf))
	c.Logger.Debug("logging to file", "path", path)
}

// =============================================================================
// Cache Factory
// =============================================================================

// openCache opens the configured artifact cache. With noCache set, or when
// no cache directory can be determined, it returns a null cache.
func (c *CLI) openCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	cfg := c.Config.Cache
	if (cfg.Backend == "" || cfg.Backend == cache.BackendFile) && cfg.Dir == "" {
		dir, err := cacheDir()
		if err != nil {
			c.Logger.Warn("caching disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		cfg.Dir = dir
	}
	return cache.Open(ctx, cfg)
}
