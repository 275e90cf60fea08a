// Package cmd provides the CLI commands for nullfill.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dbmrq/nullfill/internal/app"
	"github.com/dbmrq/nullfill/internal/clipboard"
	"github.com/dbmrq/nullfill/internal/config"
	nferrors "github.com/dbmrq/nullfill/internal/errors"
	"github.com/dbmrq/nullfill/internal/logging"
	"github.com/dbmrq/nullfill/internal/tui"
	"github.com/dbmrq/nullfill/internal/version"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = version.DevVersion
	Commit  = version.NoCommit
	Date    = version.UnknownDate
)

// newClipboard returns the system clipboard. Tests replace it.
var newClipboard = func() clipboard.Clipboard {
	return clipboard.NewSystem()
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "nullfill",
	Short: "Fill null gaps in a pasted column",
	Long: `nullfill takes a column of values copied from a spreadsheet, replaces every
"null" or "NULL" line with the nearest value above it, and copies the filled
column back to the clipboard.

Run without a subcommand to open the interactive window: press i to import
from the clipboard and e to export the filled column.`,
	RunE:          runRoot,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	addGlobalFlags(rootCmd)
}

func addGlobalFlags(c *cobra.Command) {
	c.PersistentFlags().String("config", "", "Path to config file (default: $XDG_CONFIG_HOME/nullfill/config.yaml)")
	c.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// runRoot starts the TUI.
func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	closeLog := initLogging(cmd, cfg, false)
	defer closeLog()

	fillOpts, err := cfg.FillOptions()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appOpts := &app.Options{
		Fill:        fillOpts,
		PasteNotice: cfg.UI.PasteNotice,
		CopyNotice:  cfg.UI.CopyNotice,
		Timeout:     cfg.Clipboard.Timeout,
		Logger:      logging.Global(),
	}
	tuiOpts := tui.OptionsFromConfig(cfg)
	tuiOpts.Version = Version

	return tui.Run(ctx, newClipboard(), appOpts, tuiOpts)
}

// loadConfig loads the file named by --config, or the default location.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// initLogging starts file logging for one command run and returns its cleanup.
// Logging failures are reported but never stop the command.
func initLogging(cmd *cobra.Command, cfg *config.Config, console bool) func() {
	verbose, _ := cmd.Flags().GetBool("verbose")

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logging.LevelInfo
	}
	if verbose {
		level = logging.LevelDebug
	}

	logConfig := &logging.Config{
		Level:       level,
		LogDir:      cfg.Log.Dir,
		MaxLogFiles: 10,
		MaxLogAge:   7 * 24 * time.Hour,
		Console:     console && verbose,
		JSONFormat:  cfg.Log.JSON,
	}
	if err := logging.InitGlobal(logConfig); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
		return func() {}
	}

	logging.Info("nullfill starting", "version", Version, "command", cmd.Name(), "verbose", verbose)
	return func() { _ = logging.CloseGlobal() }
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Set version info here after main.go has set the variables.
	rootCmd.Version = version.NewInfo(Version, Commit, Date).String()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, nferrors.FormatError(err))
		os.Exit(1)
	}
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}
