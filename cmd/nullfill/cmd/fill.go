package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dbmrq/nullfill/internal/app"
	"github.com/dbmrq/nullfill/internal/clipboard"
	"github.com/dbmrq/nullfill/internal/config"
	nferrors "github.com/dbmrq/nullfill/internal/errors"
	"github.com/dbmrq/nullfill/internal/fill"
	"github.com/dbmrq/nullfill/internal/logging"
	"github.com/dbmrq/nullfill/internal/render"
)

// fillCmd runs the transform without the TUI.
var fillCmd = &cobra.Command{
	Use:   "fill [file]",
	Short: "Fill nulls in a file, stdin or the clipboard",
	Long: `Fill every "null" or "NULL" line with the nearest value above it and
print the result.

Input comes from the named file, from stdin when the file is "-" or omitted,
or from the system clipboard with --from-clipboard. A single trailing newline
in file or stdin input ends the last line and does not add an empty one.

Output goes to stdout in the --output format, or back to the clipboard with
--to-clipboard.

Examples:
  nullfill fill column.txt                       # Filled column to stdout
  pbpaste | nullfill fill --output table         # Side-by-side view
  nullfill fill --from-clipboard --to-clipboard  # Same as Import then Export
  nullfill fill --mode text --fallback n/a data.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFill,
}

func init() {
	rootCmd.AddCommand(fillCmd)
	addFillFlags(fillCmd)
}

func addFillFlags(c *cobra.Command) {
	c.Flags().Bool("from-clipboard", false, "Read input from the system clipboard")
	c.Flags().Bool("to-clipboard", false, "Write the filled column to the system clipboard")
	c.Flags().StringP("output", "o", string(render.FormatText), "Output format: text, table, json or yaml")
	c.Flags().String("mode", "", "Value mode: numeric or text (default from config)")
	c.Flags().String("fallback", "", "Value for nulls before the first value (default -1 numeric, empty text)")
	c.Flags().String("on-malformed", "", "Unparsable numeric lines: passthrough or reject (default from config)")
	c.MarkFlagsMutuallyExclusive("output", "to-clipboard")
}

// pipe reads from one clipboard and writes to another, so the controller can
// bridge stdin, files and the system clipboard.
type pipe struct {
	in  clipboard.Clipboard
	out clipboard.Clipboard
}

func (p pipe) ReadText(ctx context.Context) (string, error) { return p.in.ReadText(ctx) }

func (p pipe) WriteText(ctx context.Context, text string) error { return p.out.WriteText(ctx, text) }

// runFill handles the fill command.
func runFill(cmd *cobra.Command, args []string) error {
	fromClipboard, _ := cmd.Flags().GetBool("from-clipboard")
	toClipboard, _ := cmd.Flags().GetBool("to-clipboard")
	outputFlag, _ := cmd.Flags().GetString("output")

	if fromClipboard && len(args) > 0 {
		return nferrors.WithSuggestion(nferrors.ErrInput,
			"cannot read from both a file and the clipboard",
			"Drop the file argument or --from-clipboard")
	}

	format, err := render.ParseFormat(outputFlag)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyFillFlags(cmd, cfg); err != nil {
		return err
	}
	fillOpts, err := cfg.FillOptions()
	if err != nil {
		return err
	}

	closeLog := initLogging(cmd, cfg, true)
	defer closeLog()
	log := logging.With("component", "fill")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var p pipe
	if fromClipboard {
		p.in = newClipboard()
	} else {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		p.in = clipboard.NewMemory(text)
	}
	if toClipboard {
		p.out = newClipboard()
	} else {
		p.out = clipboard.NewMemory("")
	}

	notifier := app.NotifierFunc(func(n app.Notice) {
		log.Debug("notice", "level", string(n.Level), "message", n.Message)
	})
	ctrl := app.NewController(p, notifier, &app.Options{
		Fill:        fillOpts,
		PasteNotice: cfg.UI.PasteNotice,
		CopyNotice:  cfg.UI.CopyNotice,
		Timeout:     cfg.Clipboard.Timeout,
		Logger:      logging.Global(),
	})

	records, err := ctrl.Paste(ctx)
	if err != nil {
		return err
	}

	if toClipboard {
		if err := ctrl.Copy(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), ctrl.Options().CopyNotice)
		return nil
	}

	r := &render.Renderer{
		OriginalHeader: cfg.UI.OriginalHeader,
		FilledHeader:   cfg.UI.FilledHeader,
	}
	return r.Write(cmd.OutOrStdout(), format, records)
}

// applyFillFlags overrides the fill config section with explicitly set flags
// and revalidates the result.
func applyFillFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("mode") {
		v, _ := flags.GetString("mode")
		cfg.Fill.Mode = fill.ValueKind(v)
	}
	if flags.Changed("fallback") {
		v, _ := flags.GetString("fallback")
		cfg.Fill.Fallback = v
	}
	if flags.Changed("on-malformed") {
		v, _ := flags.GetString("on-malformed")
		cfg.Fill.OnMalformed = fill.MalformedPolicy(v)
	}

	if err := cfg.Validate(); err != nil {
		var errs config.ValidationErrors
		if nferrors.As(err, &errs) && len(errs) > 0 {
			first := errs[0]
			e := nferrors.ConfigValidationError(first.Field, first.Message, first.Options)
			e.Cause = errs
			return e
		}
		return err
	}
	return nil
}

// readInput returns the file named by args, or stdin.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", nferrors.Wrap(err, nferrors.ErrInput, "failed to read stdin")
		}
	} else {
		data, err = os.ReadFile(args[0])
		if os.IsNotExist(err) {
			return "", nferrors.WithSuggestion(nferrors.ErrNotFound,
				fmt.Sprintf("input file not found: %s", args[0]),
				"Check the path, or pipe the column through stdin").WithDetails("path", args[0])
		}
		if err != nil {
			return "", nferrors.Wrap(err, nferrors.ErrInput, "failed to read input file").WithDetails("path", args[0])
		}
	}
	return trimFinalNewline(string(data)), nil
}

func trimFinalNewline(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	return strings.TrimSuffix(s, "\n")
}
