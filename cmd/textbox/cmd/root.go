package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/msto63/textbox/foundation/core/config"
	mdwerror "github.com/msto63/textbox/foundation/core/error"
	mdwerrors "github.com/msto63/textbox/foundation/core/errors"
	"github.com/msto63/textbox/foundation/core/log"
)

const (
	configEnvVar = "TEXTBOX_CONFIG"
	envPrefix    = "TEXTBOX"
)

// app carries the state shared by all subcommands
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *log.Logger
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"log": map[string]interface{}{
			"level":  "warn",
			"format": "text",
		},
		"split": map[string]interface{}{
			"delimiter": " ",
		},
		"output": map[string]interface{}{
			"format": "json",
		},
		"inspect": map[string]interface{}{
			"width": 60,
		},
	}
}

// NewRootCmd builds the textbox command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "textbox",
		Short: "Fluent text manipulation from the command line",
		Long: `textbox applies TextBox operations to text given as arguments or on
standard input.

Commands:
  run      - apply a recipe of operations
  inspect  - show every query result for a text
  parse    - convert JSON, YAML or TOML text to ordered JSON or YAML
  split    - split text on a delimiter, one segment per line

Configuration is read from --config, else from $TEXTBOX_CONFIG. Every key
can be overridden by an environment variable such as TEXTBOX_LOG_LEVEL.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $TEXTBOX_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(a),
		newInspectCmd(a),
		newParseCmd(a),
		newSplitCmd(a),
	)
	return rootCmd
}

// Execute runs the command tree with os.Args
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Discover(config.DiscoveryOptions{
		ExplicitPath: a.cfgFile,
		PathEnvVar:   configEnvVar,
		EnvPrefix:    envPrefix,
		Defaults:     defaults(),
	})
	if err != nil {
		return errors.Wrap(err, "load configuration")
	}

	level, err := log.ParseLevel(cfg.GetString("log.level"))
	if err != nil {
		return mdwerrors.ConfigInvalidValue("log.level", cfg.GetString("log.level"), "trace, debug, info, warn, error or audit")
	}
	format, err := log.ParseFormat(cfg.GetString("log.format"))
	if err != nil {
		return mdwerrors.ConfigInvalidValue("log.format", cfg.GetString("log.format"), "json, text, console or logfmt")
	}
	if a.verbose {
		level = log.LevelDebug
	}

	a.cfg = cfg
	a.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "textbox",
	})
	a.logger.Debug("configuration loaded", log.Fields{
		"file":    cfg.FilePath(),
		"command": cmd.Name(),
	})
	return nil
}

// readText joins the arguments, or reads standard input when there are
// none. One trailing line break is dropped from standard input.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.Wrap(err, "read standard input")
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

// ExitCode maps err to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return mdwerror.GetCode(err).ExitCode()
}

// PrintError writes err and any attached hints
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}
