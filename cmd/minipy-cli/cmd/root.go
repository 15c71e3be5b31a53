package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"minipy/internal/config"
)

var (
	cfgFile string
	verbose int

	cfg *config.Config
	log = commonlog.GetLogger("minipy.cli")
)

// errRejected is returned when the input had diagnostics; they have already
// been printed, so Execute only sets the exit status.
var errRejected = errors.New("input rejected")

var rootCmd = &cobra.Command{
	Use:   "minipy-cli",
	Short: "minipy - tokenizer and parser for a small Python-like language",
	Long: `minipy-cli tokenizes and parses minipy programs.

Commands:
  check    - tokenize and parse a file, report diagnostics
  tokens   - print the token stream of a file
  parse    - print the syntax tree of a file
  expr     - show how an expression groups
  explain  - describe an error code
  config   - show or create the configuration file`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil && err != errRejected {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $MINIPY_CONFIG, ./minipy.toml or ~/.config/minipy/config.toml)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (repeatable)")
}

// setup loads the configuration and applies its logging and color settings
// before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	var (
		path string
		err  error
	)
	if cfgFile != "" {
		path = cfgFile
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, path, err = config.Discover()
	}
	if err != nil {
		return err
	}

	commonlog.Configure(cfg.Log.Verbosity+verbose, cfg.LogFile())
	if path != "" {
		log.Infof("using config %s", path)
	}

	switch cfg.Output.Color {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
	return nil
}

// readSource reads a file, or standard input when path is "-".
func readSource(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	log.Debugf("read %d bytes from %s", len(data), path)
	return string(data), nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s: %v\n", color.RedString("error"), err)
}
