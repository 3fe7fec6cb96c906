package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/locsanity/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("locsanity", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
locsanity - Validate translated string tables and convert them to and from a workbook.

Usage:
  locsanity [options] MODE

Modes:
  split     Write one CSV file per sheet of the workbook into the data directory.
  combine   Combine the CSV files of the data directory into the workbook.
  scan      Check every CSV file for missing translations, forbidden characters,
            glyphs missing from the fonts and mismatched markup tags.

Options:
`)
		flagSet.PrintDefaults()
	}

	dirFlag := flagSet.String("dir", ".", "Data directory holding the sheet files.")
	configFlag := flagSet.String("config", "", "Path to the HCL project file. Defaults to DIR/locsanity.hcl when present.")
	workbookFlag := flagSet.String("workbook", "", "Workbook path, overriding the project file.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No mode provided, printing usage.")
		flagSet.Usage()
		return nil, false, &ExitError{Code: 1, Message: "missing mode: expected one of " + strings.Join(app.Modes, ", ")}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments after mode: %s", strings.Join(flagSet.Args()[1:], " "))}
	}
	mode := flagSet.Arg(0)
	slog.Debug("Mode determined.", "mode", mode)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Mode:       mode,
		Dir:        *dirFlag,
		ConfigPath: *configFlag,
		Workbook:   *workbookFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
