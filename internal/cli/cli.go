// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/cardparse/internal/app"
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

// Parse processes command-line arguments. Flag defaults come from the
// CARDPARSE_* environment variables. It returns a populated Config, a boolean
// indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	defaults, err := app.ConfigFromEnv()
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	flagSet := flag.NewFlagSet("cardparse", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
cardparse - Parses card documents through an extensible element-parser registry.

Usage:
  cardparse [options] CARD_PATH

Arguments:
  CARD_PATH
    Path to a single card file or a directory of .json, .yaml, .yml or .hcl cards.

Environment:
  CARDPARSE_LOG_LEVEL, CARDPARSE_LOG_FORMAT, CARDPARSE_WORKERS,
  CARDPARSE_UNKNOWN, CARDPARSE_OUTPUT set the defaults of the matching options.

Options:
`)
		flagSet.PrintDefaults()
	}

	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", defaults.WorkerCount, "Number of card documents parsed concurrently.")
	unknownFlag := flagSet.String("unknown", defaults.UnknownPolicy, "Handling of unregistered element types. Options: 'drop', 'keep', 'error'.")
	outputFlag := flagSet.String("output", defaults.Output, "Output format of parsed cards. Options: 'json' or 'yaml'.")
	listTypesFlag := flagSet.Bool("list-types", false, "Print the registered element types and exit.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected a single CARD_PATH, got %d arguments", flagSet.NArg())}
	}
	slog.Debug("Card path determined.", "path", path)

	if path == "" && !*listTypesFlag {
		slog.Debug("No card path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	config, err := app.NewConfig(app.Config{
		CardPath:      path,
		ListTypes:     *listTypesFlag,
		LogFormat:     strings.ToLower(*logFormatFlag),
		LogLevel:      strings.ToLower(*logLevelFlag),
		WorkerCount:   *workersFlag,
		UnknownPolicy: strings.ToLower(*unknownFlag),
		Output:        strings.ToLower(*outputFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
