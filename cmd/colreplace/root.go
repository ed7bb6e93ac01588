package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/oleg578/colreplace"
	"github.com/oleg578/colreplace/internal/config"
	"github.com/oleg578/colreplace/internal/logging"
)

// Exit codes.
const (
	exitOK = iota
	exitUsage
	exitMissingInput
	exitUnknownColumn
	exitOutput
	exitMalformedRow
)

const (
	msgMissingInput  = "input file missing"
	msgUnknownColumn = "column name doesn't exist in the input file"
)

// UsageError reports a wrong number of positional arguments.
type UsageError struct {
	Got int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("expected 4 arguments, got %d", e.Got)
}

func exactArgs(_ *cobra.Command, args []string) error {
	if len(args) != 4 {
		return &UsageError{Got: len(args)}
	}
	return nil
}

func newRootCommand(stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colreplace <input-file> <column-name> <replacement-value> <output-file>",
		Short: "Overwrite one CSV column with a fixed value",
		Long: `colreplace copies a comma-separated file, replacing every value of the named
column with the given string. The header line is copied unchanged.

Environment (also read from ./.env):
  LOG_LEVEL                  debug, info, warn, error (default warn)
  LOG_FORMAT                 text or json (default text)
  COLREPLACE_MALFORMED_ROWS  skip or fail (default skip)
  COLREPLACE_STRIP_BOM       drop a leading UTF-8 BOM (default false)
  COLREPLACE_BUFFER_SIZE     I/O buffer size in bytes (default 65536)`,
		Args:               exactArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return replace(stderr, args[0], args[1], args[2], args[3])
		},
	}
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	return cmd
}

func replace(stderr io.Writer, input, column, value, output string) error {
	loaded, err := config.LoadDotEnv(".env")
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.Setup(stderr, cfg.Logging.Level, cfg.Logging.Format)
	log := logging.ForRun(logger, logging.NewRunID(), "input", input, "column", column, "output", output)
	log.Debug("configuration loaded",
		"dotenv", loaded,
		"malformed_rows", cfg.Policy().String(),
		"strip_bom", cfg.Replace.StripBOM,
		"buffer_size", cfg.Replace.BufferSize,
	)

	opts := append(cfg.Options(), colreplace.WithLogger(log))
	_, err = colreplace.ReplaceFile(input, output, colreplace.Single(column, value), opts...)
	return err
}

// report prints the user-facing message for err and returns the exit code.
func report(cmd *cobra.Command, stderr io.Writer, err error) int {
	if err == nil {
		return exitOK
	}
	slog.Debug("run failed", "error", err)

	var usageErr *UsageError
	switch {
	case errors.As(err, &usageErr):
		fmt.Fprintf(stderr, "%v\n\n%s", err, cmd.UsageString())
		return exitUsage
	case errors.Is(err, colreplace.ErrMissingInput):
		fmt.Fprintln(stderr, msgMissingInput)
		return exitMissingInput
	case errors.Is(err, colreplace.ErrUnknownColumn):
		fmt.Fprintln(stderr, msgUnknownColumn)
		return exitUnknownColumn
	case errors.Is(err, colreplace.ErrOutputOpen):
		fmt.Fprintln(stderr, err)
		return exitOutput
	case errors.Is(err, colreplace.ErrFieldCount):
		fmt.Fprintln(stderr, err)
		return exitMalformedRow
	default:
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
}

// run executes the command with args and returns the process exit code.
func run(args []string, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on a nil slice.
		args = []string{}
	}
	cmd := newRootCommand(stderr)
	cmd.SetArgs(args)
	return report(cmd, stderr, cmd.Execute())
}
