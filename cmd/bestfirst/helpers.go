package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rogpeppe/bestfirst/mermaid"
)

// readInput returns the contents of the named file, or of standard
// input if path is "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// newLogger returns the logger for search statistics, or nil
// when debugging is off.
func newLogger(cmd *cobra.Command, flags *globalFlags) *slog.Logger {
	if !flags.debug {
		return nil
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func writeMermaid(cmd *cobra.Command, m mermaid.Marshaler) error {
	data, err := m.MarshalMermaid()
	if err != nil {
		return fmt.Errorf("render path: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
