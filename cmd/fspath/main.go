package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/michaelscutari/fspath/internal/config"
	"github.com/michaelscutari/fspath/internal/log"
	"github.com/michaelscutari/fspath/internal/pathutil"
	"github.com/michaelscutari/fspath/internal/render"
)

var version = "0.1.0"

var (
	cfg     = config.Load()
	osFs    = afero.NewOsFs()
	docRoot = pathutil.NewDocumentRoot(func() string { return cfg.DocumentRoot })
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, render.Error(err.Error()))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fspath",
	Short: "Normalize paths and manage directory contents",
	Long: `fspath normalizes path strings without touching the filesystem,
derives URL paths below a document root, lists directories with
kind and name filters, and removes files and directory trees.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().String("log_level", cfg.LogLevel, "Set the log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log_format", cfg.LogFormat, "Set the log format (text, logfmt, json)")

	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(stripCmd)
	rootCmd.AddCommand(urlpathCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(browseCmd)
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	var merr error

	logLevel, err := flags.GetString("log_level")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	logFormat, err := flags.GetString("log_format")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	if merr != nil {
		return fmt.Errorf("invalid argument: %w", merr)
	}

	h, err := log.CreateHandler(cmd.ErrOrStderr(), logLevel, logFormat)
	if err != nil {
		return fmt.Errorf("failed creating log handler: %w", err)
	}
	slog.SetDefault(slog.New(h))

	return nil
}
