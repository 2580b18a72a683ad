package main

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/michaelscutari/fspath/internal/fsops"
	"github.com/michaelscutari/fspath/internal/pathutil"
)

var rmCmd = &cobra.Command{
	Use:   "rm PATH...",
	Short: "Remove files and directory trees",
	Long: `Remove each PATH. Directories are removed recursively and symbolic
links are removed without following them. A PATH that does not exist
is not an error.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRemove,
}

var cleanCmd = &cobra.Command{
	Use:   "clean DIR",
	Short: "Remove the contents of a directory",
	Long:  `Remove every entry inside DIR, leaving DIR itself in place.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runClean,
}

func runRemove(cmd *cobra.Command, args []string) error {
	var merr error
	for _, arg := range args {
		if err := fsops.Remove(osFs, pathutil.Seg(arg)); err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		slog.Debug("removed", "path", arg)
	}
	return merr
}

func runClean(cmd *cobra.Command, args []string) error {
	if err := fsops.CleanDirectory(osFs, pathutil.Seg(args[0])); err != nil {
		return fmt.Errorf("failed to clean %s: %w", args[0], err)
	}
	return nil
}
