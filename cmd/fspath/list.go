package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/michaelscutari/fspath/internal/entry"
	"github.com/michaelscutari/fspath/internal/listing"
	"github.com/michaelscutari/fspath/internal/pathutil"
	"github.com/michaelscutari/fspath/internal/render"
)

var lsCmd = &cobra.Command{
	Use:   "ls [DIR]",
	Short: "List directory entries",
	Long: `List the entries of DIR (default the current directory) sorted by name.
Entries can be filtered by kind, by a glob and by a regular expression.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

var (
	lsKinds   string
	lsAll     bool
	lsGlob    string
	lsPattern string
	lsNames   bool
)

func init() {
	lsCmd.Flags().StringVarP(&lsKinds, "kind", "k", "", "Comma-separated kinds to include (file, dir, symlink, other)")
	lsCmd.Flags().BoolVarP(&lsAll, "all", "a", false, "Include . and ..")
	lsCmd.Flags().StringVarP(&lsGlob, "glob", "g", "", "Only include names matching the glob")
	lsCmd.Flags().StringVarP(&lsPattern, "regex", "e", "", "Only include names matching the regular expression")
	lsCmd.Flags().BoolVarP(&lsNames, "names", "1", false, "Print names only")
}

func runList(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	kinds, err := entry.ParseKinds(lsKinds)
	if err != nil {
		return err
	}

	l, err := listing.List(osFs, pathutil.Seg(dir), listing.Options{
		Kinds:   kinds,
		Dots:    lsAll,
		Glob:    lsGlob,
		Pattern: lsPattern,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if lsNames {
		for e := range l.All() {
			fmt.Fprintln(out, e.Name)
		}
		return l.Err()
	}

	n, err := render.WriteListing(out, l.All())
	if err != nil {
		return fmt.Errorf("failed to write listing: %w", err)
	}
	if err := l.Err(); err != nil {
		return err
	}
	return render.WriteSummary(out, n)
}
