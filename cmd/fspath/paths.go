package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/michaelscutari/fspath/internal/pathutil"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [PATH...]",
	Short: "Normalize path strings",
	Long: `Join the given paths as segments of one path and normalize the result.
The filesystem is not consulted.`,
	RunE: runNormalize,
}

var stripCmd = &cobra.Command{
	Use:   "strip PATH START",
	Short: "Strip a leading path",
	Long:  `Remove START from the beginning of PATH. PATH is printed normalized but otherwise unchanged if it does not lie below START.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runStrip,
}

var urlpathCmd = &cobra.Command{
	Use:   "urlpath PATH",
	Short: "Convert a filesystem path into a URL path",
	Long: `Print the percent-encoded URL path of PATH below the document root.
The root defaults to the DOCUMENT_ROOT environment variable.`,
	Args: cobra.ExactArgs(1),
	RunE: runURLPath,
}

var urlpathRoot string

func init() {
	urlpathCmd.Flags().StringVarP(&urlpathRoot, "root", "r", "", "Document root (default $DOCUMENT_ROOT)")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), pathutil.Join(args...))
	return nil
}

func runStrip(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), pathutil.Strip(pathutil.Seg(args[0]), pathutil.Seg(args[1])))
	return nil
}

func runURLPath(cmd *cobra.Command, args []string) error {
	if urlpathRoot != "" {
		root, err := filepath.Abs(urlpathRoot)
		if err != nil {
			return fmt.Errorf("failed to resolve document root: %w", err)
		}
		docRoot.Set(root)
		defer docRoot.Reset()
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	u, ok := docRoot.URLPath(osFs, pathutil.Seg(path))
	if !ok {
		return fmt.Errorf("%s is not inside document root %s", path, docRoot.Get())
	}

	fmt.Fprintln(cmd.OutOrStdout(), u)
	return nil
}
