package render

import (
	"fmt"
	"io"
	"iter"
	"text/tabwriter"

	"github.com/michaelscutari/fspath/internal/entry"
)

// WriteListing writes entries as a table and returns the number of rows.
func WriteListing(w io.Writer, entries iter.Seq[entry.Entry]) (int64, error) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "KIND\tSIZE\tMODIFIED\tNAME\n")

	var n int64
	for e := range entries {
		size := "-"
		if e.Kind == entry.KindFile {
			size = FormatSize(e.Size)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Kind, size, FormatTime(e.ModTime), Name(e))
		n++
	}

	return n, tw.Flush()
}

// WriteSummary writes a one line entry count.
func WriteSummary(w io.Writer, n int64) error {
	noun := "entries"
	if n == 1 {
		noun = "entry"
	}
	_, err := fmt.Fprintln(w, Muted(fmt.Sprintf("%s %s", FormatCount(n), noun)))
	return err
}
