package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/slackspace/internal/slackspace"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintJSON outputs statistics in JSON format.
func PrintJSON(stats *slackspace.Stats, writer io.Writer) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// bytesCell renders a byte count as "1.2 MiB (1234567 bytes)".
func bytesCell(n uint64) string {
	return fmt.Sprintf("%s (%d bytes)", humanize.IBytes(n), n)
}

// PrintTable outputs statistics in human-readable table format.
func PrintTable(stats *slackspace.Stats, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "\nScan:\t\t")
	fmt.Fprintf(w, "  Root:\t%s\n", stats.Root)
	fmt.Fprintf(w, "  Files matching:\t%s\n", stats.Pattern)
	fmt.Fprintf(w, "  Traversal:\t%s, %s\n", stats.Engine, stats.Mode)

	fmt.Fprintln(w, "\nVolume:\t\t")
	fmt.Fprintf(w, "  Disk capacity:\t%s\n", bytesCell(stats.Capacity))
	fmt.Fprintf(w, "  Cluster size:\t%s\n", bytesCell(stats.ClusterSize))
	fmt.Fprintf(w, "  Free space:\t%s\n", bytesCell(stats.Free))
	fmt.Fprintf(w, "  In use:\t%s\n", bytesCell(stats.InUse))

	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "  Files examined:\t%s\n", humanize.Comma(int64(stats.Files))) //nolint:gosec // file counts fit in int64
	fmt.Fprintf(w, "  Space in use:\t%s\n", bytesCell(stats.Used))
	fmt.Fprintf(w, "  Wasted space:\t%s\n", bytesCell(stats.Wasted))

	if stats.WastedPercent != nil {
		fmt.Fprintf(w, "  Wasted:\t%.2f%% of space in use\n", *stats.WastedPercent)
	} else {
		fmt.Fprintf(w, "  Wasted:\tn/a\n")
	}

	if stats.Skipped > 0 {
		fmt.Fprintf(w, "  Skipped entries:\t%d\n", stats.Skipped)
	}

	fmt.Fprintf(w, "\nElapsed:\t%v\n", stats.Elapsed)

	return w.Flush()
}
