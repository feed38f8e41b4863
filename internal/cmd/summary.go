package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/renato0307/sitegrab/internal/services"
	"github.com/renato0307/sitegrab/internal/theme"
)

// printStopSummary renders the outcome of a finished capture
func printStopSummary(w io.Writer, events int, result *services.StopResult, stopErr error) {
	if stopErr != nil {
		fmt.Fprintln(w, theme.ErrorStyle.Render("Capture failed"))
		fmt.Fprintln(w, theme.Row("Error", stopErr.Error()))
	} else {
		fmt.Fprintln(w, theme.CapturedStyle.Render("Capture saved"))
	}

	fmt.Fprintln(w, theme.Row("Events", strconv.Itoa(events)))
	if result == nil {
		return
	}

	fmt.Fprintln(w, theme.Row("Base URL", result.BaseURL))
	fmt.Fprintln(w, theme.Row("Files", theme.CapturedStyle.Render(strconv.Itoa(result.FileCount))))

	failed := strconv.Itoa(result.FailedCount)
	if result.FailedCount > 0 {
		failed = theme.FailedStyle.Render(failed)
	}
	fmt.Fprintln(w, theme.Row("Failed", failed))

	if result.SavedTo != "" {
		fmt.Fprintln(w, theme.Row("Archive", result.SavedTo))
		fmt.Fprintln(w, theme.Row("Size", formatBytes(result.ArchiveSize)))
	}
}

// formatBytes renders n with a binary unit suffix
func formatBytes(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := unit, 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
