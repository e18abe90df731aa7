// internal/cli/show_bands.go
package neuroscore

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/neuroscore/internal/scoring"
)

// bandRanges describes the inclusive percentile ranges each band covers.
var bandRanges = map[scoring.Band]string{
	scoring.BandExceptionallyHigh: "98 - 100",
	scoring.BandAboveAverage:      "91 - 97",
	scoring.BandHighAverage:       "75 - 90",
	scoring.BandAverage:           "25 - 74",
	scoring.BandLowAverage:        "9 - 24",
	scoring.BandBelowAverage:      "2 - 8",
	scoring.BandExceptionallyLow:  "0 - 1",
}

// printBands writes the classification table, highest band first.
func printBands(out io.Writer) {
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	fmt.Fprintln(out, headerStyle.Render("Percentile classification bands:"))
	for _, band := range scoring.Bands() {
		fmt.Fprintf(out, "  %-19s %s\n", band, bandRanges[band])
	}
}
