// internal/util/util.go
package util

import (
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// WriteFile writes data to a file with 0o644 permissions.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// TruncateRunes truncates a string to a maximum number of runes,
// appending an ellipsis if truncated.
func TruncateRunes(text string, maxRunes int) string {
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxRunes]) + "…"
}

// TruncateToWidth truncates each line of a string to a specified width in runes.
func TruncateToWidth(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if utf8.RuneCountInString(line) > width {
			lines[i] = TruncateRunes(line, width)
		}
	}
	return strings.Join(lines, "\n")
}

// FormatScore formats an optional score with the given number of decimal
// places, rendering missing values as a dash.
func FormatScore(v *float64, decimals int) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', decimals, 64)
}

// FormatSigned is FormatScore with an explicit plus sign on positive values,
// used for z-scores where the sign carries meaning.
func FormatSigned(v *float64, decimals int) string {
	if v == nil {
		return "-"
	}
	s := strconv.FormatFloat(*v, 'f', decimals, 64)
	if *v > 0 {
		return "+" + s
	}
	return s
}
