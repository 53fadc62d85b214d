// Package present derives everything the dashboard displays from log entries:
// table rows, status tones and labels, and the per-status detail layout.
// It has no UI dependencies so the TUI and the one-shot CLI render the same
// content.
package present

import (
	"fmt"
	"strings"

	"github.com/paperwatch/paperwatch/internal/models"
)

// Unknown is shown for metadata and timings the backend did not provide.
const Unknown = "Unknown"

// EmptyMessage is the single placeholder row of an empty table.
const EmptyMessage = "No files processed yet"

// Tone is the visual emphasis of a status.
type Tone int

const (
	ToneDanger Tone = iota
	ToneSuccess
	ToneWarning
)

// String returns the tone name.
func (t Tone) String() string {
	switch t {
	case ToneSuccess:
		return "success"
	case ToneWarning:
		return "warning"
	default:
		return "danger"
	}
}

// ToneFor maps a status to its tone. Anything that is not success or skipped
// is shown as a failure.
func ToneFor(status models.Status) Tone {
	switch status {
	case models.StatusSuccess:
		return ToneSuccess
	case models.StatusSkipped:
		return ToneWarning
	default:
		return ToneDanger
	}
}

// StatusLabel upper-cases the first character of the status tag.
func StatusLabel(status models.Status) string {
	s := string(status)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// FileName returns the final "/"-separated segment of path.
func FileName(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}

// Directory returns path up to, not including, its last "/".
// A path without "/" is returned unchanged.
func Directory(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[:i]
	}
	return path
}

// MetadataValue returns v, or Unknown when it is empty.
func MetadataValue(v models.FlexString) string {
	if v == "" {
		return Unknown
	}
	return string(v)
}

// ProcessingTime formats seconds as "1.23 seconds".
func ProcessingTime(seconds *float64) string {
	if seconds == nil {
		return Unknown + " seconds"
	}
	return models.FormatSeconds(*seconds) + " seconds"
}

// CountLabel is the file-count label for a list of n entries.
func CountLabel(n int) string {
	return fmt.Sprintf("%d Files", n)
}
