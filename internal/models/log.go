package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Status is the outcome tag of a processed file.
type Status string

const (
	StatusSuccess Status = "success"
	StatusSkipped Status = "skipped"
	StatusError   Status = "error"
)

// FlexString is a string field that tolerates any JSON value. Strings are
// taken as-is, null is empty, and numbers, booleans, arrays and objects keep
// their raw JSON text. Extractors occasionally emit a bare year.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(data)
	return nil
}

// String returns the raw value.
func (f FlexString) String() string {
	return string(f)
}

// Metadata holds the bibliographic fields extracted from a file.
// Absent and empty fields are equivalent for display.
type Metadata struct {
	Author  FlexString `json:"author,omitempty" yaml:"author,omitempty"`
	Title   FlexString `json:"title,omitempty" yaml:"title,omitempty"`
	Journal FlexString `json:"journal,omitempty" yaml:"journal,omitempty"`
	Year    FlexString `json:"year,omitempty" yaml:"year,omitempty"`
}

// LogEntry is one record written by the backend for a processed file.
// Which of NewPath, Reason and Error is populated depends on Status.
type LogEntry struct {
	ID             *int      `json:"id,omitempty" yaml:"id,omitempty"`
	Timestamp      string    `json:"timestamp" yaml:"timestamp"` // display-ready, never parsed
	OriginalPath   string    `json:"original_path" yaml:"original_path"`
	Status         Status    `json:"status" yaml:"status"`
	NewPath        string    `json:"new_path,omitempty" yaml:"new_path,omitempty"`               // success only
	ProcessingTime *float64  `json:"processing_time,omitempty" yaml:"processing_time,omitempty"` // seconds
	Reason         string    `json:"reason,omitempty" yaml:"reason,omitempty"`                   // skipped only
	Error          string    `json:"error,omitempty" yaml:"error,omitempty"`                     // error only
	Metadata       *Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`               // success, skipped
}

// UnmarshalJSON decodes an entry without letting one odd field fail the
// whole list: a processing_time that is not a number (or numeric string) is
// dropped, and metadata that is not an object is ignored.
func (e *LogEntry) UnmarshalJSON(data []byte) error {
	type plain LogEntry
	aux := struct {
		*plain
		ProcessingTime json.RawMessage `json:"processing_time"`
		Metadata       json.RawMessage `json:"metadata"`
	}{plain: (*plain)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	e.ProcessingTime = parseSeconds(aux.ProcessingTime)
	e.Metadata = nil
	if raw := bytes.TrimSpace(aux.Metadata); len(raw) > 0 && raw[0] == '{' {
		var md Metadata
		if err := json.Unmarshal(raw, &md); err != nil {
			return err
		}
		e.Metadata = &md
	}
	return nil
}

func parseSeconds(raw json.RawMessage) *float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		raw = []byte(strings.TrimSpace(s))
	}
	v, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return nil
	}
	return &v
}

// LogList is the backend's log in processing order, oldest first.
type LogList []LogEntry

// Reversed returns a newest-first copy. The receiver is left untouched.
func (l LogList) Reversed() LogList {
	out := make(LogList, len(l))
	for i, e := range l {
		out[len(l)-1-i] = e
	}
	return out
}

// Seconds is a convenience for building entries in code and tests.
func Seconds(v float64) *float64 {
	return &v
}

// FormatSeconds renders a processing time the way the backend reports it,
// using the shortest representation ("1.23", "2", "0.5").
func FormatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
