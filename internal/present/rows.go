package present

import "github.com/paperwatch/paperwatch/internal/models"

// Row is one table row in display order.
type Row struct {
	Index     int // display index, newest first; opens the detail view
	Timestamp string
	FileName  string
	Status    models.Status
	Label     string
	Tone      Tone
}

// Rows derives the table rows for list (stored oldest first), newest first.
// An empty list yields no rows; callers show EmptyMessage instead.
func Rows(list models.LogList) []Row {
	rows := make([]Row, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		e := list[i]
		rows = append(rows, Row{
			Index:     len(rows),
			Timestamp: e.Timestamp,
			FileName:  FileName(e.OriginalPath),
			Status:    e.Status,
			Label:     StatusLabel(e.Status),
			Tone:      ToneFor(e.Status),
		})
	}
	return rows
}
