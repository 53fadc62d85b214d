package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/paperwatch/paperwatch/internal/models"
	"github.com/paperwatch/paperwatch/internal/present"
)

var flagPlain bool

var logsCmd = &cobra.Command{
	Use:     "logs",
	Aliases: []string{"ls"},
	Short:   "Fetch the log list once and print it newest first",
	Args:    cobra.NoArgs,
	RunE:    runLogs,
}

func init() {
	logsCmd.Flags().BoolVar(&flagPlain, "plain", false, "tab-separated output even on a terminal")
}

func runLogs(cmd *cobra.Command, args []string) error {
	logs, err := fetchOnce(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagPlain || !isTerminal(out) {
		writePlainLogs(out, logs)
		return nil
	}
	writeLogTable(out, logs)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// writePlainLogs prints one tab-separated line per entry under a count line.
func writePlainLogs(w io.Writer, logs models.LogList) {
	fmt.Fprintln(w, present.CountLabel(len(logs)))
	for _, r := range present.Rows(logs) {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.Index, r.Timestamp, r.FileName, r.Label)
	}
}

func writeLogTable(w io.Writer, logs models.LogList) {
	fmt.Fprintln(w, styleCount.Render(present.CountLabel(len(logs))))

	rows := present.Rows(logs)
	if len(rows) == 0 {
		fmt.Fprintln(w, styleHint.Render(present.EmptyMessage))
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleHint).
		Headers("#", "Timestamp", "File", "Status").
		StyleFunc(func(row, col int) lipgloss.Style {
			cell := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return cell.Inherit(styleHeader)
			}
			if row < 0 || row >= len(rows) {
				return cell
			}
			switch col {
			case 0:
				return cell.Inherit(styleLabel)
			case 3:
				return cell.Inherit(toneStyle(rows[row].Tone)).Bold(true)
			}
			return cell.Inherit(styleValue)
		})

	for _, r := range rows {
		t.Row(strconv.Itoa(r.Index), r.Timestamp, r.FileName, r.Label)
	}

	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, styleHint.Render("Run 'paperwatch show <#>' for details."))
}
