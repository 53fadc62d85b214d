package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/paperwatch/paperwatch/internal/present"
	"github.com/paperwatch/paperwatch/internal/store"
)

var showCmd = &cobra.Command{
	Use:   "show [index]",
	Short: "Show details for one entry (0 is the newest)",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", args[0], err)
	}

	logs, err := fetchOnce(cmd)
	if err != nil {
		return err
	}

	s := store.New()
	s.Replace(logs)
	entry, err := s.Resolve(index)
	if err != nil {
		return err
	}

	writeDetail(cmd.OutOrStdout(), present.BuildDetail(entry))
	return nil
}

func writeDetail(w io.Writer, d present.Detail) {
	fmt.Fprintln(w, toneStyle(d.Tone).Bold(true).Render(d.Banner))
	for _, blk := range d.Blocks {
		fmt.Fprintln(w)
		fmt.Fprintln(w, styleHeader.Render(blk.Title))
		if len(blk.Fields) == 0 {
			fmt.Fprintf(w, "  %s\n", styleValue.Render(blk.Text))
			continue
		}
		for _, f := range blk.Fields {
			fmt.Fprintf(w, "  %s %s\n", styleLabel.Width(20).Render(f.Label+":"), styleValue.Render(f.Value))
		}
	}
}
