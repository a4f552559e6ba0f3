package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/five82/deck/internal/logtail"
)

func (r *root) logsCmd() *cobra.Command {
	var lines int
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the tail of deck's log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := r.loadConfig()
			if err != nil {
				return err
			}
			raw, err := logtail.Read(cfg.Log.File, lines)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(raw) == 0 {
				fmt.Fprintf(w, "No log entries in %s\n", cfg.Log.File)
				return nil
			}
			for _, line := range raw {
				entry := logtail.Parse(line)
				if color.NoColor {
					fmt.Fprintln(w, entry.String())
				} else {
					fmt.Fprintln(w, entry.Colorize())
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of lines to show")
	return cmd
}
