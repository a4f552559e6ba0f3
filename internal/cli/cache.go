package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/five82/deck/internal/app"
	"github.com/five82/deck/internal/cache"
)

func (r *root) cacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the library cache",
		Long: `Manage the library cache that keeps playlists, artists and track lists
between runs.

Subcommands:
  status - Show backend, entry counts and age
  clear  - Remove cached entries (playlists, artists or all)`,
	}
	cmd.AddCommand(r.cacheStatusCmd(), r.cacheClearCmd())
	return cmd
}

func (r *root) cacheStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show library cache statistics",
		Args:  cobra.NoArgs,
		RunE: r.withServices(func(cmd *cobra.Command, _ []string, svc *app.Services) error {
			st, err := svc.Cache.Status()
			if err != nil {
				return err
			}
			path := st.Path
			if path == "" {
				path = "-"
			}
			rows := [][]string{
				{"Backend", st.Backend},
				{"Path", path},
				{"TTL", st.TTL.String()},
				{"Entries", strconv.Itoa(st.Entries)},
				{"Expired", strconv.Itoa(st.Expired)},
				{"Corrupt", strconv.Itoa(st.Corrupt)},
				{"Size", humanize.IBytes(uint64(st.Bytes))},
				{"Oldest", formatStamp(st.Oldest)},
				{"Newest", formatStamp(st.Newest)},
			}
			return writeTable(cmd.OutOrStdout(), []string{"Field", "Value"}, rows)
		}),
	}
}

func (r *root) cacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "clear [playlists|artists|all]",
		Short:     "Remove cached library data",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"playlists", "artists", "all"},
		RunE: r.withServices(func(cmd *cobra.Command, args []string, svc *app.Services) error {
			scope := "all"
			if len(args) == 1 {
				scope = args[0]
			}
			prefixes, ok := cache.Scope(scope)
			if !ok {
				return fmt.Errorf("unknown cache scope %q (want playlists, artists or all)", scope)
			}
			n := svc.Cache.ClearPrefix(prefixes...)
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d cached entries (%s)\n", n, scope)
			return nil
		}),
	}
}

func formatStamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
