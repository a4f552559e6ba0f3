package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/deck/internal/app"
	"github.com/five82/deck/internal/kiosk"
)

func (r *root) playlistsCmd() *cobra.Command {
	var refresh bool
	cmd := &cobra.Command{
		Use:   "playlists",
		Short: "List playlists",
		Long: `List the account's playlists. Results come from the library cache when
fresh; --refresh drops the cached playlists and their tracks first.`,
		Args: cobra.NoArgs,
		RunE: r.withServices(func(cmd *cobra.Command, _ []string, svc *app.Services) error {
			var (
				list []kiosk.Playlist
				err  error
			)
			if refresh {
				list, err = svc.Library.RefreshPlaylists(cmd.Context())
			} else {
				list, err = svc.Library.Playlists(cmd.Context())
			}
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(list))
			for i, p := range list {
				rows = append(rows, []string{strconv.Itoa(i + 1), p.Name, strconv.Itoa(p.TracksTotal), string(p.ID)})
			}
			return writeTable(cmd.OutOrStdout(), []string{"#", "Name", "Tracks", "ID"}, rows)
		}),
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the library cache")
	return cmd
}

func (r *root) artistsCmd() *cobra.Command {
	var refresh bool
	cmd := &cobra.Command{
		Use:   "artists",
		Short: "List followed artists",
		Args:  cobra.NoArgs,
		RunE: r.withServices(func(cmd *cobra.Command, _ []string, svc *app.Services) error {
			var (
				list []kiosk.Artist
				err  error
			)
			if refresh {
				list, err = svc.Library.RefreshArtists(cmd.Context())
			} else {
				list, err = svc.Library.Artists(cmd.Context())
			}
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(list))
			for i, a := range list {
				rows = append(rows, []string{strconv.Itoa(i + 1), a.Name, string(a.ID)})
			}
			return writeTable(cmd.OutOrStdout(), []string{"#", "Name", "ID"}, rows)
		}),
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the library cache")
	return cmd
}

func (r *root) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy search playlists and artists",
		Args:  cobra.MinimumNArgs(1),
		RunE: r.withServices(func(cmd *cobra.Command, args []string, svc *app.Services) error {
			results, err := svc.Library.Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matches")
				return nil
			}
			rows := make([][]string, 0, len(results))
			for _, res := range results {
				rows = append(rows, []string{string(res.Kind), res.Name, string(res.ID)})
			}
			return writeTable(cmd.OutOrStdout(), []string{"Kind", "Name", "ID"}, rows)
		}),
	}
}
