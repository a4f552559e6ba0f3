package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/deck/internal/app"
	"github.com/five82/deck/internal/kiosk"
)

func (r *root) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show what is playing",
		Args:  cobra.NoArgs,
		RunE: r.withServices(func(cmd *cobra.Command, _ []string, svc *app.Services) error {
			cur, err := svc.Client.Current(cmd.Context())
			if err != nil {
				return fmt.Errorf("load current playback: %w", err)
			}
			writeStatus(cmd, cur)
			return nil
		}),
	}
}

func writeStatus(cmd *cobra.Command, cur *kiosk.CurrentPlayback) {
	w := cmd.OutOrStdout()
	if cur == nil || cur.Track == nil {
		fmt.Fprintln(w, faint("No music"))
		return
	}
	t := cur.Track
	state := yellow("⏸ paused")
	if cur.Playing {
		state = green("▶ playing")
	}
	shuffle := faint("off")
	if cur.Shuffle {
		shuffle = green("on")
	}
	fmt.Fprintln(w, bold(t.Name))
	fmt.Fprintf(w, "%s · %s\n", t.Artist, faint(t.Album))
	fmt.Fprintf(w, "%s  %s / %s  shuffle %s  volume %d%%\n",
		state, clock(t.ProgressMS), clock(t.DurationMS), shuffle, cur.VolumePercent)
}

// transportCmd builds the argument-less play, pause, next and prev commands.
func (r *root) transportCmd(use, short, done string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: r.withServices(func(cmd *cobra.Command, _ []string, svc *app.Services) error {
			c := svc.Client
			var err error
			switch use {
			case "play":
				err = c.Play(cmd.Context())
			case "pause":
				err = c.Pause(cmd.Context())
			case "next":
				err = c.Next(cmd.Context())
			case "prev":
				err = c.Previous(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("%s: %w", use, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), done)
			return nil
		}),
	}
}

func (r *root) shuffleCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "shuffle on|off",
		Short:     "Turn shuffle on or off",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"on", "off"},
		RunE: r.withServices(func(cmd *cobra.Command, args []string, svc *app.Services) error {
			on := args[0] == "on"
			if err := svc.Client.SetShuffle(cmd.Context(), on); err != nil {
				return fmt.Errorf("shuffle: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Shuffle %s\n", args[0])
			return nil
		}),
	}
}

func (r *root) seekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seek <seconds>",
		Short: "Jump to a position, or move by +N/-N seconds",
		Example: `  deck seek 90
  deck seek +10
  deck seek -- -10`,
		Args: cobra.ExactArgs(1),
		RunE: r.withServices(func(cmd *cobra.Command, args []string, svc *app.Services) error {
			arg := strings.TrimSpace(args[0])
			secs, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("seek: %q is not a number of seconds", arg)
			}
			pos := int64(secs) * 1000
			if strings.HasPrefix(arg, "+") || strings.HasPrefix(arg, "-") {
				cur, err := svc.Client.Current(cmd.Context())
				if err != nil {
					return fmt.Errorf("load current playback: %w", err)
				}
				if cur == nil || cur.Track == nil {
					return fmt.Errorf("seek: nothing is playing")
				}
				pos = seekTarget(cur.Track.ProgressMS, cur.Track.DurationMS, pos)
			}
			if pos < 0 {
				pos = 0
			}
			if err := svc.Client.Seek(cmd.Context(), pos); err != nil {
				return fmt.Errorf("seek: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeked to %s\n", clock(pos))
			return nil
		}),
	}
}

// seekTarget moves progress by delta and keeps the result inside the track.
func seekTarget(progress, duration, delta int64) int64 {
	pos := progress + delta
	if pos < 0 {
		return 0
	}
	if duration > 0 && pos > duration {
		return duration
	}
	return pos
}

func (r *root) volumeCmd() *cobra.Command {
	var system bool
	cmd := &cobra.Command{
		Use:   "volume <0-100>",
		Short: "Set the Spotify volume, or the system volume with --system",
		Args:  cobra.ExactArgs(1),
		RunE: r.withServices(func(cmd *cobra.Command, args []string, svc *app.Services) error {
			n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(args[0]), "%"))
			if err != nil || n < 0 || n > 100 {
				return fmt.Errorf("volume: %q is not between 0 and 100", args[0])
			}
			if system {
				err = svc.Client.SetSystemVolume(cmd.Context(), n)
			} else {
				err = svc.Client.SetSpotifyVolume(cmd.Context(), n)
			}
			if err != nil {
				return fmt.Errorf("volume: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Volume %d%%\n", n)
			return nil
		}),
	}
	cmd.Flags().BoolVar(&system, "system", false, "set the kiosk's system volume instead")
	return cmd
}
