package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/deck/internal/app"
	"github.com/five82/deck/internal/devices"
)

func (r *root) devicesCmd() *cobra.Command {
	var noLocal bool
	cmd := &cobra.Command{
		Use:   "devices",
		Short: "List Spotify Connect devices",
		Long: `List Spotify Connect devices known to the Web API together with devices
found on the local network. Local devices already listed by the Web API are
hidden. Local discovery follows the show_local_devices preference unless
--no-local is given.`,
		Args: cobra.NoArgs,
		RunE: r.withServices(func(cmd *cobra.Command, _ []string, svc *app.Services) error {
			showLocal := r.prefs().ShowLocalDevices && !noLocal
			list, err := devices.NewConnect(svc.Client, svc.Logger).Load(cmd.Context(), showLocal)
			if err != nil {
				return err
			}
			if list.Empty() {
				fmt.Fprintln(cmd.OutOrStdout(), "No devices found")
				return nil
			}
			rows := make([][]string, 0, len(list.API)+len(list.Local))
			for _, d := range list.API {
				rows = append(rows, []string{
					string(devices.ConnectIcon(d.Type)) + " " + d.Name,
					d.Type, "connect", activeMark(d.IsActive), string(d.ID),
				})
			}
			for _, d := range list.Local {
				rows = append(rows, []string{
					string(devices.ConnectIcon(d.DeviceType)) + " " + d.DisplayName(),
					d.Description(), "local", activeMark(d.IsActive), d.DeviceID,
				})
			}
			return writeTable(cmd.OutOrStdout(), []string{"Name", "Type", "Source", "Active", "ID"}, rows)
		}),
	}
	cmd.Flags().BoolVar(&noLocal, "no-local", false, "skip local network discovery")
	cmd.AddCommand(r.transferCmd())
	return cmd
}

func (r *root) transferCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <id|name>",
		Short: "Move playback to a device",
		Args:  cobra.MinimumNArgs(1),
		RunE: r.withServices(func(cmd *cobra.Command, args []string, svc *app.Services) error {
			target := strings.Join(args, " ")
			ctl := devices.NewConnect(svc.Client, svc.Logger)
			list, err := ctl.Load(cmd.Context(), true)
			if err != nil {
				return err
			}
			name, err := ctl.TransferTo(cmd.Context(), list, target)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Playing on %s\n", name)
			return nil
		}),
	}
}

func (r *root) audioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audio",
		Short: "List the kiosk's audio outputs",
		Args:  cobra.NoArgs,
		RunE: r.withServices(func(cmd *cobra.Command, _ []string, svc *app.Services) error {
			list, err := devices.NewAudioSwitcher(svc.Client, devices.WithAudioLogger(svc.Logger)).Refresh(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(list))
			for _, d := range list {
				rows = append(rows, []string{string(devices.AudioIcon(d.Name)) + " " + d.Name, activeMark(d.Selected()), d.ID})
			}
			return writeTable(cmd.OutOrStdout(), []string{"Output", "Selected", "ID"}, rows)
		}),
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "switch <id>",
		Short: "Switch the system audio output",
		Args:  cobra.ExactArgs(1),
		RunE: r.withServices(func(cmd *cobra.Command, args []string, svc *app.Services) error {
			sw := devices.NewAudioSwitcher(svc.Client, devices.WithAudioLogger(svc.Logger))
			res, err := sw.Switch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			name := args[0]
			for _, d := range res.Devices {
				if d.ID == args[0] {
					name = d.Name
				}
			}
			if res.ReloadErr != nil {
				svc.Logger.Warn("audio reload after switch failed", "error", res.ReloadErr)
				fmt.Fprintf(cmd.OutOrStdout(), "Audio on %s\n", name)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Audio on %s, volume %d%%\n", name, res.Volume)
			return nil
		}),
	})
	return cmd
}

func activeMark(on bool) string {
	if on {
		return green("●")
	}
	return ""
}
