package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/deck/internal/app"
	"github.com/five82/deck/internal/kiosk"
	"github.com/five82/deck/internal/settings"
)

// unlock asks for the settings PIN when tab is protected. DECK_PIN skips
// the prompt. The PIN is returned for calls that forward it to the backend.
func (r *root) unlock(ctx context.Context, p *prompter, svc *app.Services, tab settings.Tab) (string, error) {
	gate := settings.NewGate(svc.Client, r.prefs().PinProtection)
	if gate.Require(tab) == nil {
		return "", nil
	}
	pin, err := r.pin(p)
	if err != nil {
		return "", err
	}
	if _, err := gate.Verify(ctx, pin); err != nil {
		return "", err
	}
	return pin, nil
}

func (r *root) pin(p *prompter) (string, error) {
	if pin := strings.TrimSpace(r.v.GetString("pin")); pin != "" {
		return pin, nil
	}
	pin, err := p.secret("PIN: ")
	if err != nil {
		return "", err
	}
	if pin == "" {
		return "", settings.ErrWrongPIN
	}
	return pin, nil
}

func (r *root) systemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "system",
		Short: "Show kiosk system information",
		Long: `Show network, power saving and naming details of the kiosk.

The subcommands change the kiosk itself and ask for the settings PIN when
PIN protection is on. Set DECK_PIN to answer the prompt from scripts.`,
		Args: cobra.NoArgs,
		RunE: r.withServices(func(cmd *cobra.Command, _ []string, svc *app.Services) error {
			ctx := cmd.Context()
			if _, err := r.unlock(ctx, newPrompter(cmd), svc, settings.TabSystem); err != nil {
				return err
			}
			net, err := svc.Client.NetworkStatus(ctx)
			if err != nil {
				return fmt.Errorf("load network status: %w", err)
			}
			info, err := svc.Client.DeviceInfo(ctx)
			if err != nil {
				return fmt.Errorf("load device info: %w", err)
			}
			saving, err := svc.Client.PowerSaving(ctx)
			if err != nil {
				return fmt.Errorf("load power saving: %w", err)
			}
			rows := [][]string{
				{"Hostname", info.Hostname},
				{"Player name", info.PlayerName},
				{"IP address", net.IP},
				{"Internet", yesNo(net.Internet)},
				{"Power saving", yesNo(saving)},
			}
			return writeTable(cmd.OutOrStdout(), []string{"Field", "Value"}, rows)
		}),
	}
	cmd.AddCommand(
		r.powerCmd("shutdown", "Shut down the kiosk", "Shut down the kiosk?", "Shutting down",
			func(ctx context.Context, c *kiosk.Client) error { return c.Shutdown(ctx) }),
		r.powerCmd("reboot", "Restart the kiosk", "Restart the kiosk?", "Rebooting",
			func(ctx context.Context, c *kiosk.Client) error { return c.Reboot(ctx) }),
		r.updateCmd(),
		r.powerSavingCmd(),
		r.renameCmd("hostname", "Rename the kiosk host",
			func(ctx context.Context, c *kiosk.Client, name, pin string) error { return c.SetHostname(ctx, name, pin) }),
		r.renameCmd("player-name", "Rename the Spotify Connect player",
			func(ctx context.Context, c *kiosk.Client, name, pin string) error { return c.SetPlayerName(ctx, name, pin) }),
	)
	return cmd
}

func (r *root) powerCmd(use, short, question, done string, call func(context.Context, *kiosk.Client) error) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: r.withServices(func(cmd *cobra.Command, _ []string, svc *app.Services) error {
			p := newPrompter(cmd)
			if _, err := r.unlock(cmd.Context(), p, svc, settings.TabSystem); err != nil {
				return err
			}
			if !yes {
				ok, err := p.confirm(question)
				if err != nil || !ok {
					return err
				}
			}
			if err := call(cmd.Context(), svc.Client); err != nil {
				return fmt.Errorf("%s: %w", use, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), done)
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation")
	return cmd
}

func (r *root) updateCmd() *cobra.Command {
	var yes, check bool
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Check for and install a kiosk update",
		Args:  cobra.NoArgs,
		RunE: r.withServices(func(cmd *cobra.Command, _ []string, svc *app.Services) error {
			ctx := cmd.Context()
			p := newPrompter(cmd)
			if _, err := r.unlock(ctx, p, svc, settings.TabSystem); err != nil {
				return err
			}
			info, err := svc.Client.CheckUpdate(ctx)
			if err != nil {
				return fmt.Errorf("check update: %w", err)
			}
			w := cmd.OutOrStdout()
			if !info.Available {
				fmt.Fprintf(w, "Up to date (%s)\n", info.CurrentVersion)
				return nil
			}
			fmt.Fprintf(w, "Update available: %s → %s\n", info.CurrentVersion, bold(info.LatestVersion))
			if notes := strings.TrimSpace(info.ReleaseNotes); notes != "" {
				fmt.Fprintln(w, faint(notes))
			}
			if check {
				return nil
			}
			if !yes {
				ok, err := p.confirm("Install " + info.LatestVersion + "?")
				if err != nil || !ok {
					return err
				}
			}
			if err := svc.Client.StartUpdate(ctx, info.LatestVersion); err != nil {
				return fmt.Errorf("start update: %w", err)
			}
			fmt.Fprintln(w, "Update started, the kiosk will restart")
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "install without asking")
	cmd.Flags().BoolVar(&check, "check", false, "only report whether an update exists")
	return cmd
}

func (r *root) powerSavingCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "power-saving on|off",
		Short:     "Toggle power saving",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"on", "off"},
		RunE: r.withServices(func(cmd *cobra.Command, args []string, svc *app.Services) error {
			if _, err := r.unlock(cmd.Context(), newPrompter(cmd), svc, settings.TabSystem); err != nil {
				return err
			}
			res, err := svc.Client.SetPowerSaving(cmd.Context(), args[0] == "on")
			if err != nil {
				return fmt.Errorf("power saving: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Power saving %s\n", args[0])
			if res.RebootRequired {
				fmt.Fprintln(cmd.OutOrStdout(), yellow("Reboot required to apply"))
			}
			return nil
		}),
	}
}

// renameCmd always asks for the PIN: the backend checks it even when the
// settings tabs are unprotected.
func (r *root) renameCmd(use, short string, call func(ctx context.Context, c *kiosk.Client, name, pin string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name>",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: r.withServices(func(cmd *cobra.Command, args []string, svc *app.Services) error {
			name := strings.Join(args, " ")
			pin, err := r.pin(newPrompter(cmd))
			if err != nil {
				return err
			}
			if err := call(cmd.Context(), svc.Client, name, pin); err != nil {
				if kiosk.IsForbidden(err) {
					return settings.ErrWrongPIN
				}
				return fmt.Errorf("%s: %w", use, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed to %s\n", name)
			return nil
		}),
	}
}

func (r *root) accountCmd() *cobra.Command {
	var showSecret bool
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Show the Spotify account and app credentials",
		Args:  cobra.NoArgs,
		RunE: r.withServices(func(cmd *cobra.Command, _ []string, svc *app.Services) error {
			ctx := cmd.Context()
			if _, err := r.unlock(ctx, newPrompter(cmd), svc, settings.TabAccount); err != nil {
				return err
			}
			info, err := svc.Client.AccountInfo(ctx)
			if err != nil {
				return fmt.Errorf("load account: %w", err)
			}
			secret := maskSecret(info.ClientSecret)
			if showSecret {
				secret = info.ClientSecret
			}
			rows := [][]string{
				{"Name", info.DisplayName},
				{"Email", info.Email},
				{"Product", info.Product},
				{"Client ID", info.ClientID},
				{"Client secret", secret},
			}
			return writeTable(cmd.OutOrStdout(), []string{"Field", "Value"}, rows)
		}),
	}
	cmd.Flags().BoolVar(&showSecret, "show-secret", false, "print the client secret in full")
	cmd.AddCommand(r.credentialsCmd(), r.logoutCmd())
	return cmd
}

func (r *root) credentialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "credentials",
		Short: "Replace the Spotify app credentials and log out",
		Args:  cobra.NoArgs,
		RunE: r.withServices(func(cmd *cobra.Command, _ []string, svc *app.Services) error {
			ctx := cmd.Context()
			p := newPrompter(cmd)
			id, err := p.secret("Client ID: ")
			if err != nil {
				return err
			}
			secret, err := p.secret("Client secret: ")
			if err != nil {
				return err
			}
			pin, err := r.pin(p)
			if err != nil {
				return err
			}
			if err := svc.Client.SetCredentials(ctx, id, secret, pin); err != nil {
				if kiosk.IsForbidden(err) {
					return settings.ErrWrongPIN
				}
				return fmt.Errorf("set credentials: %w", err)
			}
			if err := svc.Client.Logout(ctx); err != nil {
				return fmt.Errorf("logout: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Credentials saved, log in again on the kiosk")
			return nil
		}),
	}
}

func (r *root) logoutCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "End the kiosk's Spotify session",
		Args:  cobra.NoArgs,
		RunE: r.withServices(func(cmd *cobra.Command, _ []string, svc *app.Services) error {
			p := newPrompter(cmd)
			if _, err := r.unlock(cmd.Context(), p, svc, settings.TabAccount); err != nil {
				return err
			}
			if !yes {
				ok, err := p.confirm("Log out of Spotify?")
				if err != nil || !ok {
					return err
				}
			}
			if err := svc.Client.Logout(cmd.Context()); err != nil {
				return fmt.Errorf("logout: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation")
	return cmd
}

func maskSecret(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("•", len(s))
	}
	return strings.Repeat("•", len(s)-4) + s[len(s)-4:]
}

