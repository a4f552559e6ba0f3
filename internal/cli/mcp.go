package cli

import (
	"github.com/spf13/cobra"

	"github.com/five82/deck/internal/app"
	"github.com/five82/deck/internal/mcpserver"
)

func (r *root) mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve kiosk controls to MCP clients over stdio",
		Long: `Launch a Model Context Protocol server on stdin/stdout so AI agents can
check what is playing, control playback, search the library and move
playback between devices. Logs go to the log file only.`,
		Args: cobra.NoArgs,
		RunE: r.withServices(func(cmd *cobra.Command, _ []string, svc *app.Services) error {
			svc.Logger.Info("mcp server starting", "backend", svc.Client.BaseURL())
			return mcpserver.Serve(cmd.Context(), mcpserver.Deps{
				Player:  svc.Client,
				Library: svc.Library,
				Devices: svc.Client,
				Logger:  svc.Logger,
			}, version)
		}),
	}
}
