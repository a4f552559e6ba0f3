package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/five82/deck/internal/app"
	"github.com/five82/deck/internal/config"
	"github.com/five82/deck/internal/prefs"
)

// Set by the linker at release time.
var (
	version = "dev"
	commit  = "none"
)

// envFile is loaded before flags are resolved so DECK_* variables can live
// next to the binary.
const envFile = ".env"

// root carries the resolved flag and environment layer shared by every
// subcommand.
type root struct {
	v *viper.Viper
}

// Execute runs the deck command tree.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds a fresh command tree. Each call has its own viper
// instance so tests can run commands side by side.
func NewRootCommand() *cobra.Command {
	r := &root{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Terminal remote for the Spotify kiosk",
		Long: `deck drives a Spotify kiosk backend from the terminal.

Run without a subcommand to open the full-screen remote. The subcommands
cover the same actions for scripts and quick checks.`,
		Version:           fmt.Sprintf("%s (%s)", version, commit),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: r.setup,
		RunE:              r.runTUI,
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file (default "+config.DefaultPath()+")")
	flags.String("backend", "", "kiosk backend host:port or URL")
	flags.String("language", "", "UI language (en, nl)")
	flags.String("cache-backend", "", "library cache backend (bolt, sqlite, memory)")
	flags.String("cache-path", "", "library cache file")
	flags.String("log-file", "", "log file")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("prefs", "", "preferences file (default "+prefs.DefaultPath()+")")
	cmd.Flags().String("view", "", `start view, e.g. "view=artists&artist=<id>"`)

	cmd.AddCommand(
		r.statusCmd(),
		r.transportCmd("play", "Resume playback", "Playing"),
		r.transportCmd("pause", "Pause playback", "Paused"),
		r.transportCmd("next", "Skip to the next track", "Skipped"),
		r.transportCmd("prev", "Go back to the previous track", "Back"),
		r.shuffleCmd(),
		r.seekCmd(),
		r.volumeCmd(),
		r.playlistsCmd(),
		r.artistsCmd(),
		r.searchCmd(),
		r.devicesCmd(),
		r.audioCmd(),
		r.cacheCmd(),
		r.systemCmd(),
		r.accountCmd(),
		r.logsCmd(),
		r.mcpCmd(),
	)
	return cmd
}

// setup loads the env file and binds flags so that flag > env > file.
func (r *root) setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envFile, err)
	}
	r.v.SetEnvPrefix("DECK")
	r.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	r.v.AutomaticEnv()
	if err := r.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	return nil
}

// loadConfig reads the config file and applies flag and env overrides.
func (r *root) loadConfig() (config.Config, error) {
	cfg, err := config.Load(r.v.GetString("config"))
	if err != nil {
		return config.Config{}, err
	}
	if v := strings.TrimSpace(r.v.GetString("backend")); v != "" {
		cfg.Backend = v
	}
	if v := strings.ToLower(strings.TrimSpace(r.v.GetString("language"))); v != "" {
		cfg.Language = v
	}
	if v := strings.ToLower(strings.TrimSpace(r.v.GetString("cache-backend"))); v != "" {
		switch v {
		case config.CacheBolt, config.CacheMemory:
		case config.CacheSQLite:
			if cfg.Cache.Backend != config.CacheSQLite {
				cfg.Cache.Path = filepath.Join(filepath.Dir(cfg.Cache.Path), "library.sqlite")
			}
		default:
			return config.Config{}, fmt.Errorf("unknown cache backend %q", v)
		}
		cfg.Cache.Backend = v
	}
	if v := r.v.GetString("cache-path"); strings.TrimSpace(v) != "" {
		if cfg.Cache.Path, err = config.ExpandPath(v); err != nil {
			return config.Config{}, fmt.Errorf("cache path: %w", err)
		}
	}
	if v := r.v.GetString("log-file"); strings.TrimSpace(v) != "" {
		if cfg.Log.File, err = config.ExpandPath(v); err != nil {
			return config.Config{}, fmt.Errorf("log file: %w", err)
		}
	}
	if v := strings.ToLower(strings.TrimSpace(r.v.GetString("log-level"))); v != "" {
		cfg.Log.Level = v
	}
	return cfg, nil
}

// open resolves the config and builds the shared services. Callers Close
// the result.
func (r *root) open() (*app.Services, error) {
	cfg, err := r.loadConfig()
	if err != nil {
		return nil, err
	}
	return app.Open(cfg)
}

func (r *root) prefs() prefs.Prefs {
	p, _ := prefs.Load(r.v.GetString("prefs"))
	return p
}

func (r *root) runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := r.loadConfig()
	if err != nil {
		return err
	}
	return app.Run(cmd.Context(), app.Options{
		Config:    cfg,
		PrefsPath: r.v.GetString("prefs"),
		View:      r.v.GetString("view"),
	})
}

// withServices wraps a RunE body with service setup and teardown.
func (r *root) withServices(fn func(cmd *cobra.Command, args []string, svc *app.Services) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		svc, err := r.open()
		if err != nil {
			return err
		}
		defer func() { _ = svc.Close() }()
		return fn(cmd, args, svc)
	}
}
