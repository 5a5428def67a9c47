package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/miniart/internal/config"
	"github.com/matzehuels/miniart/internal/server"
	"github.com/matzehuels/miniart/pkg/observability"
	"github.com/matzehuels/miniart/pkg/pipeline"
)

type serveOpts struct {
	config   string
	addr     string
	noCache  bool
	sanitize bool
}

// serveCommand creates the serve command, which runs the gallery server.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the gallery web server",
		Long: `Run the gallery web server.

Configuration is read from --config (TOML), then PORT, MINIART_ADDR and
MINIART_REDIS_URL from the environment, then the flags below.`,
		Example: `  miniart serve
  miniart serve --addr :9000 --no-cache
  MINIART_REDIS_URL=redis://localhost:6379/0 miniart serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.config)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = opts.addr
			}
			if cmd.Flags().Changed("sanitize") {
				cfg.Server.Sanitize = opts.sanitize
			}
			if opts.noCache {
				cfg.Cache.Backend = config.BackendNone
			}
			return c.runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "config file (TOML)")
	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default :"+config.DefaultPort+")")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.sanitize, "sanitize", true, "drop query values that could escape the stylesheet")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, cfg *config.Config) error {
	logger := loggerFromContext(ctx)

	dir, _ := cacheDir()
	store, err := cfg.Cache.Open(ctx, dir)
	if err != nil {
		return fmt.Errorf("open %s cache: %w", cfg.Cache.Backend, err)
	}
	runner := pipeline.NewRunner(store, cfg.Cache.Keyer(), logger)
	runner.TTL = cfg.Cache.TTL.Duration
	defer runner.Close()

	observability.NewLogHooks(logger).Install()
	defer observability.Reset()

	srv, err := server.New(cfg, runner, logger)
	if err != nil {
		return err
	}
	logger.Info("starting gallery", "addr", cfg.Server.Addr, "cache", cfg.Cache.Backend, "sanitize", cfg.Server.Sanitize)
	return srv.ListenAndServe(ctx)
}
