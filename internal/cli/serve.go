package cli

import (
	"github.com/spf13/cobra"

	"github.com/hybridbuilder/covergen/internal/web"
)

func (c *CLI) serveCommand() *cobra.Command {
	var listen string
	var dev bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve freshly rendered banners over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := web.DefaultServerConfigFromEnv(web.DefaultListenAddr)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("listen") {
				cfg.ListenAddr = listen
			}
			if cmd.Flags().Changed("dev") {
				cfg.DevMode = dev
			}

			handler := web.NewRouter(web.RouterConfig{Fonts: c.fonts(), Logger: c.Logger, DevMode: cfg.DevMode})
			server := web.NewHTTPServer(cfg, handler)
			server.Logger = c.Logger

			ctx := cmd.Context()
			if err := server.Start(ctx); err != nil {
				return err
			}
			printInfo(c.Out, "Serving banners on http://%s/banners/{platform}.png", server.Addr)
			<-ctx.Done()
			return server.Stop()
		},
	}
	cmd.Flags().StringVar(&listen, "listen", web.DefaultListenAddr, "listen address; also configurable via "+web.EnvListenAddr)
	cmd.Flags().BoolVar(&dev, "dev", false, "allow cross-origin requests; also configurable via "+web.EnvDevMode)
	return cmd
}
