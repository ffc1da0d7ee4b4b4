package cli

import (
	"github.com/spf13/cobra"

	"github.com/hybridbuilder/covergen/internal/app"
	"github.com/hybridbuilder/covergen/internal/banner"
)

type generateOpts struct {
	outputDir string
	qrCode    bool
}

func bindGenerateFlags(cmd *cobra.Command, opts *generateOpts) {
	cmd.Flags().StringVarP(&opts.outputDir, "out", "o", opts.outputDir, "directory the PNG files are written to")
	cmd.Flags().BoolVar(&opts.qrCode, "qr", false, "stamp a QR code of the footer link on the LinkedIn and Twitter images")
}

func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{outputDir: app.DefaultOutputDir}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render all banners to PNG files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, opts)
		},
	}
	bindGenerateFlags(cmd, &opts)
	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts generateOpts) error {
	gen := &app.Generator{
		OutputDir: opts.outputDir,
		Fonts:     c.fonts(),
		Options:   banner.Options{QRCode: opts.qrCode},
		Logger:    c.Logger,
		Out:       c.Out,
	}
	results, err := gen.Generate(cmd.Context())
	if err != nil {
		return err
	}
	c.Logger.Debugf("cli", "generated %d banners in %s", len(results), opts.outputDir)
	return nil
}
