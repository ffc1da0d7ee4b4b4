package cli

import (
	"github.com/spf13/cobra"

	"github.com/hybridbuilder/covergen/internal/banner"
	"github.com/hybridbuilder/covergen/internal/render"
)

func (c *CLI) previewCommand() *cobra.Command {
	var device string
	var qr bool
	cmd := &cobra.Command{
		Use:       "preview [platform]",
		Short:     "Show a banner on a Linux framebuffer",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: banner.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "twitter"
			if len(args) == 1 {
				name = args[0]
			}
			p, err := banner.Lookup(name)
			if err != nil {
				return err
			}
			canvas, err := p.Render(c.fonts(), banner.Options{QRCode: qr})
			if err != nil {
				return err
			}
			preview := render.NewFBPreview(device)
			preview.Logger = c.Logger
			if err := preview.Show(canvas.Image()); err != nil {
				return err
			}
			printSuccess(c.Out, "%s shown on %s", p.Label, preview.Device)
			return nil
		},
	}
	cmd.Flags().StringVar(&device, "device", render.DefaultFramebuffer, "framebuffer device")
	cmd.Flags().BoolVar(&qr, "qr", false, "include the QR code stamp")
	return cmd
}
