package cli

import (
	"github.com/spf13/cobra"

	"github.com/hybridbuilder/covergen/internal/banner"
)

func (c *CLI) layoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "layout [platform]",
		Short:     "Print the layout of one or all banners as TOML",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: banner.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			platforms := banner.Platforms()
			if len(args) == 1 {
				p, err := banner.Lookup(args[0])
				if err != nil {
					return err
				}
				platforms = []banner.Platform{p}
			}
			for i, p := range platforms {
				if i > 0 {
					if _, err := c.Out.Write([]byte("\n")); err != nil {
						return err
					}
				}
				if err := p.WriteLayoutTOML(c.Out); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
