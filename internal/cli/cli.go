// Package cli implements the covergen command-line interface.
//
// Running covergen with no arguments renders the LinkedIn, Substack and
// Twitter banners into the default output directory. The other commands
// print a platform's layout, serve banners over HTTP and show one on a
// Linux framebuffer.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hybridbuilder/covergen/internal/app"
	"github.com/hybridbuilder/covergen/internal/render"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// EnvStdioLog names the environment default for --stdio-log.
const EnvStdioLog = "COVERGEN_STDIO_LOG"

// CLI holds state shared by all commands.
type CLI struct {
	Logger app.CharmLogger
	// Out receives progress lines; Err receives logs.
	Out io.Writer
}

// New creates a CLI that logs to errOut and prints progress to out.
func New(out, errOut io.Writer, level log.Level) *CLI {
	return &CLI{Logger: app.NewLogger(errOut, level), Out: out}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command. Without a subcommand it generates
// every banner, exactly like "covergen generate".
func (c *CLI) RootCommand() *cobra.Command {
	opts := generateOpts{outputDir: app.DefaultOutputDir}
	root := &cobra.Command{
		Use:           "covergen",
		Short:         "Render the LinkedIn, Substack and Twitter cover images",
		Long:          `covergen draws the promotional banners for the learning design pillars article and writes them as PNG files.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, opts)
		},
	}
	bindGenerateFlags(root, &opts)

	var verbose bool
	var stdioLog string
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&stdioLog, "stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via "+EnvStdioLog)
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(LogDebug)
		}
		path := stdioLog
		if path == "" {
			path = os.Getenv(EnvStdioLog)
		}
		if path != "" {
			if err := redirectStdIO(path); err != nil {
				c.Logger.Errorf("cli", "stdio log redirect: %v", err)
			}
		}
		return nil
	}

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.previewCommand())
	return root
}

func (c *CLI) fonts() *render.Resolver {
	resolver := render.NewResolver()
	resolver.Logger = c.Logger
	return resolver
}
