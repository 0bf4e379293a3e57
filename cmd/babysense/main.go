// Command babysense serves the AI BabySense landing page.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aibabysense/landing/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "babysense",
		Short: "The AI BabySense landing page",
		Long: `babysense serves the AI BabySense landing page.

The page is rendered on the server. Each open page keeps a live
WebSocket through which the server drives the menu, the testimonial
carousel, the scrolled header and the section reveals.

Configuration is read from landing.json (or --config) and
LANDING_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the configuration file (default ./landing.json)")

	rootCmd.AddCommand(
		serveCmd(&configPath),
		renderCmd(&configPath),
		versionCmd(),
	)
	return rootCmd
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}
