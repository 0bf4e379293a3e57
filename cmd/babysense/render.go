package main

import (
	"bytes"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aibabysense/landing/internal/config"
	"github.com/aibabysense/landing/internal/content"
	"github.com/aibabysense/landing/internal/errors"
	"github.com/aibabysense/landing/internal/page"
	"github.com/aibabysense/landing/pkg/render"
	"github.com/aibabysense/landing/pkg/server"
)

func renderCmd(configPath *string) *cobra.Command {
	var (
		output string
		static bool
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the page to HTML",
		Long: `Render the landing page in its initial state and write it to a file
or stdout.

With --static the page carries no thin client: every section is shown
without reveal animations and the carousel stays on the first
testimonial.

Examples:
  babysense render > index.html
  babysense render --static --pretty -o public/index.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := renderPage(&buf, cfg, !static, pretty); err != nil {
				return errors.New("E402").Wrap(err)
			}

			if output == "" || output == "-" {
				_, err := io.Copy(cmd.OutOrStdout(), &buf)
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return errors.New("E401").WithDetailf("Writing %s failed.", output).Wrap(err)
			}
			success(cmd.ErrOrStderr(), "Wrote %s (%d bytes)", output, buf.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&static, "static", false, "Omit the thin client")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the HTML")

	return cmd
}

// renderPage writes the document of a fresh view.
func renderPage(w io.Writer, cfg *config.Config, live, pretty bool) error {
	view := page.NewView(content.Default(), page.Options{
		RotateInterval: cfg.UI.RotateInterval,
		RevealMargin:   cfg.UI.RevealMargin,
	})
	var client *render.ClientConfig
	if live {
		client = &render.ClientConfig{
			Script: server.ClientPath,
			Socket: server.SocketPath,
			Debug:  cfg.Server.DevMode,
		}
	}
	r := render.NewRenderer(render.RendererConfig{Pretty: pretty})
	return r.RenderPage(w, view.Document(client))
}
