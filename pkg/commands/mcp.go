package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cyberride/pkg/commands/options"
	"tableflip.dev/cyberride/pkg/runner/mcp"
	"tableflip.dev/cyberride/pkg/timeutil"
)

func addMCP(topLevel *cobra.Command) {
	var (
		transport string
		next      string
		http      mcp.HTTP
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the tracker over the Model Context Protocol.",
		Long: options.Help(
			"Launch an MCP server that exposes the tracker data, the dashboard and every tracker operation as tools.",
			"The data file is watched while the server runs, so edits made with other commands show up without a restart."),
		Example: `
cyberride mcp
cyberride mcp --transport stdio
cyberride mcp --http-host 0.0.0.0 --http-port 0 --next 2w
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			t, err := mcp.ParseTransport(transport)
			if err != nil {
				return err
			}

			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.app.Close()

			w := next
			if w == "" {
				w = s.cfg.UpcomingWindow()
			}
			window, _, err := timeutil.ParseWindow(w)
			if err != nil {
				return err
			}

			return mcp.Runner{
				App:       s.app,
				Name:      "cyberride",
				Version:   version,
				Window:    window,
				Transport: t,
				HTTP:      http,
				Out:       cmd.OutOrStdout(),
				Logger:    logger,
			}.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportHTTP), "Transport to use: http or stdio.")
	cmd.Flags().StringVar(&http.Host, "http-host", mcp.DefaultHost, "Interface the HTTP transport binds.")
	cmd.Flags().IntVar(&http.Port, "http-port", mcp.DefaultPort, "Port for the HTTP transport; 0 picks a free one.")
	cmd.Flags().StringVar(&http.Path, "http-path", mcp.DefaultPath, "HTTP endpoint path.")
	cmd.Flags().StringVar(&http.Cert, "http-tls-cert", "", "TLS certificate file for HTTPS.")
	cmd.Flags().StringVar(&http.Key, "http-tls-key", "", "TLS private key file for HTTPS.")
	cmd.Flags().StringVar(&next, "next", "", "Default look-ahead for the report; defaults to upcoming_window from the config.")

	topLevel.AddCommand(cmd)
}
