package commands

import (
	"fmt"
	"net"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	mo := &options.MCPOptions{}
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start the Model Context Protocol server.",
		Long: `Launch an MCP server that lets an assistant read and write diary entries,
list the month documents and keep the main document in sync.`,
		Example: `
diary mcp
diary mcp --transport=http --http-port=0
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, j, err := openDiary()
			if err != nil {
				return err
			}
			ctx, cancel := signalContext()
			defer cancel()

			runner := mcp.Runner{
				Journal:          j,
				Dates:            do.Resolver(),
				Name:             "diary",
				Version:          version,
				HTTPEndpointPath: mo.EndpointPath(),
				HTTPServerCert:   strings.TrimSpace(mo.TLSCert),
				HTTPServerKey:    strings.TrimSpace(mo.TLSKey),
			}

			switch strings.ToLower(strings.TrimSpace(mo.Transport)) {
			case "", string(mcp.TransportStdio):
				runner.Transport = mcp.TransportStdio
			case string(mcp.TransportHTTP):
				addr, err := mo.ListenAddr()
				if err != nil {
					return err
				}
				runner.Transport = mcp.TransportHTTP
				runner.HTTPListenAddr = addr
				runner.OnHTTPListening = func(a net.Addr) {
					scheme := "http"
					if runner.HTTPServerCert != "" {
						scheme = "https"
					}
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "MCP HTTP server listening on %s://%s%s\n", scheme, a, runner.HTTPEndpointPath)
				}
			default:
				return fmt.Errorf("unsupported transport %q (expected stdio or http)", mo.Transport)
			}

			return runner.Do(ctx)
		},
	}

	options.AddMCPArgs(cmd, mo)
	cmd.Flags().BoolVar(&do.AllowFuture, "allow-future", false, "Accept entries dated after today.")

	topLevel.AddCommand(cmd)
}
