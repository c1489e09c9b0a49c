package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/waterjug/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the solver as an MCP Server.
This allows AI agents (like Claude Desktop) to call solve_water_jug as a tool.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")
		if sse, _ := cmd.Flags().GetBool("sse"); sse {
			transport = "sse"
		}
		port, _ := cmd.Flags().GetInt("port")

		svc, cleanup, err := buildService(cmd.Context(), cfg, nil)
		if err != nil {
			return err
		}
		defer cleanup()

		srv := mcp.NewServer(svc, logger)

		switch transport {
		case "stdio":
			// Logs go to stderr so they never corrupt JSON-RPC on stdout.
			logger.Info("Starting waterjug MCP Server (Stdio)")
			return srv.ServeStdio()
		case "sse":
			logger.Info("Starting waterjug MCP Server (SSE)", "port", port)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("MCP server failed: %w", err)
			}
			logger.Info("MCP Server stopped gracefully")
			return nil
		default:
			return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Bool("sse", false, "Shorthand for --transport sse")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
}
