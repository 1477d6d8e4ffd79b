package cmd

import (
	"fmt"

	"github.com/pinpoint-cli/pinpoint/internal/clipboard"
	"github.com/pinpoint-cli/pinpoint/internal/server"
	"github.com/pinpoint-cli/pinpoint/internal/session"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the resolution engine and annotate session",
	Long: `Start a Model Context Protocol (MCP) server over a tree document. Agents
drive the same hover/select/submit loop an interactive user does; submitted
annotations land on the clipboard and in the session history.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  pinpoint serve --tree app.yaml
  pinpoint serve --tree app.yaml --transport streamable-http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addTreeFlag(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().String("app", "", "Application name for rendered output (defaults to the tree's app field)")
	serveCmd.Flags().Bool("no-clipboard", false, "Keep rendered output in memory instead of the system clipboard")
}

func runServe(cmd *cobra.Command, args []string) error {
	treePath, _ := cmd.Flags().GetString("tree")
	if treePath == "" {
		return fmt.Errorf("--tree is required")
	}
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	app, _ := cmd.Flags().GetString("app")
	noClipboard, _ := cmd.Flags().GetBool("no-clipboard")

	var sink session.Sink
	if noClipboard {
		sink = &clipboard.Memory{}
	} else {
		if cb, err := clipboard.New(); err == nil {
			sink = cb
		} else {
			sink = &clipboard.Memory{}
		}
	}

	cfg := server.Config{
		Transport: transport,
		Port:      port,
		TreePath:  treePath,
		App:       app,
		Policy:    policyFromFlags(cmd),
		Sink:      sink,
	}
	s, err := server.New(cfg)
	if err != nil {
		return err
	}
	return s.Serve(cfg)
}
