// Package server exposes the resolution engine and annotate session over
// the Model Context Protocol, so agents can drive the same hover/select
// loop an interactive user does.
package server

import (
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/pinpoint-cli/pinpoint/internal/fixture"
	"github.com/pinpoint-cli/pinpoint/internal/resolve"
	"github.com/pinpoint-cli/pinpoint/internal/session"
)

// Config holds server configuration.
type Config struct {
	Transport string // "stdio" or "streamable-http"
	Port      int
	TreePath  string
	App       string
	Policy    resolve.Policy
	Sink      session.Sink
}

// Server wraps one engine plus one annotate session behind MCP tools. MCP
// handlers arrive on arbitrary goroutines; sessionMu marshals them onto the
// session's single logical thread.
type Server struct {
	tree      *fixture.Tree
	engine    *resolve.Engine
	session   *session.Session
	sessionMu sync.Mutex
	mcp       *mcpserver.MCPServer
}

// New loads the tree and assembles the server.
func New(cfg Config) (*Server, error) {
	tree, err := fixture.Load(cfg.TreePath)
	if err != nil {
		return nil, err
	}
	app := cfg.App
	if app == "" {
		app = tree.App
	}
	engine := resolve.New(tree, cfg.Policy)
	s := &Server{
		tree:   tree,
		engine: engine,
		session: session.New(session.Config{
			Engine: engine,
			App:    app,
			Sink:   cfg.Sink,
		}),
	}
	s.mcp = mcpserver.NewMCPServer("pinpoint", "1.0.0")
	s.registerTools()
	return s, nil
}

// Serve starts the configured transport and blocks.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("resolve",
			mcp.WithDescription("Resolve a point to the most relevant UI element. Stateless: does not touch hover or selection."),
			mcp.WithNumber("x", mcp.Description("Query point X"), mcp.Required()),
			mcp.WithNumber("y", mcp.Description("Query point Y"), mcp.Required()),
			mcp.WithBoolean("all", mcp.Description("Include the full ranked candidate set")),
		),
		s.handleResolve,
	)

	s.mcp.AddTool(
		mcp.NewTool("hover",
			mcp.WithDescription("Move the hover highlight to the element under a point"),
			mcp.WithNumber("x", mcp.Description("Pointer X"), mcp.Required()),
			mcp.WithNumber("y", mcp.Description("Pointer Y"), mcp.Required()),
		),
		s.handleHover,
	)

	s.mcp.AddTool(
		mcp.NewTool("select",
			mcp.WithDescription("Select the element under a point and start a feedback draft"),
			mcp.WithNumber("x", mcp.Description("Click X"), mcp.Required()),
			mcp.WithNumber("y", mcp.Description("Click Y"), mcp.Required()),
		),
		s.handleSelect,
	)

	s.mcp.AddTool(
		mcp.NewTool("submit",
			mcp.WithDescription("Submit feedback for the selected element: appends to history and emits the rendered document"),
			mcp.WithString("feedback", mcp.Description("Feedback text (required, non-empty)"), mcp.Required()),
		),
		s.handleSubmit,
	)

	s.mcp.AddTool(
		mcp.NewTool("cancel",
			mcp.WithDescription("Cancel the current selection, close the history panel, or exit annotation mode"),
		),
		s.handleCancel,
	)

	s.mcp.AddTool(
		mcp.NewTool("hide",
			mcp.WithDescription("Deactivate the overlay: removes all highlights, keeps history"),
		),
		s.handleHide,
	)

	s.mcp.AddTool(
		mcp.NewTool("history",
			mcp.WithDescription("List submitted annotations in submission order"),
		),
		s.handleHistory,
	)

	s.mcp.AddTool(
		mcp.NewTool("clear_history",
			mcp.WithDescription("Remove all annotation history entries"),
		),
		s.handleClearHistory,
	)
}
