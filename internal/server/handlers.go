package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pinpoint-cli/pinpoint/internal/describe"
	"github.com/pinpoint-cli/pinpoint/internal/node"
	"github.com/pinpoint-cli/pinpoint/internal/session"
	"gopkg.in/yaml.v3"
)

// StringParam extracts a string argument with a default.
func StringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

// FloatParam extracts a numeric argument with a default.
func FloatParam(params map[string]interface{}, key string, def float64) float64 {
	switch v := params[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

// BoolParam extracts a boolean argument with a default.
func BoolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}

func toYAML(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("ok: false\nerror: %s", err)
	}
	return string(b)
}

func pointParam(params map[string]interface{}) node.Point {
	return node.Point{
		X: FloatParam(params, "x", 0),
		Y: FloatParam(params, "y", 0),
	}
}

// stateResult is the common tool response: the session state plus whatever
// descriptor the operation produced.
type stateResult struct {
	OK      bool                 `yaml:"ok"`
	State   string               `yaml:"state"`
	Element *describe.Descriptor `yaml:"element,omitempty"`
	Note    string               `yaml:"note,omitempty"`
}

func (s *Server) handleResolve(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	pt := pointParam(params)
	all := BoolParam(params, "all", false)

	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	type resolveResult struct {
		OK         bool                  `yaml:"ok"`
		Element    *describe.Descriptor  `yaml:"element,omitempty"`
		Candidates []describe.Descriptor `yaml:"candidates,omitempty"`
	}
	var result resolveResult
	if res, ok := s.engine.Resolve(pt); ok {
		result.OK = true
		result.Element = &res.Descriptor
	}
	if all {
		result.Candidates = s.engine.ResolveAll(pt)
	}
	return mcp.NewToolResultText(toYAML(result)), nil
}

func (s *Server) handleHover(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pt := pointParam(request.GetArguments())

	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	s.session.PointerMoved(pt)
	result := stateResult{
		OK:      true,
		State:   s.session.State().String(),
		Element: s.session.Hovered(),
	}
	return mcp.NewToolResultText(toYAML(result)), nil
}

func (s *Server) handleSelect(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pt := pointParam(request.GetArguments())

	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	desc, ok := s.session.Click(pt)
	result := stateResult{
		OK:      ok,
		State:   s.session.State().String(),
		Element: desc,
	}
	if !ok {
		result.Note = "nothing under point"
	}
	return mcp.NewToolResultText(toYAML(result)), nil
}

func (s *Server) handleSubmit(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	feedback := StringParam(request.GetArguments(), "feedback", "")

	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	s.session.SetDraft(feedback)
	entry, ok := s.session.Submit()
	if !ok {
		result := stateResult{
			OK:    false,
			State: s.session.State().String(),
			Note:  "submit requires an active selection and non-empty feedback",
		}
		return mcp.NewToolResultError(toYAML(result)), nil
	}
	return mcp.NewToolResultText(toYAML(entry)), nil
}

func (s *Server) handleCancel(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	s.session.Cancel()
	return mcp.NewToolResultText(toYAML(stateResult{OK: true, State: s.session.State().String()})), nil
}

func (s *Server) handleHide(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	s.session.Hide()
	return mcp.NewToolResultText(toYAML(stateResult{OK: true, State: s.session.State().String()})), nil
}

func (s *Server) handleHistory(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	type historyResult struct {
		Count   int             `yaml:"count"`
		Entries []session.Entry `yaml:"entries,omitempty"`
	}
	entries := s.session.History().Entries()
	return mcp.NewToolResultText(toYAML(historyResult{Count: len(entries), Entries: entries})), nil
}

func (s *Server) handleClearHistory(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	s.session.ClearHistory()
	return mcp.NewToolResultText("ok: true\n"), nil
}
