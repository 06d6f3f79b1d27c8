// Package mcpserver exposes the codec over the Model Context Protocol,
// mirroring a3tai-mcp-pdf-reader's internal/mcp server: one mark3labs/
// mcp-go tool per CLI-level operation, each wrapping dxf.Open/Save
// rather than re-implementing anything.
package mcpserver

import (
	"context"
	"fmt"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/zooyer/godxf"
	"github.com/zooyer/godxf/internal/clihelpers"
	"github.com/zooyer/godxf/version"
)

const (
	serverName    = "dxf-mcp"
	serverVersion = "1.0.0"
)

// Server wraps a mark3labs/mcp-go server with the dxf_load, dxf_inspect,
// dxf_convert, and dxf_list_entities tools registered.
type Server struct {
	mcpServer *server.MCPServer
	// docs caches documents loaded by dxf_load under a caller-chosen
	// handle, so dxf_inspect/dxf_convert/dxf_list_entities can operate
	// on an already-parsed document without re-reading the file.
	docs map[string]*dxf.Document
}

// NewServer constructs a Server with every tool registered.
func NewServer() *Server {
	s := &Server{
		mcpServer: server.NewMCPServer(serverName, serverVersion, server.WithToolCapabilities(false)),
		docs:      make(map[string]*dxf.Document),
	}
	s.registerTools()
	return s
}

// Run serves the tools over stdio, the transport MCP clients such as
// Claude Desktop speak by default.
func (s *Server) Run() error {
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("mcpserver: serve stdio: %w", err)
	}
	return nil
}

func (s *Server) registerTools() {
	loadTool := mcp.NewTool("dxf_load",
		mcp.WithDescription("Parse a DXF drawing file and cache it under a handle for later tools"),
		mcp.WithString("path", mcp.Required(), mcp.Description("Full path to the DXF file")),
		mcp.WithString("handle", mcp.Required(), mcp.Description("Name to cache the parsed document under")),
	)
	s.mcpServer.AddTool(loadTool, s.handleLoad)

	inspectTool := mcp.NewTool("dxf_inspect",
		mcp.WithDescription("Summarize a previously loaded drawing: version, section sizes, layer names"),
		mcp.WithString("handle", mcp.Required(), mcp.Description("Handle returned by dxf_load")),
	)
	s.mcpServer.AddTool(inspectTool, s.handleInspect)

	convertTool := mcp.NewTool("dxf_convert",
		mcp.WithDescription("Re-save a previously loaded drawing at a different AutoCAD release"),
		mcp.WithString("handle", mcp.Required(), mcp.Description("Handle returned by dxf_load")),
		mcp.WithString("target", mcp.Required(), mcp.Description("Target release name, e.g. R2000, R2013")),
		mcp.WithString("out", mcp.Required(), mcp.Description("Output file path")),
	)
	s.mcpServer.AddTool(convertTool, s.handleConvert)

	listTool := mcp.NewTool("dxf_list_entities",
		mcp.WithDescription("List the entity type names present in a previously loaded drawing, with counts"),
		mcp.WithString("handle", mcp.Required(), mcp.Description("Handle returned by dxf_load")),
	)
	s.mcpServer.AddTool(listTool, s.handleListEntities)
}

func (s *Server) handleLoad(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	handle, err := req.RequireString("handle")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := dxf.Open(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.docs[handle] = doc

	return mcp.NewToolResultText(fmt.Sprintf(
		"loaded %s as %q: version %s, %d entities, %d blocks",
		path, handle, doc.Version, len(doc.Entities), doc.Blocks.Len(),
	)), nil
}

func (s *Server) resolve(handle string) (*dxf.Document, error) {
	doc, ok := s.docs[handle]
	if !ok {
		return nil, fmt.Errorf("no document loaded under handle %q", handle)
	}
	return doc, nil
}

func (s *Server) handleInspect(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	handle, err := req.RequireString("handle")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	doc, err := s.resolve(handle)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var layers []string
	for _, l := range doc.Tables.Layer.All() {
		layers = append(layers, l.Name)
	}
	sort.Strings(layers)

	text := fmt.Sprintf(
		"version: %s\nentities: %d\nblocks: %d\nobjects: %d\nlayers (%d): %v\n",
		doc.Version, len(doc.Entities), doc.Blocks.Len(), len(doc.Objects), len(layers), layers,
	)
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleConvert(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	handle, err := req.RequireString("handle")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	targetName, err := req.RequireString("target")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := req.RequireString("out")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := s.resolve(handle)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	target, err := version.ParseName(targetName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	doc.Version = target
	if err := doc.SaveFile(out); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("saved %q at %s", out, target)), nil
}

func (s *Server) handleListEntities(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	handle, err := req.RequireString("handle")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	doc, err := s.resolve(handle)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	counts := clihelpers.EntityCounts(doc.Entities)
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	text := ""
	for _, k := range kinds {
		text += fmt.Sprintf("%s: %d\n", k, counts[k])
	}
	if text == "" {
		text = "(no entities)\n"
	}
	return mcp.NewToolResultText(text), nil
}
