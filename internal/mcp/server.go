// Package mcp exposes the tracker to LLM agents over the Model Context
// Protocol: current maxes, computed schedules, plate math, and the template
// catalog.
package mcp

import (
	"context"
	"log/slog"

	"github.com/claude/tb3/internal/models"
	"github.com/claude/tb3/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(db *storage.DB, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("TB3", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("TB3 strength program tracker. Query current one-rep maxes, the computed training schedule, plate loading, percentage tables, and the program template catalog."),
	)

	h := &handlers{db: db, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolGetCurrentMaxes, Handler: h.getCurrentMaxes},
		server.ServerTool{Tool: toolGetSchedule, Handler: h.getSchedule},
		server.ServerTool{Tool: toolCalcPlates, Handler: h.calcPlates},
		server.ServerTool{Tool: toolGetPercentageTable, Handler: h.getPercentageTable},
		server.ServerTool{Tool: toolListTemplates, Handler: h.listTemplates},
	)

	s.AddResources(
		server.ServerResource{Resource: resCurrentProgram, Handler: h.currentProgram},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	db  *storage.DB
	log *slog.Logger
}

func (h *handlers) appData(ctx context.Context) (*models.AppData, error) {
	return h.db.LoadAppData(ctx)
}

// --- Resource definitions ---

var resCurrentProgram = mcp.NewResource(
	"tb3://current_program",
	"Current Program",
	mcp.WithResourceDescription("The active training program with its fully computed schedule and current week/session position"),
	mcp.WithMIMEType("application/json"),
)
