package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/tb3/internal/lifts"
	"github.com/claude/tb3/internal/schedule"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) currentProgram(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := h.appData(ctx)
	if err != nil {
		return nil, err
	}

	doc := map[string]any{"program": data.ActiveProgram}
	if data.ActiveProgram != nil {
		sched, err := schedule.Generate(data.ActiveProgram, lifts.Current(data), data.Profile, schedule.Inventories{
			Barbell: data.BarbellInventory,
			Belt:    data.BeltInventory,
		})
		if err != nil {
			h.log.Warn("current_program: schedule generation failed", "error", err)
		} else {
			doc["schedule"] = sched
			doc["restSeconds"] = schedule.RestDuration(data.Profile, data.ActiveProgram, sched)
		}
	}

	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(encoded),
		},
	}, nil
}
