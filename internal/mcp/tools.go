package mcp

import (
	"context"

	"github.com/claude/tb3/internal/calc"
	"github.com/claude/tb3/internal/lifts"
	"github.com/claude/tb3/internal/plates"
	"github.com/claude/tb3/internal/schedule"
	"github.com/claude/tb3/internal/templates"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGetCurrentMaxes = mcp.NewTool("get_current_maxes",
	mcp.WithDescription("Get the current working max for every tested lift, derived from the full max test history. Each entry includes the estimated one-rep max, the working max in use, and the test it came from."),
)

var toolGetSchedule = mcp.NewTool("get_schedule",
	mcp.WithDescription("Get the fully computed training schedule for the active program: every week, session, and exercise with target weight and plate breakdown."),
	mcp.WithNumber("week", mcp.Description("Limit the response to one week number.")),
)

var toolCalcPlates = mcp.NewTool("calc_plates",
	mcp.WithDescription("Solve plate loading for a target weight against the stored inventory. Barbell loads are per side; belt loads are total."),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Target total weight")),
	mcp.WithBoolean("belt", mcp.Description("Solve for a dip belt instead of a barbell. Defaults to false.")),
	mcp.WithNumber("bar", mcp.Description("Barbell weight. Defaults to the profile's bar weight.")),
)

var toolGetPercentageTable = mcp.NewTool("get_percentage_table",
	mcp.WithDescription("Get the 65-100% working weight table for a given max, rounded to the training increment."),
	mcp.WithNumber("max", mcp.Required(), mcp.Description("Working max to build the table from")),
	mcp.WithNumber("increment", mcp.Description("Rounding increment. Defaults to the profile's setting.")),
)

var toolListTemplates = mcp.NewTool("list_templates",
	mcp.WithDescription("List the training program templates, optionally filtered by training days per week."),
	mcp.WithNumber("days", mcp.Description("Filter by sessions per week (2, 3, or 4).")),
)

// --- Tool handlers ---

func (h *handlers) getCurrentMaxes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := h.appData(ctx)
	if err != nil {
		h.log.Error("mcp get_current_maxes", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(lifts.Current(data))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSchedule(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := h.appData(ctx)
	if err != nil {
		h.log.Error("mcp get_schedule", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if data.ActiveProgram == nil {
		return mcp.NewToolResultError("no active program"), nil
	}

	sched, err := schedule.Generate(data.ActiveProgram, lifts.Current(data), data.Profile, schedule.Inventories{
		Barbell: data.BarbellInventory,
		Belt:    data.BeltInventory,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if week := req.GetInt("week", 0); week > 0 {
		for _, w := range sched.Weeks {
			if w.WeekNumber == week {
				result, err := mcp.NewToolResultJSON(w)
				if err != nil {
					return mcp.NewToolResultError("serialization failed"), nil
				}
				return result, nil
			}
		}
		return mcp.NewToolResultError("week not in schedule"), nil
	}

	result, err := mcp.NewToolResultJSON(sched)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) calcPlates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weight, err := req.RequireFloat("weight")
	if err != nil {
		return mcp.NewToolResultError("weight parameter is required"), nil
	}

	data, err := h.appData(ctx)
	if err != nil {
		h.log.Error("mcp calc_plates", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	var solved plates.Result
	if req.GetBool("belt", false) {
		solved = plates.Belt(weight, data.BeltInventory)
	} else {
		bar := req.GetFloat("bar", data.Profile.BarbellWeight)
		solved = plates.Barbell(weight, bar, data.BarbellInventory)
	}

	result, err := mcp.NewToolResultJSON(solved)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPercentageTable(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	max, err := req.RequireFloat("max")
	if err != nil {
		return mcp.NewToolResultError("max parameter is required"), nil
	}

	increment := req.GetFloat("increment", 0)
	if increment <= 0 {
		increment = 5
		if data, err := h.appData(ctx); err == nil {
			increment = data.Profile.RoundingIncrement
		}
	}

	result, err := mcp.NewToolResultJSON(calc.PercentageTable(max, increment))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listTemplates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	catalog := templates.All
	if days := req.GetInt("days", 0); days > 0 {
		catalog = templates.ForDays(days)
	}

	result, err := mcp.NewToolResultJSON(catalog)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
