package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/claude/tb3/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
)

func testHandlers(t *testing.T) *handlers {
	t.Helper()
	db, err := storage.New(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	schema, err := os.ReadFile("../../migrations/0001_init.up.sql")
	if err != nil {
		t.Fatalf("reading schema: %v", err)
	}
	if _, err := db.SQL.Exec(string(schema)); err != nil {
		t.Fatalf("applying schema: %v", err)
	}

	return &handlers{db: db, log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func callWith(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result.IsError {
		t.Fatalf("tool returned error: %+v", result.Content)
	}
	if len(result.Content) == 0 {
		t.Fatal("tool returned no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", result.Content[0])
	}
	return text.Text
}

// TestCalcPlatesTool verifies barbell solving through the tool surface.
func TestCalcPlatesTool(t *testing.T) {
	h := testHandlers(t)

	result, err := h.calcPlates(context.Background(), callWith(map[string]any{"weight": 135.0}))
	if err != nil {
		t.Fatal(err)
	}
	var solved map[string]any
	if err := json.Unmarshal([]byte(resultText(t, result)), &solved); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if solved["achievable"] != true {
		t.Errorf("achievable = %v, want true", solved["achievable"])
	}
	if solved["displayText"] != "45 per side" {
		t.Errorf("displayText = %v, want %q", solved["displayText"], "45 per side")
	}
}

// TestCalcPlatesToolRequiresWeight verifies the missing-parameter error path.
func TestCalcPlatesToolRequiresWeight(t *testing.T) {
	h := testHandlers(t)

	result, err := h.calcPlates(context.Background(), callWith(map[string]any{}))
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsError {
		t.Error("expected an error result without a weight argument")
	}
}

// TestGetPercentageTableTool verifies the table tool with an explicit
// increment.
func TestGetPercentageTableTool(t *testing.T) {
	h := testHandlers(t)

	result, err := h.getPercentageTable(context.Background(),
		callWith(map[string]any{"max": 315.0, "increment": 2.5}))
	if err != nil {
		t.Fatal(err)
	}
	var rows []map[string]any
	if err := json.Unmarshal([]byte(resultText(t, result)), &rows); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(rows) != 8 {
		t.Errorf("row count = %d, want 8", len(rows))
	}
}

// TestListTemplatesTool verifies the catalog tool and its day filter.
func TestListTemplatesTool(t *testing.T) {
	h := testHandlers(t)

	result, err := h.listTemplates(context.Background(), callWith(map[string]any{}))
	if err != nil {
		t.Fatal(err)
	}
	text := resultText(t, result)
	if !strings.Contains(text, "operator") || !strings.Contains(text, "zulu") {
		t.Errorf("catalog missing expected templates: %s", text[:80])
	}

	result, err = h.listTemplates(context.Background(), callWith(map[string]any{"days": 2.0}))
	if err != nil {
		t.Fatal(err)
	}
	var filtered []map[string]any
	if err := json.Unmarshal([]byte(resultText(t, result)), &filtered); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(filtered) != 1 || filtered[0]["id"] != "fighter" {
		t.Errorf("2-day filter = %v, want only fighter", filtered)
	}
}

// TestGetScheduleToolNoProgram verifies the tool reports a missing program
// instead of failing.
func TestGetScheduleToolNoProgram(t *testing.T) {
	h := testHandlers(t)

	result, err := h.getSchedule(context.Background(), callWith(map[string]any{}))
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsError {
		t.Error("expected an error result with no active program")
	}
}

// TestGetCurrentMaxesToolEmpty verifies an empty history yields an empty list.
func TestGetCurrentMaxesToolEmpty(t *testing.T) {
	h := testHandlers(t)

	result, err := h.getCurrentMaxes(context.Background(), callWith(map[string]any{}))
	if err != nil {
		t.Fatal(err)
	}
	var entries []any
	if err := json.Unmarshal([]byte(resultText(t, result)), &entries); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries = %v, want empty", entries)
	}
}
