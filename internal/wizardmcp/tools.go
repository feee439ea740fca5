package wizardmcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/stepwise/internal/logger"
	"github.com/mark3labs/stepwise/internal/wizard"
)

// registerTools registers the navigation tools with the MCP server.
func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("wizard-state",
			mcp.WithDescription("Return the pages, current page and active buttons of the wizard"),
		),
		s.handleState,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("wizard-next",
			mcp.WithDescription("Commit the current page and advance to the next one"),
		),
		s.handleNext,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("wizard-previous",
			mcp.WithDescription("Move back to the previous page"),
		),
		s.handlePrevious,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("wizard-goto",
			mcp.WithDescription("Jump to a page by id"),
			mcp.WithString("page_id", mcp.Required(),
				mcp.Description("Full page id, e.g. wizard-page-2"),
			),
		),
		s.handleGoTo,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("wizard-finish",
			mcp.WithDescription("Commit the last page and finish the wizard"),
		),
		s.handleFinish,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("wizard-cancel",
			mcp.WithDescription("Cancel the wizard unless the current page stops it"),
		),
		s.handleCancel,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("wizard-click",
			mcp.WithDescription("Click a button of the current page by type"),
			mcp.WithString("type", mcp.Required(),
				mcp.Description("Button type: next, previous, danger, finish, cancel or a custom type"),
			),
		),
		s.handleClick,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("wizard-set-page",
			mcp.WithDescription("Change the flags of a page"),
			mcp.WithString("page_id",
				mcp.Description("Page id (default: current page)"),
			),
			mcp.WithBoolean("next_disabled",
				mcp.Description("Whether the page is not ready to complete"),
			),
			mcp.WithBoolean("previous_disabled",
				mcp.Description("Whether moving back from the page is disabled"),
			),
			mcp.WithBoolean("stop_cancel",
				mcp.Description("Whether cancel is kept from closing the wizard on this page"),
			),
		),
		s.handleSetPage,
	)
}

// run executes op under the engine lock and returns the resulting snapshot.
func (s *Server) run(ctx context.Context, action string, op func() wizard.Outcome) (*mcp.CallToolResult, error) {
	s.engineMu.Lock()
	defer s.engineMu.Unlock()

	pageID := ""
	if cur := s.wiz.CurrentPage(); cur != nil {
		pageID = cur.ID()
	}

	outcome := op()
	logger.Debug("MCP %s on %s: %s", action, pageID, outcome)

	if s.journal != nil {
		if err := s.journal.RecordOutcome(ctx, s.name, action, pageID, outcome); err != nil {
			logger.Warn("Failed to journal outcome: %v", err)
		}
	}

	return snapshotResult(takeSnapshot(s.wiz, outcome.String()))
}

func (s *Server) handleState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.engineMu.Lock()
	defer s.engineMu.Unlock()
	return snapshotResult(takeSnapshot(s.wiz, ""))
}

func (s *Server) handleNext(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(ctx, "next", s.wiz.Next)
}

func (s *Server) handlePrevious(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(ctx, "previous", s.wiz.Previous)
}

func (s *Server) handleFinish(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(ctx, "finish", s.wiz.Finish)
}

func (s *Server) handleCancel(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(ctx, "cancel", s.wiz.Cancel)
}

func (s *Server) handleClick(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	buttonType, _ := args["type"].(string)
	if buttonType == "" {
		return mcp.NewToolResultError("missing 'type' parameter"), nil
	}

	return s.run(ctx, "click:"+buttonType, func() wizard.Outcome {
		return s.wiz.Click(buttonType)
	})
}

func (s *Server) handleGoTo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	id, _ := args["page_id"].(string)
	if id == "" {
		return mcp.NewToolResultError("missing 'page_id' parameter"), nil
	}

	s.engineMu.Lock()
	defer s.engineMu.Unlock()

	if err := s.wiz.GoTo(id); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return snapshotResult(takeSnapshot(s.wiz, wizard.Moved.String()))
}

func (s *Server) handleSetPage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	s.engineMu.Lock()
	defer s.engineMu.Unlock()

	page := s.wiz.CurrentPage()
	if id, ok := args["page_id"].(string); ok && id != "" {
		p, err := s.wiz.Pages().ByID(id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		page = p
	}
	if page == nil {
		return mcp.NewToolResultError("no current page"), nil
	}

	if v, ok := args["next_disabled"].(bool); ok {
		page.SetNextStepDisabled(v)
	}
	if v, ok := args["previous_disabled"].(bool); ok {
		page.SetPreviousStepDisabled(v)
	}
	if v, ok := args["stop_cancel"].(bool); ok {
		page.SetStopCancel(v)
	}

	return snapshotResult(takeSnapshot(s.wiz, ""))
}

func snapshotResult(snap Snapshot) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("marshaling snapshot: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
