package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"worklog/internal/application"
	"worklog/internal/application/commands"
	"worklog/internal/domain"
)

// RegisterWriteTools adds all mutating work-log tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, store *application.Store) {
	s.AddTool(addLogTool(), addLogHandler(store))
	s.AddTool(editLogTool(), editLogHandler(store))
	s.AddTool(deleteLogTool(), deleteLogHandler(store))
	s.AddTool(deleteDayTool(), deleteDayHandler(store))
	s.AddTool(moveLogTool(), moveLogHandler(store))
}

// --- add_log ---

func addLogTool() mcp.Tool {
	return mcp.NewTool("add_log",
		mcp.WithDescription("Record a work log. Content containing ；, ; or newlines is split into one log per part."),
		mcp.WithString("date",
			mcp.Description("Date (YYYY-MM-DD)"),
			mcp.Required(),
		),
		mcp.WithString("time",
			mcp.Description("Wall-clock time (HH:MM)"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("Log content; delimiters split it into several logs"),
			mcp.Required(),
		),
		mcp.WithString("category",
			mcp.Description("Category label; defaults to the general-work category"),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated tags"),
		),
		mcp.WithBoolean("auto_clean",
			mcp.Description("Strip trailing punctuation and leading enumeration prefixes from each part"),
		),
	)
}

func addLogHandler(store *application.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		input := application.AddInput{
			Date:     req.GetString("date", ""),
			Time:     req.GetString("time", ""),
			Content:  req.GetString("content", ""),
			Category: req.GetString("category", ""),
			Tags:     domain.ParseTags(req.GetString("tags", "")),
		}
		result, err := commands.NewAddLogCommand(store, input, req.GetBool("auto_clean", false)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- edit_log ---

func editLogTool() mcp.Tool {
	return mcp.NewTool("edit_log",
		mcp.WithDescription("Update a log's fields. Delimited content keeps the first part on this log and creates new logs for the rest."),
		mcp.WithString("id",
			mcp.Description("Log id"),
			mcp.Required(),
		),
		mcp.WithString("date", mcp.Description("Date (YYYY-MM-DD)"), mcp.Required()),
		mcp.WithString("time", mcp.Description("Wall-clock time (HH:MM)"), mcp.Required()),
		mcp.WithString("content", mcp.Description("New content"), mcp.Required()),
		mcp.WithString("category", mcp.Description("Category label")),
		mcp.WithString("tags", mcp.Description("Comma-separated tags")),
	)
}

func editLogHandler(store *application.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		input := application.AddInput{
			Date:     req.GetString("date", ""),
			Time:     req.GetString("time", ""),
			Content:  req.GetString("content", ""),
			Category: req.GetString("category", ""),
			Tags:     domain.ParseTags(req.GetString("tags", "")),
		}
		result, err := commands.NewEditLogCommand(store, req.GetString("id", ""), input).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete_log ---

func deleteLogTool() mcp.Tool {
	return mcp.NewTool("delete_log",
		mcp.WithDescription("Delete one log by id."),
		mcp.WithString("id",
			mcp.Description("Log id"),
			mcp.Required(),
		),
	)
}

func deleteLogHandler(store *application.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewDeleteLogCommand(store, req.GetString("id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete_day ---

func deleteDayTool() mcp.Tool {
	return mcp.NewTool("delete_day",
		mcp.WithDescription("Delete every log of one date."),
		mcp.WithString("date",
			mcp.Description("Date (YYYY-MM-DD)"),
			mcp.Required(),
		),
	)
}

func deleteDayHandler(store *application.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewDeleteDateCommand(store, req.GetString("date", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- move_log ---

func moveLogTool() mcp.Tool {
	return mcp.NewTool("move_log",
		mcp.WithDescription("Move a log up or down within its day."),
		mcp.WithString("id",
			mcp.Description("Log id"),
			mcp.Required(),
		),
		mcp.WithString("direction",
			mcp.Description("up or down"),
			mcp.Required(),
		),
	)
}

func moveLogHandler(store *application.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var direction commands.MoveDirection
		switch req.GetString("direction", "") {
		case "up":
			direction = commands.MoveUp
		case "down":
			direction = commands.MoveDown
		default:
			return toolError(fmt.Errorf("direction must be up or down"))
		}

		result, err := commands.NewMoveLogCommand(store, req.GetString("id", ""), direction).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
