package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"worklog/internal/application"
	"worklog/internal/application/commands"
	"worklog/internal/domain"
)

// RegisterReadTools adds all read-only work-log tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store *application.Store) {
	s.AddTool(listLogsTool(), listLogsHandler(store))
	s.AddTool(dayLogsTool(), dayLogsHandler(store))
	s.AddTool(overviewTool(), overviewHandler(store))
	s.AddTool(categoryStatsTool(), categoryStatsHandler(store))
	s.AddTool(frequencyStatsTool(), frequencyStatsHandler(store))
	s.AddTool(summaryTool(), summaryHandler(store))
}

// --- list_logs ---

func listLogsTool() mcp.Tool {
	return mcp.NewTool("list_logs",
		mcp.WithDescription("List work logs, newest day first. All filters are optional and ANDed."),
		mcp.WithString("keyword",
			mcp.Description("Case-insensitive substring matched against content or any tag"),
		),
		mcp.WithString("date_start",
			mcp.Description("Inclusive lower date bound (YYYY-MM-DD)"),
		),
		mcp.WithString("date_end",
			mcp.Description("Inclusive upper date bound (YYYY-MM-DD)"),
		),
		mcp.WithString("category",
			mcp.Description("Exact category match"),
		),
		mcp.WithNumber("page",
			mcp.Description("1-based page number (default 1, 10 logs per page)"),
		),
	)
}

func listLogsHandler(store *application.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filter := domain.Filter{
			Keyword:   req.GetString("keyword", ""),
			DateStart: req.GetString("date_start", ""),
			DateEnd:   req.GetString("date_end", ""),
			Category:  req.GetString("category", ""),
		}
		page := req.GetInt("page", 1)

		result, err := commands.NewListLogsQuery(store, filter, page, 0).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(result.Records) == 0 {
			return mcp.NewToolResultText("No logs found."), nil
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Page %d/%d (%d matched)\n", result.Page, result.TotalPages, result.TotalMatched)
		for _, r := range result.Records {
			sb.WriteString(formatRecord(r))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- day_logs ---

func dayLogsTool() mcp.Tool {
	return mcp.NewTool("day_logs",
		mcp.WithDescription("List the logs of one date in sequence order."),
		mcp.WithString("date",
			mcp.Description("Date (YYYY-MM-DD)"),
			mcp.Required(),
		),
	)
}

func dayLogsHandler(store *application.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		records, err := commands.NewDayLogsQuery(store, req.GetString("date", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(records) == 0 {
			return mcp.NewToolResultText("No logs on that date."), nil
		}

		var sb strings.Builder
		for _, r := range records {
			sb.WriteString(formatRecord(r))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- overview ---

func overviewTool() mcp.Tool {
	return mcp.NewTool("overview",
		mcp.WithDescription("Dashboard counters: logs today, this month, this year, and in total."),
	)
}

func overviewHandler(store *application.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		o, err := commands.NewOverviewQuery(store, time.Now()).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf(
			"today: %d\nmonth: %d\nyear: %d\ntotal: %d", o.Today, o.Month, o.Year, o.Total)), nil
	}
}

// --- category_stats ---

func categoryStatsTool() mcp.Tool {
	return mcp.NewTool("category_stats",
		mcp.WithDescription("Category distribution over a period (today|week|month|year)."),
		mcp.WithString("period",
			mcp.Description("Period to aggregate over"),
			mcp.Required(),
		),
	)
}

func categoryStatsHandler(store *application.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		period := domain.Period(req.GetString("period", ""))
		report, err := commands.NewCategoryStatsQuery(store, period, time.Now()).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if report.Total == 0 {
			return mcp.NewToolResultText("No logs in that period."), nil
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%d log(s) in period %s\n", report.Total, report.Period)
		for _, c := range report.Categories {
			fmt.Fprintf(&sb, "%s  %d (%d%%)\n", c.Category, c.Count, c.Percentage)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- frequency_stats ---

func frequencyStatsTool() mcp.Tool {
	return mcp.NewTool("frequency_stats",
		mcp.WithDescription("Top-20 most frequent log contents over a period (today|week|month|year)."),
		mcp.WithString("period",
			mcp.Description("Period to aggregate over"),
			mcp.Required(),
		),
	)
}

func frequencyStatsHandler(store *application.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		period := domain.Period(req.GetString("period", ""))
		report, err := commands.NewFrequencyStatsQuery(store, period, time.Now()).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if report.Total == 0 {
			return mcp.NewToolResultText("No logs in that period."), nil
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%d log(s), %d distinct\n", report.Total, report.Distinct)
		for _, e := range report.Entries {
			fmt.Fprintf(&sb, "%2d. %s  %d× (%d%%)\n", e.Rank, e.Content, e.Count, e.Percentage)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- summary ---

func summaryTool() mcp.Tool {
	return mcp.NewTool("summary",
		mcp.WithDescription("Render the whole log as the plain-text summary grouped by date."),
	)
}

func summaryHandler(store *application.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewExportSummaryCommand(store).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(string(result.Data)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatRecord(r domain.LogRecord) string {
	line := fmt.Sprintf("%s %s #%d [%s] %s (%s)", r.Date, r.Time, r.Seq(), r.Category, r.Content, r.ID)
	if len(r.Tags) > 0 {
		line += "  tags: " + strings.Join(r.Tags, ", ")
	}
	return line
}
