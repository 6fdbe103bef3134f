package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "worklog/internal/adapters/mcp"
	"worklog/internal/adapters/sqlite"
	"worklog/internal/application"
	"worklog/internal/config"
)

func main() {
	cfg := config.LoadOrDefault()
	dbFlag := flag.String("db", cfg.DBPath, "path to the log database")
	flag.Parse()

	storage, err := sqlite.Open(*dbFlag)
	if err != nil {
		log.Fatalf("worklog-mcp: %v", err)
	}
	defer storage.Close()

	store, err := application.OpenStore(storage)
	if err != nil {
		log.Fatalf("worklog-mcp: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"worklog-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, store)
	mcpadapter.RegisterWriteTools(mcpServer, store)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("worklog-mcp: %v", err)
	}
}
