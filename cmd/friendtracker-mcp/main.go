package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"friendtracker/internal/adapters/filesystem"
	mcpadapter "friendtracker/internal/adapters/mcp"
	"friendtracker/internal/adapters/sqlite"
	"friendtracker/internal/config"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("friendtracker-mcp: %v", err)
	}

	folderFlag := flag.String("folder", settings.ContactsFolder, "path to the contacts folder")
	flag.Parse()

	repo := filesystem.NewRepository(*folderFlag)

	index := sqlite.NewIndex(repo)
	if err := index.Open(*folderFlag); err != nil {
		log.Fatalf("friendtracker-mcp: open index: %v", err)
	}
	defer index.Close()

	mcpServer := server.NewMCPServer(
		"friendtracker-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, repo, index)
	mcpadapter.RegisterWriteTools(mcpServer, repo)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("friendtracker-mcp: %v", err)
	}
}
