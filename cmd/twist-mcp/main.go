package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/twist-mcp/internal/common"
	"github.com/bobmcallan/twist-mcp/internal/config"
	"github.com/bobmcallan/twist-mcp/internal/twist"
)

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for Claude Desktop)")
	configFile := flag.String("config", "twist-mcp.toml", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	// Load version
	common.LoadVersionFromFile()

	// Setup logging
	logger := common.NewLoggerFromConfig(cfg.Logging)

	client := twist.NewClient(cfg.Twist, logger)

	// Create MCP server with tool definitions
	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	// Register all MCP tools
	registerTools(mcpServer, client)

	if *stdio {
		// Stdio transport — reads stdin, writes stdout
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	port := cfg.Server.Port

	// Streamable HTTP transport — listens on configured port
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	log.Printf("Starting MCP Streamable HTTP on :%s", port)
	fmt.Fprintf(os.Stderr, "Starting MCP Streamable HTTP on :%s\n", port)

	if err := httpServer.Start(":" + port); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}
