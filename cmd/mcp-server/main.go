// Package main provides the MCP server entry point for pharmaceutical
// paper research.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/bull/research-mcp/internal/arxiv"
	"github.com/bull/research-mcp/internal/findings"
	mcpserver "github.com/bull/research-mcp/internal/mcp"
	"github.com/bull/research-mcp/internal/papers"
	"github.com/bull/research-mcp/internal/pharma"
	"github.com/bull/research-mcp/internal/research"
)

func main() {
	// Load .env file if present (local development), ignore if missing (production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Create context that cancels on SIGTERM/SIGINT
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	// Configuration from environment
	papersDir := getEnv("PAPERS_DIR", "papers")
	port := getEnv("PORT", "8080")

	store := papers.NewStore(papersDir)

	// Key findings generation is optional: without an OpenAI key the
	// research reports simply carry empty findings.
	var findingsGen research.FindingsGenerator
	if gen, err := findings.NewGenerator(); err != nil {
		log.Printf("Key findings disabled: %v", err)
	} else {
		findingsGen = gen
	}

	service := research.NewService(&research.Config{
		Store:     store,
		Searcher:  arxiv.NewClient(nil),
		Knowledge: pharma.DefaultKnowledge(),
		Rules:     pharma.DefaultRules(),
		Findings:  findingsGen,
	})

	// Create MCP server
	server := mcpserver.NewServer(&mcpserver.Config{
		Service: service,
	})

	// Create HTTP server with multiple endpoints
	mux := http.NewServeMux()

	// Landing page and health endpoint
	mux.HandleFunc("/", mcpserver.NewLandingHandler())
	mux.HandleFunc("/health", mcpserver.NewHealthHandler(store))

	// MCP HTTP endpoint (for remote client connections)
	mcpHTTPHandler := server.HTTPHandler()
	mux.Handle("/mcp", mcpHTTPHandler)

	// Check if running in server mode (HTTP) or stdio mode (local development)
	serverMode := getEnv("SERVER_MODE", "false") == "true"

	if serverMode {
		// HTTP mode: serve MCP over HTTP for remote clients
		addr := "0.0.0.0:" + port
		log.Printf("Starting HTTP server on %s (MCP at /mcp, health at /health)", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Fatalf("HTTP server error: %v", err)
		}
	} else {
		// Stdio mode: run MCP server over stdin/stdout for local clients
		// Also start HTTP health endpoint in background for local testing
		go func() {
			addr := "0.0.0.0:" + port
			log.Printf("Starting health server on %s", addr)
			if err := http.ListenAndServe(addr, mux); err != nil {
				log.Printf("Health server error: %v", err)
			}
		}()

		log.Println("Starting Research Papers MCP Server (stdio mode)...")
		if err := server.Run(ctx); err != nil {
			log.Printf("server error: %v", err)
			os.Exit(1)
		}
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
