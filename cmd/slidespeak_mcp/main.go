package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/slidespeak/slidespeak-mcp-go/internal/config"
	"github.com/slidespeak/slidespeak-mcp-go/internal/server"
	"github.com/slidespeak/slidespeak-mcp-go/internal/server/handler"
	"github.com/slidespeak/slidespeak-mcp-go/internal/slidespeak"
	"github.com/slidespeak/slidespeak-mcp-go/pkg/httpclient"
	"github.com/slidespeak/slidespeak-mcp-go/pkg/logger"
)

const serviceName = "slidespeak_mcp"

// STDIO transport (default)
//go run ./cmd/slidespeak_mcp
//go run ./cmd/slidespeak_mcp -transport=stdio
//
// SSE transport on port 8080
//go run ./cmd/slidespeak_mcp -transport=sse -port=8080
//
// StreamableHTTP transport on port 9000
//go run ./cmd/slidespeak_mcp -transport=httpstream -port=9000

func main() {
	configPath := flag.String("config", "", "Path to an optional YAML configuration file")
	transport := flag.String("transport", "", "Transport method: stdio, sse, or httpstream")
	port := flag.String("port", "", "Port for HTTP-based transports (sse, httpstream)")
	flag.Parse()

	// .env is a development convenience; a missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if *transport != "" {
		cfg.Server.Transport = *transport
	}
	if *port != "" {
		cfg.Server.Port = *port
	}

	level, err := logrus.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.Init(level)
	appLogger := logger.New(serviceName, "")

	appLogger.WithPayload(map[string]interface{}{
		"base_url":           cfg.Server.BaseURL(),
		"api_base":           cfg.API.BaseURL,
		"transport":          cfg.Server.Transport,
		"generation_timeout": cfg.API.GenerationTimeout,
		"poll_interval":      cfg.API.PollInterval,
	}).Info("starting SlideSpeak MCP server")

	if cfg.API.Key == "" {
		appLogger.Warn("SLIDESPEAK_API_KEY is not set, all tool calls will be rejected")
	} else {
		appLogger.WithPayload(map[string]interface{}{
			"key_prefix": keyPrefix(cfg.API.Key),
		}).Info("API key configured")
	}

	hc, err := httpclient.NewClient(cfg.Middleware)
	if err != nil {
		appLogger.Fatal(fmt.Sprintf("failed to build HTTP client: %v", err))
	}
	opts, err := slidespeak.OptionsFromConfig(cfg.API)
	if err != nil {
		appLogger.Fatal(fmt.Sprintf("failed to resolve API options: %v", err))
	}

	client := slidespeak.NewClient(opts, hc)
	h := handler.New(cfg, client, slidespeak.NewPoller(client))
	s := server.New(cfg, h)

	switch cfg.Server.Transport {
	case "sse":
		appLogger.Info("serving MCP over SSE on port " + cfg.Server.Port)
		if err := mcpserver.NewSSEServer(s).Start(":" + cfg.Server.Port); err != nil {
			appLogger.Fatal(fmt.Sprintf("SSE server error: %v", err))
		}
	case "httpstream":
		appLogger.Info("serving MCP over StreamableHTTP on port " + cfg.Server.Port)
		if err := mcpserver.NewStreamableHTTPServer(s).Start(":" + cfg.Server.Port); err != nil {
			appLogger.Fatal(fmt.Sprintf("HTTP server error: %v", err))
		}
	case "stdio":
		appLogger.Info("serving MCP over stdio")
		if err := mcpserver.ServeStdio(s); err != nil {
			appLogger.Fatal(fmt.Sprintf("STDIO server error: %v", err))
		}
	default:
		appLogger.Fatal(fmt.Sprintf("unknown transport: %s, use stdio, sse, or httpstream", cfg.Server.Transport))
	}
}

// keyPrefix returns enough of the key to confirm which one is loaded
// without disclosing it.
func keyPrefix(key string) string {
	const n = 8
	if len(key) > n {
		key = key[:n]
	}
	return key + "..."
}
