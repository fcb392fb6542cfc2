// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes casetools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/casetools"
)

const serverInstructions = `casetools MCP server — converts strings between word-casing conventions and inspects word segmentation.

Configuration: All defaults are configurable via CASETOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- CASETOOLS_DEFAULT_POLICY (default: kebab) — target policy for convert when none is given
- CASETOOLS_DEFAULT_MODE (default: plain) — segmentation mode for segment when none is given
- CASETOOLS_MAX_BATCH (default: 1000) — maximum texts accepted by a single convert call

Conversions are pure and deterministic: the same input always produces the same output, and empty or separator-only input converts to an empty string.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "casetools", Version: casetools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert one or more strings to a target casing policy (camel, pascal, kebab, snake, screaming-snake, dot, train, title). Provide texts as an array; target defaults to the CASETOOLS_DEFAULT_POLICY env var (kebab when unset). Set all=true to return every policy's rendering of each text instead of a single target.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "segment",
		Description: "Split a string into its ordered word tokens. Mode 'plain' splits only on whitespace, hyphens, and underscores; mode 'camel' additionally splits camelCase and acronym boundaries (HTMLParser -> HTML, Parser). Default mode is configurable via CASETOOLS_DEFAULT_MODE.",
	}, handleSegment)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
