package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/casetools/segmenter"
)

type segmentInput struct {
	Text string `json:"text"           jsonschema:"The string to segment into word tokens"`
	Mode string `json:"mode,omitempty" jsonschema:"Segmentation mode: plain (split on whitespace\\, hyphen\\, underscore) or camel (additionally split camelCase and acronym boundaries). Defaults to the configured default mode."`
}

type segmentOutput struct {
	Mode   string   `json:"mode"`
	Count  int      `json:"count"`
	Tokens []string `json:"tokens,omitempty"`
}

func handleSegment(_ context.Context, _ *mcp.CallToolRequest, input segmentInput) (*mcp.CallToolResult, segmentOutput, error) {
	mode := cfg.DefaultMode
	if input.Mode != "" {
		parsed, err := segmenter.ParseMode(input.Mode)
		if err != nil {
			return errResult(err), segmentOutput{}, nil
		}
		mode = parsed
	}

	tokens := segmenter.Segment(input.Text, mode)
	return nil, segmentOutput{
		Mode:   mode.String(),
		Count:  len(tokens),
		Tokens: tokens,
	}, nil
}
