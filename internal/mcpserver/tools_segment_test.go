package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentTool_PlainMode(t *testing.T) {
	input := segmentInput{Text: "hello_world test", Mode: "plain"}
	result, output, err := handleSegment(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "plain", output.Mode)
	assert.Equal(t, 3, output.Count)
	assert.Equal(t, []string{"hello", "world", "test"}, output.Tokens)
}

func TestSegmentTool_CamelMode(t *testing.T) {
	input := segmentInput{Text: "parseHTTPResponse", Mode: "camel"}
	result, output, err := handleSegment(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "camel", output.Mode)
	assert.Equal(t, []string{"parse", "HTTP", "Response"}, output.Tokens)
}

func TestSegmentTool_DefaultMode(t *testing.T) {
	input := segmentInput{Text: "a b"}
	result, output, err := handleSegment(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, cfg.DefaultMode.String(), output.Mode)
	assert.Equal(t, []string{"a", "b"}, output.Tokens)
}

func TestSegmentTool_EmptyText(t *testing.T) {
	input := segmentInput{Text: " -_ ", Mode: "plain"}
	result, output, err := handleSegment(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, 0, output.Count)
	assert.Empty(t, output.Tokens)
}

func TestSegmentTool_UnknownMode(t *testing.T) {
	input := segmentInput{Text: "x", Mode: "aggressive"}
	result, _, err := handleSegment(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
