package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/casetools/caser"
)

type convertInput struct {
	Texts  []string `json:"texts"            jsonschema:"The strings to convert"`
	Target string   `json:"target,omitempty" jsonschema:"Target casing policy (camel\\, pascal\\, kebab\\, snake\\, screaming-snake\\, dot\\, train\\, title). Defaults to the configured default policy."`
	All    bool     `json:"all,omitempty"    jsonschema:"Return every policy's rendering of each text instead of a single target"`
}

type conversion struct {
	Input  string `json:"input"`
	Policy string `json:"policy"`
	Output string `json:"output"`
}

type convertOutput struct {
	Results []conversion `json:"results"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	if len(input.Texts) == 0 {
		return errResult(fmt.Errorf("at least one text is required")), convertOutput{}, nil
	}
	if len(input.Texts) > cfg.MaxBatch {
		return errResult(fmt.Errorf("too many texts: %d exceeds the configured maximum of %d", len(input.Texts), cfg.MaxBatch)), convertOutput{}, nil
	}

	policies, err := targetPolicies(input)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		Results: make([]conversion, 0, len(input.Texts)*len(policies)),
	}
	for _, text := range input.Texts {
		for _, policy := range policies {
			converted, err := caser.Convert(text, policy)
			if err != nil {
				return errResult(err), convertOutput{}, nil
			}
			output.Results = append(output.Results, conversion{
				Input:  text,
				Policy: policy.String(),
				Output: converted,
			})
		}
	}

	return nil, output, nil
}

// targetPolicies resolves the policy set for a convert call: every policy
// with all=true, otherwise the requested target or the configured default.
func targetPolicies(input convertInput) ([]caser.Policy, error) {
	if input.All {
		if input.Target != "" {
			return nil, fmt.Errorf("target and all are mutually exclusive")
		}
		return caser.Policies(), nil
	}
	if input.Target == "" {
		return []caser.Policy{cfg.DefaultPolicy}, nil
	}
	policy, err := caser.ParsePolicy(input.Target)
	if err != nil {
		return nil, err
	}
	return []caser.Policy{policy}, nil
}
