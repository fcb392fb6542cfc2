package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/casetools"
	"github.com/erraggy/casetools/cmd/casetools/commands"
	"github.com/erraggy/casetools/internal/mcpserver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("casetools v%s\n", casetools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "convert":
		if err := commands.RunConvert(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "segment":
		if err := commands.RunSegment(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "generate":
		if err := commands.RunGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := runMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// runMCP serves MCP over stdio until the client disconnects or the process
// receives an interrupt.
func runMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

func printUsage() {
	fmt.Println("casetools - string case-conversion utilities")
	fmt.Println()
	fmt.Println("Usage: casetools <command> [flags] [args]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  convert    Convert strings to a target casing policy")
	fmt.Println("  segment    Split strings into their word tokens")
	fmt.Println("  generate   Generate Go constants for converted identifiers")
	fmt.Println("  mcp        Serve casetools capabilities over MCP (stdio)")
	fmt.Println("  version    Print the casetools version")
	fmt.Println("  help       Print this help text")
	fmt.Println()
	fmt.Println("Run 'casetools <command> -h' for command-specific flags.")
}

// knownCommands is the set suggestCommand matches typos against.
var knownCommands = []string{"convert", "segment", "generate", "mcp", "version", "help"}

// suggestCommand returns the known command closest to input within an edit
// distance of 2, or "" when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
