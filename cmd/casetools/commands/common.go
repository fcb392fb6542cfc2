// Package commands provides CLI command handlers for casetools.
package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special argument used to indicate reading from stdin.
const StdinFilePath = "-"

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// MarshalStructured marshals data in the specified format (json or yaml).
func MarshalStructured(data any, format string) ([]byte, error) {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return nil, fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return nil, fmt.Errorf("marshaling to %s: %w", format, err)
	}
	return bytes, nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	bytes, err := MarshalStructured(data, format)
	if err != nil {
		return err
	}
	fmt.Println(string(bytes))
	return nil
}

// ReadInputs returns the positional arguments, or reads newline-separated
// inputs from r when the sole argument is "-" (the stdin marker).
// Blank lines are skipped.
func ReadInputs(args []string, r io.Reader) ([]string, error) {
	if len(args) != 1 || args[0] != StdinFilePath {
		return args, nil
	}

	var inputs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return inputs, nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
