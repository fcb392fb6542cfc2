package commands

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/casetools/segmenter"
)

// SegmentFlags contains flags for the segment command
type SegmentFlags struct {
	Mode   string
	Format string
}

// SetupSegmentFlags creates and configures a FlagSet for the segment command.
// Returns the FlagSet and a SegmentFlags struct with bound flag variables.
func SetupSegmentFlags() (*flag.FlagSet, *SegmentFlags) {
	fs := flag.NewFlagSet("segment", flag.ContinueOnError)
	flags := &SegmentFlags{}

	fs.StringVar(&flags.Mode, "mode", "plain", "segmentation mode: plain or camel")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: casetools segment [flags] <text...|->\n\n")
		Writef(fs.Output(), "Split strings into their word tokens.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nModes:\n")
		Writef(fs.Output(), "  plain   split on whitespace, hyphens, and underscores\n")
		Writef(fs.Output(), "  camel   additionally split camelCase and acronym boundaries\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  casetools segment -mode camel \"parseHTTPResponse\"\n")
		Writef(fs.Output(), "  casetools segment \"foo_bar baz\"\n")
	}

	return fs, flags
}

// SegmentRecord is one input's token sequence in structured segment output.
type SegmentRecord struct {
	Input  string   `json:"input"            yaml:"input"`
	Mode   string   `json:"mode"             yaml:"mode"`
	Tokens []string `json:"tokens,omitempty" yaml:"tokens,omitempty"`
}

// RunSegment handles the segment command.
func RunSegment(args []string) error {
	fs, flags := SetupSegmentFlags()
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	mode, err := segmenter.ParseMode(flags.Mode)
	if err != nil {
		return err
	}

	inputs, err := ReadInputs(fs.Args(), os.Stdin)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		fs.Usage()
		return fmt.Errorf("no input text provided")
	}

	records := make([]SegmentRecord, 0, len(inputs))
	for _, in := range inputs {
		records = append(records, SegmentRecord{
			Input:  in,
			Mode:   mode.String(),
			Tokens: segmenter.Segment(in, mode),
		})
	}

	if flags.Format == FormatText {
		for _, rec := range records {
			fmt.Println(strings.Join(rec.Tokens, " "))
		}
		return nil
	}
	return OutputStructured(records, flags.Format)
}
