package commands

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/casetools/caser"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Target string
	Output string
	Format string
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Target, "t", "kebab", "target casing policy (e.g., \"kebab\", \"camel\", \"dot\")")
	fs.StringVar(&flags.Target, "target", "kebab", "target casing policy (e.g., \"kebab\", \"camel\", \"dot\")")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: casetools convert [flags] <text...|->\n\n")
		Writef(fs.Output(), "Convert strings to a target casing policy.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nPolicies:\n")
		Writef(fs.Output(), "  %s\n", strings.Join(caser.PolicyNames(), ", "))
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  casetools convert -t kebab \"HTMLParser\"\n")
		Writef(fs.Output(), "  casetools convert -t camel \"hello world\" \"foo_bar\"\n")
		Writef(fs.Output(), "  casetools convert -t snake -format json \"userProfile\"\n")
		Writef(fs.Output(), "  cat names.txt | casetools convert -t dot - > converted.txt\n")
		Writef(fs.Output(), "\nPipelining:\n")
		Writef(fs.Output(), "  - Use '-' as the sole argument to read newline-separated inputs from stdin\n")
	}

	return fs, flags
}

// ConversionRecord is one input/output pair in structured convert output.
type ConversionRecord struct {
	Input  string `json:"input"  yaml:"input"`
	Policy string `json:"policy" yaml:"policy"`
	Output string `json:"output" yaml:"output"`
}

// RunConvert handles the convert command.
func RunConvert(args []string) error {
	fs, flags := SetupConvertFlags()
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	policy, err := caser.ParsePolicy(flags.Target)
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

	records := make([]ConversionRecord, 0, len(inputs))
	for _, in := range inputs {
		out, err := caser.Convert(in, policy)
		if err != nil {
			return err
		}
		records = append(records, ConversionRecord{Input: in, Policy: policy.String(), Output: out})
	}

	if flags.Format == FormatText {
		var b strings.Builder
		for _, rec := range records {
			b.WriteString(rec.Output)
			b.WriteByte('\n')
		}
		return writeOutput(flags.Output, []byte(b.String()))
	}

	data, err := MarshalStructured(records, flags.Format)
	if err != nil {
		return err
	}
	return writeOutput(flags.Output, append(data, '\n'))
}
