package commands

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/casetools/caser"
	"github.com/erraggy/casetools/generator"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Targets string
	Package string
	Output  string
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Targets, "t", "kebab", "comma-separated target policies (e.g., \"kebab\" or \"kebab,snake\")")
	fs.StringVar(&flags.Targets, "targets", "kebab", "comma-separated target policies (e.g., \"kebab\" or \"kebab,snake\")")
	fs.StringVar(&flags.Package, "package", "idents", "package name for the generated file")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: casetools generate [flags] <identifier...|->\n\n")
		Writef(fs.Output(), "Generate a Go source file of string constants for identifiers\n")
		Writef(fs.Output(), "converted under the target policies.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  casetools generate -t kebab -package routes -o routes.go user_profile admin_panel\n")
		Writef(fs.Output(), "  casetools generate -t snake,dot -package keys session_id retry_count\n")
		Writef(fs.Output(), "  cat columns.txt | casetools generate -t snake -package columns - > columns.go\n")
	}

	return fs, flags
}

// RunGenerate handles the generate command.
func RunGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()
	if err := fs.Parse(args); err != nil {
		return err
	}

	var policies []caser.Policy
	for _, name := range strings.Split(flags.Targets, ",") {
		policy, err := caser.ParsePolicy(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		policies = append(policies, policy)
	}

	identifiers, err := ReadInputs(fs.Args(), os.Stdin)
	if err != nil {
		return err
	}
	if len(identifiers) == 0 {
		fs.Usage()
		return fmt.Errorf("no identifiers provided")
	}

	result, err := generator.Generate(identifiers,
		generator.WithPackageName(flags.Package),
		generator.WithPolicies(policies...),
		generator.WithHeaderComment(fmt.Sprintf("casetools generate -t %s -package %s", flags.Targets, flags.Package)),
	)
	if err != nil {
		return err
	}

	return writeOutput(flags.Output, result.Source)
}
