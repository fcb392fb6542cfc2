package generator

import (
	"fmt"
	"strings"

	"github.com/erraggy/casetools/caseerrors"
	"github.com/erraggy/casetools/caser"
)

// GenerateResult contains the results of generating constants from a set of
// identifiers.
type GenerateResult struct {
	// Source is the formatted Go source code
	Source []byte
	// PackageName is the Go package name used in generation
	PackageName string
	// ConstCount is the number of constants generated
	ConstCount int
}

// Option configures generation.
type Option func(*generateConfig) error

// generateConfig holds the resolved generation settings.
type generateConfig struct {
	packageName string
	policies    []caser.Policy
	header      string
}

// WithPackageName sets the package name for the generated file.
// The name must be a valid Go identifier.
func WithPackageName(name string) Option {
	return func(cfg *generateConfig) error {
		if !isGoIdentifier(name) {
			return &caseerrors.ConfigError{
				Option:  "package-name",
				Message: fmt.Sprintf("%q is not a valid Go identifier", name),
			}
		}
		cfg.packageName = name
		return nil
	}
}

// WithPolicies sets the casing policies each identifier is converted under.
// With more than one policy, constant names carry the policy as a suffix
// (UserIDKebab, UserIDSnake).
func WithPolicies(policies ...caser.Policy) Option {
	return func(cfg *generateConfig) error {
		if len(policies) == 0 {
			return &caseerrors.ConfigError{
				Option:  "policies",
				Message: "at least one policy is required",
			}
		}
		cfg.policies = policies
		return nil
	}
}

// WithHeaderComment sets an extra comment line placed under the generated-code
// marker, typically naming the tool invocation that produced the file.
func WithHeaderComment(comment string) Option {
	return func(cfg *generateConfig) error {
		cfg.header = comment
		return nil
	}
}

// Generate converts each identifier under the configured policies and
// returns a formatted Go source file declaring one string constant per
// identifier/policy pair.
//
// Defaults: package "idents", single policy caser.Kebab. Identifiers that
// contain no word tokens, or that produce colliding or invalid constant
// names, fail generation with a caseerrors.ConfigError.
func Generate(identifiers []string, opts ...Option) (*GenerateResult, error) {
	cfg := &generateConfig{
		packageName: "idents",
		policies:    []caser.Policy{caser.Kebab},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if len(identifiers) == 0 {
		return nil, &caseerrors.ConfigError{
			Option:  "identifiers",
			Message: "at least one identifier is required",
		}
	}

	decls, err := buildConstDecls(identifiers, cfg)
	if err != nil {
		return nil, err
	}

	src := renderFile(cfg, decls)
	formatted, err := formatAndFixImports("generated.go", []byte(src))
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}

	return &GenerateResult{
		Source:      formatted,
		PackageName: cfg.packageName,
		ConstCount:  len(decls),
	}, nil
}

// constDecl is a single generated constant.
type constDecl struct {
	name    string
	value   string
	comment string
}

// buildConstDecls converts every identifier under every configured policy
// and derives a unique Go constant name for each result.
func buildConstDecls(identifiers []string, cfg *generateConfig) ([]constDecl, error) {
	seen := make(map[string]string, len(identifiers)*len(cfg.policies))
	decls := make([]constDecl, 0, len(identifiers)*len(cfg.policies))

	for _, id := range identifiers {
		base, err := caser.ToPascalCase(id)
		if err != nil {
			return nil, err
		}
		if base == "" {
			return nil, &caseerrors.ConfigError{
				Option:  "identifiers",
				Message: fmt.Sprintf("identifier %q contains no word tokens", id),
			}
		}

		for _, policy := range cfg.policies {
			value, err := caser.Convert(id, policy)
			if err != nil {
				return nil, err
			}

			name := base
			if len(cfg.policies) > 1 {
				suffix, err := caser.ToPascalCase(policy.String())
				if err != nil {
					return nil, err
				}
				name += suffix
			}
			if !isGoIdentifier(name) {
				return nil, &caseerrors.ConfigError{
					Option:  "identifiers",
					Message: fmt.Sprintf("identifier %q maps to invalid constant name %q", id, name),
				}
			}
			if prev, ok := seen[name]; ok {
				return nil, &caseerrors.ConfigError{
					Option:  "identifiers",
					Message: fmt.Sprintf("identifiers %q and %q both map to constant %q", prev, id, name),
				}
			}
			seen[name] = id

			decls = append(decls, constDecl{
				name:    name,
				value:   value,
				comment: fmt.Sprintf("%q in %s", id, policy),
			})
		}
	}

	return decls, nil
}

// renderFile assembles the unformatted source text.
func renderFile(cfg *generateConfig, decls []constDecl) string {
	var b strings.Builder
	b.WriteString("// Code generated by casetools. DO NOT EDIT.\n")
	if cfg.header != "" {
		b.WriteString("// " + cfg.header + "\n")
	}
	b.WriteString("\npackage " + cfg.packageName + "\n\n")
	b.WriteString("const (\n")
	for _, d := range decls {
		b.WriteString("\t// " + d.comment + "\n")
		b.WriteString(fmt.Sprintf("\t%s = %q\n", d.name, d.value))
	}
	b.WriteString(")\n")
	return b.String()
}

// isGoIdentifier reports whether s is a valid exported-or-not Go identifier
// in the ASCII range the generator emits.
func isGoIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
