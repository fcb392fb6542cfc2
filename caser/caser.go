package caser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/casetools/caseerrors"
	"github.com/erraggy/casetools/segmenter"
)

// Recase joins a token sequence under the given policy.
//
// An empty token sequence produces the empty string for every policy.
// Tokens are assumed to come from segmenter.Segment; empty tokens are not
// expected and would produce degenerate output.
func Recase(tokens []string, policy Policy) string {
	if len(tokens) == 0 {
		return ""
	}

	switch policy {
	case Camel:
		var b strings.Builder
		b.WriteString(strings.ToLower(tokens[0]))
		for _, tok := range tokens[1:] {
			b.WriteString(capitalize(tok))
		}
		return b.String()
	case Pascal:
		var b strings.Builder
		for _, tok := range tokens {
			b.WriteString(capitalize(tok))
		}
		return b.String()
	case Kebab:
		return joinLower(tokens, "-")
	case Snake:
		return joinLower(tokens, "_")
	case ScreamingSnake:
		return strings.ToUpper(joinLower(tokens, "_"))
	case Dot:
		return joinLower(tokens, ".")
	case Train:
		out := make([]string, len(tokens))
		for i, tok := range tokens {
			out[i] = capitalize(strings.ToLower(tok))
		}
		return strings.Join(out, "-")
	case Title:
		// cases.Caser is stateful, so build one per call rather than sharing
		// a package-level instance across goroutines.
		titleCaser := cases.Title(language.English)
		out := make([]string, len(tokens))
		for i, tok := range tokens {
			out[i] = titleCaser.String(strings.ToLower(tok))
		}
		return strings.Join(out, " ")
	default:
		return strings.Join(tokens, " ")
	}
}

// capitalize uppercases the first rune of s and preserves the remainder
// verbatim. Camel and pascal output keep intra-word capitalization, so
// "MixED" capitalizes to "MixED", not "Mixed".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// joinLower lowercases every token and joins with sep.
func joinLower(tokens []string, sep string) string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = strings.ToLower(tok)
	}
	return strings.Join(out, sep)
}

// Convert validates input, segments it under the mode the policy requires,
// and recases the tokens. A non-string input returns a
// caseerrors.InputTypeError before any processing occurs; every string
// input produces a defined (possibly empty) result.
func Convert(input any, policy Policy) (string, error) {
	s, ok := input.(string)
	if !ok {
		return "", caseerrors.NewInputTypeError(input)
	}
	return Recase(segmenter.Segment(s, policy.mode()), policy), nil
}

// ToCamelCase converts input to lowerCamelCase.
// Example: "hello world" -> "helloWorld"
func ToCamelCase(input any) (string, error) {
	return Convert(input, Camel)
}

// ToPascalCase converts input to PascalCase.
// Example: "user_profile" -> "UserProfile"
func ToPascalCase(input any) (string, error) {
	return Convert(input, Pascal)
}

// ToKebabCase converts input to kebab-case, splitting camelCase and acronym
// boundaries.
// Example: "HTMLParser" -> "html-parser"
func ToKebabCase(input any) (string, error) {
	return Convert(input, Kebab)
}

// ToSnakeCase converts input to snake_case, splitting camelCase and acronym
// boundaries.
// Example: "UserProfile" -> "user_profile"
func ToSnakeCase(input any) (string, error) {
	return Convert(input, Snake)
}

// ToScreamingSnakeCase converts input to SCREAMING_SNAKE_CASE.
// Example: "userProfile" -> "USER_PROFILE"
func ToScreamingSnakeCase(input any) (string, error) {
	return Convert(input, ScreamingSnake)
}

// ToDotCase converts input to dot.case.
// Example: "hello_world Test" -> "hello.world.test"
func ToDotCase(input any) (string, error) {
	return Convert(input, Dot)
}

// ToTrainCase converts input to Train-Case.
// Example: "hello world" -> "Hello-World"
func ToTrainCase(input any) (string, error) {
	return Convert(input, Train)
}

// ToTitleCase converts input to Title Case with a space between words.
// Example: "hello_world" -> "Hello World"
func ToTitleCase(input any) (string, error) {
	return Convert(input, Title)
}
