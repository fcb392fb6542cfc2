package caser

import (
	"fmt"

	"github.com/erraggy/casetools/caseerrors"
	"github.com/erraggy/casetools/segmenter"
)

// Policy is a target casing convention governing how word tokens are
// rejoined into a single string.
type Policy int

const (
	// Camel produces lowerCamelCase: "hello world" -> "helloWorld".
	Camel Policy = iota
	// Pascal produces PascalCase: "hello world" -> "HelloWorld".
	Pascal
	// Kebab produces kebab-case: "HelloWorld" -> "hello-world".
	Kebab
	// Snake produces snake_case: "HelloWorld" -> "hello_world".
	Snake
	// ScreamingSnake produces SCREAMING_SNAKE_CASE: "HelloWorld" -> "HELLO_WORLD".
	ScreamingSnake
	// Dot produces dot.case: "hello world" -> "hello.world".
	Dot
	// Train produces Train-Case: "hello world" -> "Hello-World".
	Train
	// Title produces Title Case: "hello_world" -> "Hello World".
	Title
)

// policyNames maps each policy to the name accepted by ParsePolicy.
var policyNames = map[Policy]string{
	Camel:          "camel",
	Pascal:         "pascal",
	Kebab:          "kebab",
	Snake:          "snake",
	ScreamingSnake: "screaming-snake",
	Dot:            "dot",
	Train:          "train",
	Title:          "title",
}

// String returns the policy name as accepted by ParsePolicy.
func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// mode returns the segmentation mode the policy requires. Kebab and its
// relatives split camelCase and acronym boundaries; camel and dot split
// only on explicit separators.
func (p Policy) mode() segmenter.Mode {
	switch p {
	case Camel, Dot:
		return segmenter.PlainSplit
	default:
		return segmenter.CamelAware
	}
}

// Policies returns all supported policies in declaration order.
func Policies() []Policy {
	return []Policy{Camel, Pascal, Kebab, Snake, ScreamingSnake, Dot, Train, Title}
}

// PolicyNames returns the names of all supported policies, suitable for
// flag and tool input validation messages.
func PolicyNames() []string {
	policies := Policies()
	names := make([]string, len(policies))
	for i, p := range policies {
		names[i] = p.String()
	}
	return names
}

// ParsePolicy maps a policy name to its Policy value. Unknown names return
// a caseerrors.ConfigError listing the valid names.
func ParsePolicy(s string) (Policy, error) {
	for _, p := range Policies() {
		if p.String() == s {
			return p, nil
		}
	}
	return Camel, &caseerrors.ConfigError{
		Option:  "policy",
		Message: fmt.Sprintf("unknown policy %q: must be one of: %v", s, PolicyNames()),
	}
}
