package segmenter

import (
	"fmt"

	"github.com/erraggy/casetools/caseerrors"
)

// Mode selects how aggressively Segment splits a string into tokens.
type Mode int

const (
	// PlainSplit splits only on separator runs (whitespace, hyphen, underscore).
	PlainSplit Mode = iota
	// CamelAware additionally splits camelCase and acronym-to-word boundaries.
	CamelAware
)

// String returns the mode name as accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case CamelAware:
		return "camel"
	default:
		return "plain"
	}
}

// ParseMode maps a mode name ("plain" or "camel") to its Mode value.
// Unknown names return a caseerrors.ConfigError.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "plain":
		return PlainSplit, nil
	case "camel":
		return CamelAware, nil
	default:
		return PlainSplit, &caseerrors.ConfigError{
			Option:  "mode",
			Message: fmt.Sprintf("unknown segmentation mode %q: must be one of: plain, camel", s),
		}
	}
}

// charClass partitions bytes for boundary decisions. The scanner only
// distinguishes classes it needs; everything non-ASCII is classOther.
type charClass int

const (
	classOther charClass = iota
	classLower
	classUpper
	classDigit
	classSeparator
)

func classOf(c byte) charClass {
	switch {
	case c >= 'a' && c <= 'z':
		return classLower
	case c >= 'A' && c <= 'Z':
		return classUpper
	case c >= '0' && c <= '9':
		return classDigit
	case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '-' || c == '_':
		return classSeparator
	default:
		return classOther
	}
}

// Segment splits text into its ordered sequence of word tokens.
//
// Any maximal run of separator bytes (space, tab, newline, carriage return,
// hyphen, underscore) delimits tokens; consecutive or leading/trailing
// separators never produce empty tokens. In CamelAware mode an implicit
// boundary is also inserted between a lowercase letter or digit and a
// following uppercase letter, and between an uppercase run and a trailing
// Titlecase word ("HTMLParser" splits as "HTML", "Parser").
//
// The returned tokens are non-empty substrings of text, unmodified from the
// source. Empty or separator-only input returns a nil slice.
func Segment(text string, mode Mode) []string {
	var tokens []string
	start := -1 // start of the current token, -1 while in a separator run
	for i := 0; i < len(text); i++ {
		if classOf(text[i]) == classSeparator {
			if start >= 0 {
				tokens = append(tokens, text[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		if mode == CamelAware && boundaryBefore(text, i) {
			tokens = append(tokens, text[start:i])
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, text[start:])
	}
	return tokens
}

// boundaryBefore reports whether CamelAware segmentation splits immediately
// before position i. Callers guarantee i > 0 and that text[i-1:i+1] lies
// within a single non-separator run.
//
// Two boundary shapes exist:
//   - lower or digit followed by upper ("camelCase", "v2Engine")
//   - last upper of a 2+ uppercase run followed by a lower, so the trailing
//     Upper+lower pair starts a new word ("HTMLParser" -> "HTML", "Parser")
func boundaryBefore(text string, i int) bool {
	if classOf(text[i]) != classUpper {
		return false
	}
	switch classOf(text[i-1]) {
	case classLower, classDigit:
		return true
	case classUpper:
		return i+1 < len(text) && classOf(text[i+1]) == classLower
	default:
		return false
	}
}
