// Package casetools provides string case-conversion utilities for
// normalizing word-separator conventions in identifiers and human text.
//
// casetools offers two primary packages for segmenting and recasing strings:
//
//   - segmenter: Split text into word tokens across whitespace, hyphen,
//     underscore, and camelCase/acronym boundaries
//   - caser: Rejoin token sequences under a target casing policy
//     (camelCase, kebab-case, dot.case, snake_case, and friends)
//
// Supporting packages build on the core:
//
//   - caseerrors: Structured error types for programmatic handling
//   - generator: Generate Go constant declarations from converted identifiers
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/casetools
//
// # Quick Start
//
// Convert a string to a target case:
//
//	import "github.com/erraggy/casetools/caser"
//
//	out, err := caser.ToKebabCase("HTMLParser")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out) // html-parser
//
// Inspect the token segmentation directly:
//
//	import "github.com/erraggy/casetools/segmenter"
//
//	tokens := segmenter.Segment("parseHTTPResponse", segmenter.CamelAware)
//	fmt.Println(tokens) // [parse HTTP Response]
//
// All conversions are pure functions: no I/O, no shared state, safe for
// concurrent use from multiple goroutines.
//
// # CLI
//
// The casetools command wraps the library for shell use:
//
//	casetools convert -t kebab "HTMLParser"
//	casetools segment -mode camel "parseHTTPResponse"
//	casetools generate -t pascal -package idents -o idents.go user_id
//
// Run casetools help for the full command reference.
package casetools
