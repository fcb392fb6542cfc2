// Package caser converts strings between word-casing conventions.
//
// Import path: github.com/erraggy/casetools/caser
//
// Each conversion is a single linear pipeline: validate the input type,
// segment the text into word tokens (see the segmenter package), then rejoin
// the tokens under the target [Policy]:
//
//	out, _ := caser.ToCamelCase("hello world")   // helloWorld
//	out, _ := caser.ToKebabCase("HTMLParser")    // html-parser
//	out, _ := caser.ToDotCase("hello_world Test") // hello.world.test
//
// The entry points accept any value to mirror their contract: a non-string
// argument returns a [caseerrors.InputTypeError] before any processing.
// Every string input is valid; empty or separator-only strings convert to
// the empty string rather than an error.
//
// Kebab-, snake-, screaming-snake-, pascal-, train-, and title-case
// conversions split camelCase and acronym boundaries ("HTMLParser" becomes
// "html-parser"). Camel- and dot-case conversions split only on explicit
// separators, so existing intra-word capitalization survives:
//
//	out, _ := caser.ToCamelCase(" THIS_is-a MixED example")
//	// thisIsAMixEDExample
//
// All functions are pure and safe for concurrent use.
package caser
