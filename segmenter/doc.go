// Package segmenter splits strings into ordered word tokens.
//
// Import path: github.com/erraggy/casetools/segmenter
//
// Segmentation treats runs of whitespace, hyphens, and underscores as
// separators. In [CamelAware] mode it additionally splits camelCase,
// PascalCase, and acronym-to-word boundaries:
//
//	segmenter.Segment("hello_world test", segmenter.PlainSplit)
//	// [hello world test]
//
//	segmenter.Segment("HTMLParser", segmenter.CamelAware)
//	// [HTML Parser]
//
// Tokens preserve their source bytes verbatim; segmentation never changes
// case or drops internal punctuation or digits. Empty or separator-only
// input produces an empty token sequence.
//
// Classification is ASCII-only: the scanner assigns each byte to one of
// {lower, upper, digit, separator, other}. Non-ASCII bytes fall into the
// "other" class and ride along inside tokens unmodified.
package segmenter
