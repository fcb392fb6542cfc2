// Package generator emits Go source code declaring string constants for a
// set of identifiers converted under one or more casing policies.
//
// Import path: github.com/erraggy/casetools/generator
//
// This is useful for keeping wire names (kebab-case route fragments,
// snake_case column names, dot.case config keys) in sync with Go identifiers
// without hand-maintaining the mapping:
//
//	result, err := generator.Generate(
//		[]string{"user_id", "created at", "HTMLBody"},
//		generator.WithPackageName("idents"),
//		generator.WithPolicies(caser.Kebab, caser.Snake),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile("idents.go", result.Source, 0o644)
//
// Generated output is passed through golang.org/x/tools/imports so it is
// immediately compilable and gofmt-clean.
package generator
