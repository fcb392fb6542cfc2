package generator

import (
	"errors"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/casetools/caseerrors"
	"github.com/erraggy/casetools/caser"
)

func TestGenerate(t *testing.T) {
	t.Run("single policy omits suffix", func(t *testing.T) {
		result, err := Generate(
			[]string{"user_id", "created at"},
			generateOpts(caser.Kebab)...,
		)
		require.NoError(t, err)

		src := string(result.Source)
		assert.Equal(t, 2, result.ConstCount)
		assert.Equal(t, "idents", result.PackageName)
		assert.Contains(t, src, `UserId = "user-id"`)
		assert.Contains(t, src, `CreatedAt = "created-at"`)
		assert.NotContains(t, src, "UserIdKebab")
	})

	t.Run("multiple policies add suffixes", func(t *testing.T) {
		result, err := Generate(
			[]string{"HTMLBody"},
			generateOpts(caser.Kebab, caser.Snake, caser.ScreamingSnake)...,
		)
		require.NoError(t, err)

		src := string(result.Source)
		assert.Equal(t, 3, result.ConstCount)
		assert.Contains(t, src, `HTMLBodyKebab = "html-body"`)
		assert.Contains(t, src, `HTMLBodySnake = "html_body"`)
		assert.Contains(t, src, `HTMLBodyScreamingSnake = "HTML_BODY"`)
	})

	t.Run("output is parseable Go source", func(t *testing.T) {
		result, err := Generate(
			[]string{"user_id", "session token", "retryCount"},
			WithPackageName("wire"),
			WithPolicies(caser.Snake, caser.Dot),
			WithHeaderComment("casetools generate -t snake,dot"),
		)
		require.NoError(t, err)

		fset := token.NewFileSet()
		file, err := parser.ParseFile(fset, "generated.go", result.Source, parser.ParseComments)
		require.NoError(t, err, "generated source must parse:\n%s", result.Source)
		assert.Equal(t, "wire", file.Name.Name)

		src := string(result.Source)
		assert.True(t, strings.HasPrefix(src, "// Code generated by casetools. DO NOT EDIT."))
		assert.Contains(t, src, "casetools generate -t snake,dot")
	})

	t.Run("default configuration", func(t *testing.T) {
		result, err := Generate([]string{"some_name"})
		require.NoError(t, err)
		assert.Equal(t, "idents", result.PackageName)
		assert.Contains(t, string(result.Source), `SomeName = "some-name"`)
	})
}

func TestGenerateErrors(t *testing.T) {
	t.Run("no identifiers", func(t *testing.T) {
		_, err := Generate(nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, caseerrors.ErrConfig))
	})

	t.Run("no policies", func(t *testing.T) {
		_, err := Generate([]string{"a"}, WithPolicies())
		require.Error(t, err)
		assert.True(t, errors.Is(err, caseerrors.ErrConfig))
	})

	t.Run("invalid package name", func(t *testing.T) {
		_, err := Generate([]string{"a"}, WithPackageName("my-pkg"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, caseerrors.ErrConfig))
		assert.Contains(t, err.Error(), "my-pkg")
	})

	t.Run("identifier without tokens", func(t *testing.T) {
		_, err := Generate([]string{"  --__  "})
		require.Error(t, err)
		assert.True(t, errors.Is(err, caseerrors.ErrConfig))
	})

	t.Run("identifier mapping to invalid constant name", func(t *testing.T) {
		_, err := Generate([]string{"123_abc"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, caseerrors.ErrConfig))
		assert.Contains(t, err.Error(), "123_abc")
	})

	t.Run("colliding constant names", func(t *testing.T) {
		_, err := Generate([]string{"user_id", "user id"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, caseerrors.ErrConfig))
		assert.Contains(t, err.Error(), "UserId")
	})
}

func TestIsGoIdentifier(t *testing.T) {
	valid := []string{"idents", "wire", "_private", "Pkg2", "a"}
	for _, s := range valid {
		assert.True(t, isGoIdentifier(s), "isGoIdentifier(%q)", s)
	}

	invalid := []string{"", "2fast", "my-pkg", "white space", "dot.name"}
	for _, s := range invalid {
		assert.False(t, isGoIdentifier(s), "isGoIdentifier(%q)", s)
	}
}

func generateOpts(policies ...caser.Policy) []Option {
	return []Option{
		WithPackageName("idents"),
		WithPolicies(policies...),
	}
}
