package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/casetools/caser"
	"github.com/erraggy/casetools/segmenter"
)

// clearCASETOOLSEnv clears all CASETOOLS_* env vars to isolate tests from the ambient environment.
func clearCASETOOLSEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CASETOOLS_DEFAULT_POLICY", "CASETOOLS_DEFAULT_MODE", "CASETOOLS_MAX_BATCH",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearCASETOOLSEnv(t)

	c := loadConfig()

	assert.Equal(t, caser.Kebab, c.DefaultPolicy)
	assert.Equal(t, segmenter.PlainSplit, c.DefaultMode)
	assert.Equal(t, 1000, c.MaxBatch)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	clearCASETOOLSEnv(t)
	t.Setenv("CASETOOLS_DEFAULT_POLICY", "snake")
	t.Setenv("CASETOOLS_DEFAULT_MODE", "camel")
	t.Setenv("CASETOOLS_MAX_BATCH", "25")

	c := loadConfig()

	assert.Equal(t, caser.Snake, c.DefaultPolicy)
	assert.Equal(t, segmenter.CamelAware, c.DefaultMode)
	assert.Equal(t, 25, c.MaxBatch)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	clearCASETOOLSEnv(t)
	t.Setenv("CASETOOLS_DEFAULT_POLICY", "shouty")
	t.Setenv("CASETOOLS_DEFAULT_MODE", "aggressive")
	t.Setenv("CASETOOLS_MAX_BATCH", "-3")

	c := loadConfig()

	assert.Equal(t, caser.Kebab, c.DefaultPolicy)
	assert.Equal(t, segmenter.PlainSplit, c.DefaultMode)
	assert.Equal(t, 1000, c.MaxBatch)
}
