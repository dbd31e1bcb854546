package cmd

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	m "tidyvue.dev/pkg/tidyvue/internal/model"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "tidyvue", configBaseName)
	assert.Equal(t, "tidyvue.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "no-cache", noCacheFlagName)
	assert.Equal(t, "exclude", excludeFlagName)
	assert.Equal(t, "parallel", runParallelFlagName)
	assert.Equal(t, "run.parallel", runParallelConfigKey)
	assert.Equal(t, "paths.exclude", excludeConfigKey)
	assert.Equal(t, ".tidyvue-reports", defaultReportsDir)
	assert.Equal(t, false, defaultNoCache)
	assert.Equal(t, 1, defaultRunParallel)
	assert.Equal(t, "TIDYVUE", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestResolveConfig_DefaultsMatchModelDefaults(t *testing.T) {
	assert.Equal(t, m.DefaultConfig(), resolveConfig())
}

func TestParseClassLayout(t *testing.T) {
	assert.Equal(t, m.ClassLayoutInline, parseClassLayout("inline", m.ClassLayoutPreserve))
	assert.Equal(t, m.ClassLayoutPreserve, parseClassLayout("Preserve", m.ClassLayoutInline))
	assert.Equal(t, m.ClassLayoutInline, parseClassLayout("bogus", m.ClassLayoutInline))
	assert.Equal(t, m.ClassLayoutPreserve, parseClassLayout("", m.ClassLayoutPreserve))
}

func TestParseDirectiveStyle(t *testing.T) {
	assert.Equal(t, m.DirectiveStyleShort, parseDirectiveStyle("short", m.DirectiveStyleLong))
	assert.Equal(t, m.DirectiveStyleLong, parseDirectiveStyle("long", m.DirectiveStyleShort))
	assert.Equal(t, m.DirectiveStyleShort, parseDirectiveStyle("nope", m.DirectiveStyleShort))
}

func TestParseSameNameMode(t *testing.T) {
	assert.Equal(t, m.SameNameIgnore, parseSameNameMode("ignore", m.SameNameAddValue))
	assert.Equal(t, m.SameNameRemoveValue, parseSameNameMode("remove_value", m.SameNameIgnore))
	assert.Equal(t, m.SameNameRemoveValue, parseSameNameMode("removeValue", m.SameNameIgnore))
	assert.Equal(t, m.SameNameAddValue, parseSameNameMode("add_value", m.SameNameIgnore))
	assert.Equal(t, m.SameNameIgnore, parseSameNameMode("wat", m.SameNameIgnore))
}

func TestParseAttributeLayout(t *testing.T) {
	assert.Equal(t, m.AttributeLayoutInline, parseAttributeLayout("inline", m.AttributeLayoutPreserve))
	assert.Equal(t, m.AttributeLayoutPreserve, parseAttributeLayout("preserve", m.AttributeLayoutInline))
	assert.Equal(t, m.AttributeLayoutPreserve, parseAttributeLayout("???", m.AttributeLayoutPreserve))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty uses default", "", slog.LevelWarn},
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning alias", "warning", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"numeric", "-4", slog.LevelDebug},
		{"garbage uses default", "loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}
