package gemini_test

import (
	"context"
	"testing"

	"github.com/pagecap/menumap"
	"github.com/pagecap/menumap/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate_ReturnsErrorWhenPromptEmpty(t *testing.T) {
	t.Parallel()

	g := gemini.NewGenerator(nil) // nil client ok for this test

	_, err := g.Generate(context.Background(), "", "system")

	require.Error(t, err)
	assert.Equal(t, menumap.EINVALID, menumap.ErrorCode(err))
	assert.Contains(t, menumap.ErrorMessage(err), "prompt required")
}

func TestBuildConfig_WithSystemMessage(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig(0.4, "you are a menu extractor")

	require.NotNil(t, config.Temperature)
	assert.Equal(t, float32(0.4), *config.Temperature)
	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Equal(t, "you are a menu extractor", config.SystemInstruction.Parts[0].Text)
}

func TestBuildConfig_WithoutSystemMessage(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig(0.2, "")

	require.NotNil(t, config.Temperature)
	assert.Nil(t, config.SystemInstruction)
}
