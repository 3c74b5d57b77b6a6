package menumap_test

import (
	"testing"

	"github.com/pagecap/menumap"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("default is valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, menumap.DefaultConfig().Validate())
	})

	t.Run("negative min pages", func(t *testing.T) {
		t.Parallel()
		cfg := menumap.DefaultConfig()
		cfg.MinPages = -1
		assert.Equal(t, menumap.EINVALID, menumap.ErrorCode(cfg.Validate()))
	})

	t.Run("max below min", func(t *testing.T) {
		t.Parallel()
		cfg := menumap.DefaultConfig()
		cfg.MinPages = 10
		cfg.MaxPages = 5
		assert.Equal(t, menumap.EINVALID, menumap.ErrorCode(cfg.Validate()))
	})

	t.Run("zero iterations", func(t *testing.T) {
		t.Parallel()
		cfg := menumap.DefaultConfig()
		cfg.MaxIterations = 0
		assert.Equal(t, menumap.EINVALID, menumap.ErrorCode(cfg.Validate()))
	})
}

func TestState_RecordError_AppendOnly(t *testing.T) {
	t.Parallel()

	st := menumap.NewState(menumap.DefaultConfig(), "https://example.com")
	st.RecordError(menumap.StageSitemap, "first")
	st.RecordError(menumap.StageSitemap, "second")
	st.RecordError(menumap.StageHTML, "third")

	assert.Equal(t, []string{"first", "second"}, st.Errors[menumap.StageSitemap])
	assert.Equal(t, []string{"third"}, st.Errors[menumap.StageHTML])
}

func TestState_TargetURL(t *testing.T) {
	t.Parallel()

	st := menumap.NewState(menumap.DefaultConfig(), "https://kr.example.com/ko/")
	assert.Equal(t, "https://kr.example.com/ko/", st.TargetURL())

	st.NormalizedURL = "https://example.com/"
	assert.Equal(t, "https://example.com/", st.TargetURL())
}

func TestNewState(t *testing.T) {
	t.Parallel()

	st := menumap.NewState(menumap.DefaultConfig(), "https://example.com")

	assert.NotEmpty(t, st.ID)
	assert.Equal(t, menumap.StatusInitialized, st.Status)
	assert.Zero(t, st.Iteration)
	assert.NotNil(t, st.Errors)
}

func TestStatus_Terminal(t *testing.T) {
	t.Parallel()

	terminal := []menumap.Status{
		menumap.StatusCompleted,
		menumap.StatusMaxIterationsReached,
		menumap.StatusFinalizationFailed,
		menumap.StatusVerificationFailed,
	}
	for _, s := range terminal {
		assert.True(t, s.Terminal(), string(s))
	}

	nonTerminal := []menumap.Status{
		menumap.StatusInitialized,
		menumap.StatusURLNormalized,
		menumap.StatusSitemapExtracted,
		menumap.StatusHTMLParsed,
		menumap.StatusVerificationCompleted,
		menumap.StatusRetryNeeded,
	}
	for _, s := range nonTerminal {
		assert.False(t, s.Terminal(), string(s))
	}
}
