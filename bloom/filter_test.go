package bloom_test

import (
	"fmt"
	"testing"

	"github.com/pagecap/menumap/bloom"
	"github.com/stretchr/testify/assert"
)

func TestURLSet_AddAndSeen(t *testing.T) {
	t.Parallel()

	s := bloom.NewURLSet(1000)

	assert.False(t, s.Seen("https://example.com/page"))
	s.Add("https://example.com/page")
	assert.True(t, s.Seen("https://example.com/page"))
}

func TestURLSet_KeyedByCandidateKey(t *testing.T) {
	t.Parallel()

	s := bloom.NewURLSet(1000)
	s.Add("https://Example.COM/about#team")

	// Host case and fragments do not produce distinct entries.
	assert.True(t, s.Seen("https://example.com/about"))
	assert.True(t, s.Seen("HTTPS://example.com/about#other"))
	assert.False(t, s.Seen("https://example.com/About"))
}

func TestURLSet_NoFalseNegatives(t *testing.T) {
	t.Parallel()

	s := bloom.NewURLSet(10000)
	for i := 0; i < 5000; i++ {
		s.Add(fmt.Sprintf("https://example.com/page-%d", i))
	}
	for i := 0; i < 5000; i++ {
		assert.True(t, s.Seen(fmt.Sprintf("https://example.com/page-%d", i)))
	}
}

func TestURLSet_EstimatedCount(t *testing.T) {
	t.Parallel()

	s := bloom.NewURLSet(1000)
	for i := 0; i < 100; i++ {
		s.Add(fmt.Sprintf("https://example.com/p%d", i))
	}

	count := s.EstimatedCount()
	assert.InDelta(t, 100, float64(count), 10)
}
