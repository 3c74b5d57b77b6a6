// Package bloom provides a probabilistic seen-set for candidate URLs,
// sized for the large URL lists produced by sitemap indexes.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/pagecap/menumap"
)

// falsePositiveRate trades a handful of dropped candidates on very
// large sitemaps for a fixed memory footprint.
const falsePositiveRate = 0.001

// URLSet is a probabilistic set of candidate URLs. Membership is keyed
// by menumap.CandidateKey, so URLs that would merge to the same
// candidate count as one entry regardless of host case or fragment.
type URLSet struct {
	f *bloom.BloomFilter
}

// NewURLSet creates a set sized for n expected URLs.
func NewURLSet(n uint) *URLSet {
	return &URLSet{
		f: bloom.NewWithEstimates(n, falsePositiveRate),
	}
}

// Add marks a URL as seen.
func (s *URLSet) Add(rawURL string) {
	s.f.AddString(menumap.CandidateKey(rawURL))
}

// Seen returns true if a URL with the same candidate key might have
// been added before. False positives are possible; false negatives
// are not.
func (s *URLSet) Seen(rawURL string) bool {
	return s.f.TestString(menumap.CandidateKey(rawURL))
}

// EstimatedCount returns the approximate number of distinct URLs added.
func (s *URLSet) EstimatedCount() uint {
	return uint(s.f.ApproximatedSize())
}
