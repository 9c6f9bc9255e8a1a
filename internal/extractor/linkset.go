package extractor

import (
	"strings"
	"sync"

	"github.com/aleister1102/hlsprobe/internal/models"
)

// LinkSet is an insertion-ordered set of manifest candidates, deduplicated by
// string equality after trimming surrounding whitespace. It is safe for concurrent use because browser event
// callbacks arrive on their own goroutines.
type LinkSet struct {
	mu      sync.Mutex
	order   []string
	sources map[string]models.LinkSource
}

// NewLinkSet creates an empty LinkSet
func NewLinkSet() *LinkSet {
	return &LinkSet{sources: make(map[string]models.LinkSource)}
}

// Add inserts the trimmed link and reports whether it was new. Blank strings
// are ignored. The first source that reported a link is kept.
func (ls *LinkSet) Add(link string, source models.LinkSource) bool {
	link = strings.TrimSpace(link)
	if link == "" {
		return false
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()

	if _, exists := ls.sources[link]; exists {
		return false
	}
	ls.sources[link] = source
	ls.order = append(ls.order, link)
	return true
}

// AddAll inserts every link with the same source and returns how many were new.
func (ls *LinkSet) AddAll(links []string, source models.LinkSource) int {
	added := 0
	for _, link := range links {
		if ls.Add(link, source) {
			added++
		}
	}
	return added
}

// Links returns a copy of the links in insertion order.
func (ls *LinkSet) Links() []string {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	out := make([]string, len(ls.order))
	copy(out, ls.order)
	return out
}

// Source returns the source that first reported link.
func (ls *LinkSet) Source(link string) (models.LinkSource, bool) {
	link = strings.TrimSpace(link)

	ls.mu.Lock()
	defer ls.mu.Unlock()

	source, ok := ls.sources[link]
	return source, ok
}

// Len returns the number of distinct links.
func (ls *LinkSet) Len() int {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return len(ls.order)
}
