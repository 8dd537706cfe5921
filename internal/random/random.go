package random

import (
	"math/rand/v2"
	"sync"
)

// Source produces uniformly distributed integers in [0, n). [*rand.Rand] implements it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n) //nolint:gosec // game randomness, not security sensitive
}

// Global returns a Source backed by the math/rand/v2 top-level generator. It is safe for concurrent use.
func Global() Source {
	return globalSource{}
}

type lockedSource struct {
	mu  sync.Mutex
	src Source
}

func (l *lockedSource) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}

// Locked makes src safe for concurrent use.
func Locked(src Source) Source {
	return &lockedSource{src: src}
}

// NewSeeded returns a deterministic, concurrency-safe Source. Useful in tests.
func NewSeeded(seed1, seed2 uint64) Source {
	return Locked(rand.New(rand.NewPCG(seed1, seed2))) //nolint:gosec // deterministic by intent
}

// Pick returns a uniformly chosen element of items. It panics if items is empty.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}

// Shuffled returns a uniformly random permutation of items without modifying items.
func Shuffled[T any](src Source, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	// Fisher-Yates
	for i := len(out) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
