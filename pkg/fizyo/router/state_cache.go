package router

import lru "github.com/hashicorp/golang-lru/v2"

const defaultStateCacheSize = 5

// newStateCache returns the cache holding resume state of entries popped with
// NavOptions.SaveState, keyed by concrete path. The least recently saved path
// is evicted first.
func newStateCache(size int) *lru.Cache[string, any] {
	if size <= 0 {
		size = defaultStateCacheSize
	}
	cache, err := lru.New[string, any](size)
	if err != nil {
		// lru.New only fails for a non-positive size
		panic(err)
	}
	return cache
}

// takeState returns and forgets the state saved for path.
func takeState(cache *lru.Cache[string, any], path string) (any, bool) {
	state, ok := cache.Peek(path)
	if !ok {
		return nil, false
	}
	cache.Remove(path)
	return state, true
}
