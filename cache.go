package autonbsp

import "sync"

// EngineCache memoizes engines per configuration key. A host that
// derives one configuration per request (language, toggles, overrides)
// reuses compiled engines instead of rebuilding them. The zero value is
// not usable; call NewEngineCache.
type EngineCache struct {
	mu      sync.RWMutex
	engines map[string]*Engine
}

// NewEngineCache returns an empty cache ready for concurrent use.
func NewEngineCache() *EngineCache {
	return &EngineCache{engines: make(map[string]*Engine)}
}

// Get returns the engine cached under key, building and storing it on
// first use. Concurrent callers may race to build the same key; the
// first stored result wins and the others are dropped. Build errors
// are returned, never cached, so a later call can succeed.
func (c *EngineCache) Get(key string, build func() (*Engine, error)) (*Engine, error) {
	c.mu.RLock()
	e, ok := c.engines[key]
	c.mu.RUnlock()
	if ok {
		return e, nil
	}

	built, err := build()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.engines[key]; ok {
		return e, nil
	}
	c.engines[key] = built
	return built, nil
}

// Len reports the number of cached engines.
func (c *EngineCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.engines)
}

// Purge drops every cached engine.
func (c *EngineCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engines = make(map[string]*Engine)
}
