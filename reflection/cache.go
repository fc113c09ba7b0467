package reflection

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"lukechampine.com/blake3"

	"github.com/gpukit/spirv-reflect/spv"
)

// Cache memoizes extracted interfaces by content hash. Shader pipelines
// tend to reload the same binaries across pipeline rebuilds; a parsed
// ModuleInfo is immutable, so handing the same record back is safe.
type Cache struct {
	entries *lru.Cache[[32]byte, *ModuleInfo]
}

// NewCache creates a cache holding up to size parsed modules.
func NewCache(size int) (*Cache, error) {
	entries, err := lru.New[[32]byte, *ModuleInfo](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// Reflect parses a SPIR-V binary, serving repeated byte-identical inputs
// from the cache. Failed parses are not cached.
func (c *Cache) Reflect(data []byte) (*ModuleInfo, error) {
	key := blake3.Sum256(data)
	if info, ok := c.entries.Get(key); ok {
		return info, nil
	}

	words, err := spv.Words(data)
	if err != nil {
		return nil, err
	}
	module, err := spv.Decode(words)
	if err != nil {
		return nil, err
	}
	info, err := Interface(module)
	if err != nil {
		return nil, err
	}

	c.entries.Add(key, info)
	return info, nil
}

// Len reports how many parsed modules the cache currently holds.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Purge drops every cached entry.
func (c *Cache) Purge() {
	c.entries.Purge()
}
