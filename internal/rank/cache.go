package rank

import (
	"fmt"
	"hash/fnv"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"

	"import-planner/internal/preset"
)

// DefaultCacheSize is the number of distinct rankings kept by NewCache callers
// that have no better estimate.
const DefaultCacheSize = 16

// Cache memoizes Rank for a fixed Config. Every slot of a project ranks the
// same preset set, so the sort runs once per distinct input.
type Cache struct {
	cfg     Config
	entries *lru.Cache[uint64, EntryList]
}

// NewCache creates a ranking cache holding at most size results.
func NewCache(size int, cfg Config) (*Cache, error) {
	entries, err := lru.New[uint64, EntryList](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create ranking cache: %w", err)
	}

	return &Cache{cfg: cfg, entries: entries}, nil
}

// Config returns the priorities the cache ranks with.
func (c *Cache) Config() Config {
	return c.cfg
}

// Rank returns the ranking of presets, computing it on a cache miss.
// The returned list is a copy and may be modified by the caller.
func (c *Cache) Rank(presets []preset.Descriptor) EntryList {
	key := fingerprint(presets)

	if cached, ok := c.entries.Get(key); ok {
		return cached.Clone()
	}

	ranked := Rank(presets, c.cfg)
	c.entries.Add(key, ranked)

	return ranked.Clone()
}

// Len returns the number of cached rankings.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// fingerprint hashes every descriptor field in input order, so a hit returns
// descriptors equal to the ones passed in.
func fingerprint(presets []preset.Descriptor) uint64 {
	h := fnv.New64a()

	for _, p := range presets {
		flags := strconv.FormatBool(p.IsSystem) + strconv.FormatBool(p.IsVisible) +
			strconv.FormatBool(p.IsCompatible) + strconv.FormatBool(p.IsDefault)

		for _, s := range []string{p.Name, p.Label, p.Vendor, p.Type, flags} {
			_, _ = h.Write([]byte(s))
			_, _ = h.Write([]byte{0})
		}
	}

	return h.Sum64()
}
