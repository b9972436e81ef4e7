// Package cache provides a generic LRU cache used by the resource registries.
//
//	c := cache.New[string, *texture.Texture](64, cache.WithEvict(release))
//	tex, err := c.GetOrCreate(path, load)
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
