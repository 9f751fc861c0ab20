// Package cache keeps recently compiled functions so that the same source is
// parsed only once.
//
//	c, _ := cache.New[float64](256)
//	f, err := c.GetOrCompile("(a, b){a * b}", 2)
package cache

import (
	"strconv"

	lru "github.com/hashicorp/golang-lru"

	"github.com/zephyrtronium/script"
)

// DefaultSize is the capacity used when New is given a size of zero or less.
const DefaultSize = 256

// Cache is an LRU cache of compiled functions. Safe for concurrent use by
// multiple goroutines.
type Cache[T script.Number] struct {
	lru *lru.Cache
}

// New creates a cache holding up to size functions.
func New[T script.Number](size int) (*Cache[T], error) {
	if size <= 0 {
		size = DefaultSize
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache[T]{lru: c}, nil
}

// key identifies a function by arity and source. Options are not part of the
// key, so one cache should be used with one set of options.
func key(src string, arity int) string {
	return strconv.Itoa(arity) + ":" + src
}

// GetOrCompile returns the cached function for src and arity, compiling and
// caching it if it is not present. Compile errors are not cached.
func (c *Cache[T]) GetOrCompile(src string, arity int, opts ...script.ParseOption) (*script.Func[T], error) {
	k := key(src, arity)
	if f, ok := c.lru.Get(k); ok {
		return f.(*script.Func[T]), nil
	}
	f, err := script.Compile[T](src, arity, opts...)
	if err != nil {
		return nil, err
	}
	c.lru.Add(k, f)
	return f, nil
}

// Contains reports whether the function for src and arity is cached, without
// updating its recency.
func (c *Cache[T]) Contains(src string, arity int) bool {
	return c.lru.Contains(key(src, arity))
}

// Len returns the number of cached functions.
func (c *Cache[T]) Len() int {
	return c.lru.Len()
}

// Purge empties the cache.
func (c *Cache[T]) Purge() {
	c.lru.Purge()
}
