// Package assets loads and memoizes the files the client draws with.
package assets

import "fmt"

// Kind tells a loader what a path holds.
type Kind int

const (
	KindImage Kind = iota
	KindFont
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindFont:
		return "font"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Loader reads one asset.
type Loader[T any] func(kind Kind, path string) (T, error)

type entry[T any] struct {
	value T
	err   error
}

// Cache runs its loader at most once per path and hands every later caller
// the same result, failures included.
type Cache[T any] struct {
	load    Loader[T]
	entries map[string]entry[T]
}

func NewCache[T any](load Loader[T]) *Cache[T] {
	return &Cache[T]{
		load:    load,
		entries: make(map[string]entry[T]),
	}
}

// GetOrCreate returns the asset at path, loading it on first use.
func (c *Cache[T]) GetOrCreate(kind Kind, path string) (T, error) {
	if e, ok := c.entries[path]; ok {
		return e.value, e.err
	}
	value, err := c.load(kind, path)
	if err != nil {
		err = fmt.Errorf("load %s %s: %w", kind, path, err)
	}
	c.entries[path] = entry[T]{value: value, err: err}
	return value, err
}

// Len reports how many paths have been requested.
func (c *Cache[T]) Len() int {
	return len(c.entries)
}
