package stylegen

import (
	"sort"
	"sync"
)

// Collector accumulates the utility class names observed while markup is
// rendered, plus a safelist of names that only appear in dynamically built
// strings. Collectors are instantiable values passed to the render pipeline;
// create one per build so parallel builds never share state.
//
// All mutation goes through a single mutex. Renderers on multiple goroutines
// may add classes concurrently; no addition is lost and Classes never
// observes a partial insert. The lock covers only the set operation, never
// CSS generation or I/O.
type Collector struct {
	mu       sync.Mutex
	classes  map[string]struct{}
	safelist map[string]struct{}
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{
		classes:  make(map[string]struct{}),
		safelist: make(map[string]struct{}),
	}
}

// AddClass records one class name.
func (c *Collector) AddClass(name string) {
	if name == "" {
		return
	}
	c.mu.Lock()
	c.classes[name] = struct{}{}
	c.mu.Unlock()
}

// AddClasses records a batch of class names.
func (c *Collector) AddClasses(names []string) {
	c.mu.Lock()
	for _, name := range names {
		if name != "" {
			c.classes[name] = struct{}{}
		}
	}
	c.mu.Unlock()
}

// AddSafelistClasses records class names that must be compiled even if never
// observed during rendering.
func (c *Collector) AddSafelistClasses(names []string) {
	c.mu.Lock()
	for _, name := range names {
		if name != "" {
			c.safelist[name] = struct{}{}
		}
	}
	c.mu.Unlock()
}

// Classes returns the sorted, deduplicated union of collected and safelisted
// class names. The snapshot is copied under the lock; sorting happens
// outside it.
func (c *Collector) Classes() []string {
	c.mu.Lock()
	names := make([]string, 0, len(c.classes)+len(c.safelist))
	for name := range c.classes {
		names = append(names, name)
	}
	for name := range c.safelist {
		if _, seen := c.classes[name]; !seen {
			names = append(names, name)
		}
	}
	c.mu.Unlock()

	sort.Strings(names)
	return names
}

// Clear empties the collected classes between render passes. The safelist
// survives.
func (c *Collector) Clear() {
	c.mu.Lock()
	c.classes = make(map[string]struct{})
	c.mu.Unlock()
}

// ClearSafelist empties the safelist only.
func (c *Collector) ClearSafelist() {
	c.mu.Lock()
	c.safelist = make(map[string]struct{})
	c.mu.Unlock()
}

// ClearAll resets both collected classes and the safelist.
func (c *Collector) ClearAll() {
	c.mu.Lock()
	c.classes = make(map[string]struct{})
	c.safelist = make(map[string]struct{})
	c.mu.Unlock()
}

// GenerateCSS compiles the current snapshot. Equivalent to
// GenerateCSS(c.Classes()); generation runs outside the lock.
func (c *Collector) GenerateCSS() string {
	return GenerateCSS(c.Classes())
}
