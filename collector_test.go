package stylegen

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectorAddAndSnapshot(t *testing.T) {
	c := NewCollector()
	c.AddClass("p-4")
	c.AddClass("p-4") // duplicate
	c.AddClasses([]string{"flex", "bg-blue-500", ""})

	assert.Equal(t, []string{"bg-blue-500", "flex", "p-4"}, c.Classes())
}

func TestCollectorSafelistUnion(t *testing.T) {
	c := NewCollector()
	c.AddClasses([]string{"p-4"})
	c.AddSafelistClasses([]string{"hidden", "p-4"})

	assert.Equal(t, []string{"hidden", "p-4"}, c.Classes())

	// Clear drops collected classes, the safelist survives.
	c.Clear()
	assert.Equal(t, []string{"hidden"}, c.Classes())

	c.ClearSafelist()
	assert.Empty(t, c.Classes())
}

func TestCollectorClearAll(t *testing.T) {
	c := NewCollector()
	c.AddClass("p-4")
	c.AddSafelistClasses([]string{"hidden"})

	c.ClearAll()
	assert.Empty(t, c.Classes())
}

func TestCollectorConcurrentAdds(t *testing.T) {
	c := NewCollector()

	const goroutines = 16
	const perGoroutine = 50

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				c.AddClass(fmt.Sprintf("class-%d-%d", g, i))
			}
		}(g)
	}
	wg.Wait()

	classes := c.Classes()
	assert.Len(t, classes, goroutines*perGoroutine, "no lost updates")
	assert.IsIncreasing(t, classes)
}

func TestCollectorGenerateCSS(t *testing.T) {
	c := NewCollector()
	c.AddClasses([]string{"p-4", "flex"})

	assert.Equal(t, GenerateCSS([]string{"flex", "p-4"}), c.GenerateCSS())
}
