package stylegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePage registers a fixed class list when rendered.
type fakePage struct {
	slug    string
	classes []string
}

func (p fakePage) Slug() string            { return p.slug }
func (p fakePage) RenderBody(c *Collector) { c.AddClasses(p.classes) }

func TestAnalyzeUsageThreshold(t *testing.T) {
	pages := []Document{
		fakePage{slug: "home", classes: []string{"p-4", "flex", "text-sm"}},
		fakePage{slug: "about", classes: []string{"p-4", "flex", "italic"}},
		fakePage{slug: "contact", classes: []string{"p-4", "underline"}},
	}

	b := NewSiteBuilder(nil)
	analysis := b.AnalyzeUsage(pages)

	// p-4 on three pages, flex on two: both clear the default threshold of 2.
	assert.Equal(t, []string{"flex", "p-4"}, analysis.GlobalClasses)
	assert.Equal(t, 3, analysis.PageCounts["p-4"])
	assert.Equal(t, 2, analysis.PageCounts["flex"])

	assert.Equal(t, []string{"text-sm"}, analysis.PageSpecific["home"])
	assert.Equal(t, []string{"italic"}, analysis.PageSpecific["about"])
	assert.Equal(t, []string{"underline"}, analysis.PageSpecific["contact"])
}

func TestAnalyzeUsageCustomThreshold(t *testing.T) {
	pages := []Document{
		fakePage{slug: "a", classes: []string{"p-4", "flex"}},
		fakePage{slug: "b", classes: []string{"p-4", "flex"}},
		fakePage{slug: "c", classes: []string{"p-4"}},
	}

	b := NewSiteBuilder(nil, WithGlobalThreshold(3))
	analysis := b.AnalyzeUsage(pages)

	assert.Equal(t, []string{"p-4"}, analysis.GlobalClasses)
	assert.Equal(t, []string{"flex"}, analysis.PageSpecific["a"])
	assert.Equal(t, []string{"flex"}, analysis.PageSpecific["b"])
	assert.NotContains(t, analysis.PageSpecific, "c")
}

func TestAnalyzeUsageSafelistIsGlobal(t *testing.T) {
	pages := []Document{
		fakePage{slug: "only", classes: []string{"p-4"}},
	}

	b := NewSiteBuilder(nil, WithSafelist([]string{"hidden"}))
	analysis := b.AnalyzeUsage(pages)

	assert.Contains(t, analysis.GlobalClasses, "hidden")
}

func TestAnalyzeUsageZeroClassPage(t *testing.T) {
	pages := []Document{
		fakePage{slug: "empty"},
		fakePage{slug: "full", classes: []string{"p-4"}},
	}

	b := NewSiteBuilder(nil)
	analysis := b.AnalyzeUsage(pages)

	assert.NotContains(t, analysis.PageSpecific, "empty")
	assert.Equal(t, []string{"p-4"}, analysis.PageSpecific["full"])
}

func TestGenerateCSSWritesGlobalAndPages(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(OutputConfig{ServerDir: dir, Mode: ModeServer}, nil)

	pages := []Document{
		fakePage{slug: "home", classes: []string{"p-4", "text-sm"}},
		fakePage{slug: "about", classes: []string{"p-4"}},
	}

	b := NewSiteBuilder(w)
	analysis, err := b.GenerateCSS(pages)
	require.NoError(t, err)

	assert.Equal(t, []string{"p-4"}, analysis.GlobalClasses)

	global, err := os.ReadFile(filepath.Join(dir, "styles", "global.css"))
	require.NoError(t, err)
	assert.Contains(t, string(global), ".p-4{padding:1rem}")

	home, err := os.ReadFile(filepath.Join(dir, "styles", "page-home.css"))
	require.NoError(t, err)
	assert.Contains(t, string(home), ".text-sm{")
	assert.NotContains(t, string(home), ".p-4{")

	// about has no page-specific classes, so no file.
	_, err = os.Stat(filepath.Join(dir, "styles", "page-about.css"))
	assert.True(t, os.IsNotExist(err))
}
