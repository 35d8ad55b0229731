package stylegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCSSDeterminism(t *testing.T) {
	classes := []string{"p-4", "md:p-8", "bg-blue-500", "hover:bg-blue-600", "flex", "w-1/3"}
	shuffled := []string{"hover:bg-blue-600", "w-1/3", "flex", "bg-blue-500", "md:p-8", "p-4"}

	first := GenerateCSS(classes)
	second := GenerateCSS(classes)
	reordered := GenerateCSS(shuffled)

	assert.Equal(t, first, second)
	assert.Equal(t, first, reordered, "output must not depend on input order")
}

func TestGenerateCSSResponsiveBucketing(t *testing.T) {
	css := GenerateCSS([]string{"p-4", "md:p-8"})

	assert.Contains(t, css, ".p-4 { padding: 1rem; }")
	assert.Contains(t, css, "@media (min-width: 768px) {")
	assert.Contains(t, css, `  .md\:p-8 { padding: 2rem; }`)

	// The flat rule must not appear inside the media block.
	mediaStart := strings.Index(css, "@media")
	require.Greater(t, mediaStart, 0)
	assert.NotContains(t, css[mediaStart:], ".p-4 {")
}

func TestGenerateCSSMediaBlocksSorted(t *testing.T) {
	css := GenerateCSS([]string{"lg:p-4", "sm:p-4", "xl:p-4", "md:p-4"})

	// Lexicographic order of the condition strings.
	lg := strings.Index(css, "@media (min-width: 1024px)")
	xl := strings.Index(css, "@media (min-width: 1280px)")
	sm := strings.Index(css, "@media (min-width: 640px)")
	md := strings.Index(css, "@media (min-width: 768px)")

	require.True(t, lg > 0 && xl > 0 && sm > 0 && md > 0)
	assert.Less(t, lg, xl)
	assert.Less(t, xl, sm)
	assert.Less(t, sm, md)
}

func TestGenerateCSSUnknownUtilityNoOp(t *testing.T) {
	css := GenerateCSS([]string{"totally-bogus-util"})
	assert.Equal(t, resetCSS, css, "unknown utilities emit only the reset block")
}

func TestGenerateCSSSpaceBetweenForm(t *testing.T) {
	css := GenerateCSS([]string{"space-y-4"})
	assert.Contains(t, css, ".space-y-4 > * + * { margin-top: 1rem; }")
}

func TestGenerateCSSModifierChainOrder(t *testing.T) {
	css := GenerateCSS([]string{"md:hover:bg-blue-500"})

	mediaStart := strings.Index(css, "@media (min-width: 768px)")
	require.Greater(t, mediaStart, 0, "breakpoint routes to a media bucket even when not the last modifier")
	assert.Contains(t, css[mediaStart:], `.md\:hover\:bg-blue-500:hover { background-color: rgb(59 130 246); }`)
}

func TestGenerateCSSEndToEnd(t *testing.T) {
	css := GenerateCSS([]string{"bg-blue-500", "hover:bg-blue-600", "p-4", "md:p-8"})

	reset := strings.Index(css, "box-sizing: border-box")
	bgBlue := strings.Index(css, ".bg-blue-500 { background-color: rgb(59 130 246); }")
	hover := strings.Index(css, `.hover\:bg-blue-600:hover { background-color: rgb(37 99 235); }`)
	p4 := strings.Index(css, ".p-4 { padding: 1rem; }")
	media := strings.Index(css, "@media (min-width: 768px) {")
	mdP8 := strings.Index(css, `.md\:p-8 { padding: 2rem; }`)

	require.True(t, reset >= 0)
	require.True(t, bgBlue > 0)
	require.True(t, hover > 0)
	require.True(t, p4 > 0)
	require.True(t, media > 0)
	require.True(t, mdP8 > 0)

	// Reset first, then flat rules in sorted class order, then the media
	// block. hover:bg-blue-600 has no breakpoint so it stays flat.
	assert.Less(t, reset, bgBlue)
	assert.Less(t, bgBlue, hover)
	assert.Less(t, hover, p4)
	assert.Less(t, p4, media)
	assert.Less(t, media, mdP8)
}
