package stylegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterStaticMode(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(OutputConfig{StaticDir: dir, Mode: ModeStatic}, nil)

	require.NoError(t, w.WriteGlobalCSS(".p-4 { padding: 1rem; }"))

	// Files land under public/ and CSS is minified on the way out.
	data, err := os.ReadFile(filepath.Join(dir, "public", "styles", "global.css"))
	require.NoError(t, err)
	assert.Equal(t, ".p-4{padding:1rem}", string(data))

	assert.Equal(t, "/public/styles/global.css", w.GlobalCSSPath())
}

func TestWriterServerMode(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(OutputConfig{ServerDir: dir, Mode: ModeServer}, nil)

	require.NoError(t, w.WriteGlobalCSS(".flex { display: flex; }"))

	data, err := os.ReadFile(filepath.Join(dir, "styles", "global.css"))
	require.NoError(t, err)
	assert.Equal(t, ".flex{display:flex}", string(data))

	// No /public prefix in server mode.
	assert.Equal(t, "/styles/global.css", w.GlobalCSSPath())
}

func TestWriterPageCSSNestedSlug(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(OutputConfig{ServerDir: dir, Mode: ModeServer}, nil)

	require.NoError(t, w.WritePageCSS(".m-0 { margin: 0; }", "Logs/Post Name"))

	// Each slug segment is slugified; separators nest directories under the
	// page- prefix.
	path := filepath.Join(dir, "styles", "page-logs", "post-name.css")
	_, err := os.Stat(path)
	require.NoError(t, err)

	assert.Equal(t, "/styles/page-logs/post-name.css", w.PageCSSPath("Logs/Post Name"))
}

func TestWriterSharedCSS(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(OutputConfig{StaticDir: dir, Mode: ModeStatic}, nil)

	require.NoError(t, w.WriteSharedCSS(".grid { display: grid; }", "blog"))

	_, err := os.Stat(filepath.Join(dir, "public", "styles", "shared-blog.css"))
	require.NoError(t, err)
	assert.Equal(t, "/public/styles/shared-blog.css", w.SharedCSSPath("blog"))
}

func TestWriterJSNeverPrefixed(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(OutputConfig{StaticDir: dir, Mode: ModeStatic}, nil)

	js := `console.log("hi  there");`
	require.NoError(t, w.WriteGlobalJS(js))
	require.NoError(t, w.WritePageJS(js, "home"))

	// JS is written verbatim, not minified.
	data, err := os.ReadFile(filepath.Join(dir, "public", "js", "global.js"))
	require.NoError(t, err)
	assert.Equal(t, js, string(data))

	// URL paths carry no /public segment even in static mode.
	assert.Equal(t, "/js/global.js", w.GlobalJSPath())
	assert.Equal(t, "/js/page-home.js", w.PageJSPath("home"))
}

func TestWriterManifest(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(OutputConfig{ServerDir: dir, Mode: ModeServer}, nil)

	require.NoError(t, w.WriteGlobalCSS(".p-4 { padding: 1rem; }"))
	require.NoError(t, w.WriteGlobalJS("console.log(1);"))

	entries := w.Manifest()
	require.Len(t, entries, 2)

	css := entries[0]
	assert.Equal(t, "/styles/global.css", css.URLPath)
	assert.Len(t, css.Fingerprint, 16)
	assert.Equal(t, len(".p-4{padding:1rem}"), css.Bytes)
	assert.NotEmpty(t, css.CacheControl)

	js := entries[1]
	assert.Equal(t, "/js/global.js", js.URLPath)
}

func TestSanitizeSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"home", "home"},
		{"Post Name", "post-name"},
		{"Logs/Post Name", "logs/post-name"},
		{"a//b", "a/b"},
		{"Ünïcode", "unicode"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeSlug(tt.input))
		})
	}
}
