package stylegen

import (
	"bytes"
	"go/format"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Large literal tables (properties.go, palette.go) are easy to knock out of
// alignment when adding entries; keep every source file gofmt-clean.
func TestSourceIsGofmtClean(t *testing.T) {
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if name != "." && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "testdata") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		src, err := os.ReadFile(path)
		require.NoError(t, err)

		formatted, err := format.Source(src)
		require.NoError(t, err, "parsing %s", path)
		assert.True(t, bytes.Equal(src, formatted), "%s is not gofmt formatted", path)
		return nil
	})
	require.NoError(t, err)
}
