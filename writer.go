package stylegen

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// RenderMode selects the output layout.
type RenderMode int

const (
	// ModeStatic targets a static-site build: assets live under a public/
	// directory and are served with a /public URL prefix.
	ModeStatic RenderMode = iota
	// ModeServer targets a server-rendered build: assets live in the server's
	// static root and are served without a prefix.
	ModeServer
)

// OutputConfig declares the two output roots and the active rendering mode.
// Read-only after construction.
type OutputConfig struct {
	StaticDir string // static-site output root
	ServerDir string // server-rendered output root
	Mode      RenderMode
}

// assetRoot is the filesystem directory assets are written under.
func (c OutputConfig) assetRoot() string {
	if c.Mode == ModeStatic {
		return filepath.Join(c.StaticDir, "public")
	}
	return c.ServerDir
}

// urlPrefix is the URL path segment in front of styles/ links. JS paths are
// never prefixed; see the js path helpers.
func (c OutputConfig) urlPrefix() string {
	if c.Mode == ModeStatic {
		return "/public"
	}
	return ""
}

// AssetEntry records one written output file, in the shape the surrounding
// build's asset manifest expects.
type AssetEntry struct {
	Path         string // filesystem path
	URLPath      string // path embedded in <link>/<script> tags
	Fingerprint  string // content hash (sha256, truncated)
	Bytes        int
	CacheControl string
}

const assetCacheControl = "public, max-age=31536000, immutable"

// Writer persists minified CSS and generated JS according to an
// OutputConfig. CSS goes under styles/, JS under js/. Writes are atomic
// (temp file + rename); a failing write propagates to the caller, no retry.
//
// JS is written as-is: the CSS minifier's regex pipeline is not safe for
// JavaScript, so the CSS/JS minification asymmetry is deliberate here.
type Writer struct {
	config OutputConfig
	log    *zap.Logger

	mu      sync.Mutex
	entries []AssetEntry
}

// NewWriter returns a Writer for the given output configuration. A nil
// logger disables logging.
func NewWriter(config OutputConfig, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{config: config, log: logger}
}

// WriteGlobalCSS minifies and writes the sitewide stylesheet.
func (w *Writer) WriteGlobalCSS(css string) error {
	return w.writeCSS("global.css", css)
}

// WriteSharedCSS minifies and writes a named shared bundle.
func (w *Writer) WriteSharedCSS(css, name string) error {
	return w.writeCSS("shared-"+sanitizeSlug(name)+".css", css)
}

// WritePageCSS minifies and writes one page's stylesheet. A slug containing
// path separators produces nested directories.
func (w *Writer) WritePageCSS(css, pageSlug string) error {
	return w.writeCSS("page-"+sanitizeSlug(pageSlug)+".css", css)
}

// WriteGlobalJS writes the sitewide script.
func (w *Writer) WriteGlobalJS(js string) error {
	return w.writeAsset("js", "global.js", []byte(js))
}

// WritePageJS writes one page's script.
func (w *Writer) WritePageJS(js, pageSlug string) error {
	return w.writeAsset("js", "page-"+sanitizeSlug(pageSlug)+".js", []byte(js))
}

// GlobalCSSPath returns the URL path for the global stylesheet:
// /public/styles/global.css in static mode, /styles/global.css in server
// mode.
func (w *Writer) GlobalCSSPath() string {
	return w.config.urlPrefix() + "/styles/global.css"
}

// SharedCSSPath returns the URL path for a named shared bundle.
func (w *Writer) SharedCSSPath(name string) string {
	return w.config.urlPrefix() + "/styles/shared-" + sanitizeSlug(name) + ".css"
}

// PageCSSPath returns the URL path for a page's stylesheet.
func (w *Writer) PageCSSPath(pageSlug string) string {
	return w.config.urlPrefix() + "/styles/page-" + sanitizeSlug(pageSlug) + ".css"
}

// GlobalJSPath returns the URL path for the global script. JS paths carry no
// /public prefix in either mode.
func (w *Writer) GlobalJSPath() string {
	return "/js/global.js"
}

// PageJSPath returns the URL path for a page's script.
func (w *Writer) PageJSPath(pageSlug string) string {
	return "/js/page-" + sanitizeSlug(pageSlug) + ".js"
}

// Manifest returns a snapshot of the asset entries written so far.
func (w *Writer) Manifest() []AssetEntry {
	w.mu.Lock()
	defer w.mu.Unlock()
	entries := make([]AssetEntry, len(w.entries))
	copy(entries, w.entries)
	return entries
}

func (w *Writer) writeCSS(name, css string) error {
	return w.writeAsset("styles", name, []byte(Minify(css)))
}

func (w *Writer) writeAsset(subdir, name string, data []byte) error {
	path := filepath.Join(w.config.assetRoot(), subdir, filepath.FromSlash(name))

	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	sum := sha256.Sum256(data)
	entry := AssetEntry{
		Path:         path,
		URLPath:      w.urlPathFor(subdir, name),
		Fingerprint:  hex.EncodeToString(sum[:])[:16],
		Bytes:        len(data),
		CacheControl: assetCacheControl,
	}

	w.mu.Lock()
	w.entries = append(w.entries, entry)
	w.mu.Unlock()

	w.log.Debug("wrote asset",
		zap.String("path", path),
		zap.String("url", entry.URLPath),
		zap.Int("bytes", entry.Bytes))

	return nil
}

func (w *Writer) urlPathFor(subdir, name string) string {
	if subdir == "styles" {
		return w.config.urlPrefix() + "/styles/" + name
	}
	return "/" + subdir + "/" + name
}

// writeFileAtomic writes data via a temp file in the target directory
// followed by a rename, creating intermediate directories as needed.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".stylegen-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("chmod temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename: %w", err)
	}

	return nil
}

// sanitizeSlug slugifies each path segment while preserving separators, so
// "Logs/Post Name" becomes "logs/post-name" and still nests directories.
func sanitizeSlug(s string) string {
	segments := strings.Split(s, "/")
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		out = append(out, slug.Make(seg))
	}
	return strings.Join(out, "/")
}
