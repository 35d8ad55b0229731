package stylegen

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks safelist scanning statistics.
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to gitignore filtering
}

// Patterns for finding class references in source and template files.
// Ordered from most specific to least specific.
var classRefPatterns = []*regexp.Regexp{
	regexp.MustCompile(`class="([^"]+)"`),
	regexp.MustCompile(`class='([^']+)'`),
	regexp.MustCompile(`Class\(\s*"([^"]+)"`),
	regexp.MustCompile(`Classes\(\s*"([^"]+)"`),
}

var commentLinePattern = regexp.MustCompile(`^\s*//`)

// gitignore caching
var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe). Gracefully
// degrades if no .gitignore exists.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile excludes gitignored files from scanning. Only relative
// paths are checked; absolute paths (like /tmp fixtures) are outside the
// project and not subject to its gitignore.
func shouldSkipFile(path string) bool {
	if filepath.IsAbs(path) {
		return false
	}
	gi := loadGitIgnore()
	return gi != nil && gi.MatchesPath(path)
}

// ScanSafelist scans files matching the glob patterns for class references
// and returns the sorted, deduplicated set of class names found. The result
// feeds Collector.AddSafelistClasses to cover classes that only appear in
// dynamically constructed strings and would otherwise be missed by the
// render-time collector.
func ScanSafelist(globPatterns []string) ([]string, ScanStats, error) {
	files, stats, err := expandGlobPatterns(globPatterns)
	if err != nil {
		return nil, stats, err
	}

	seen := make(map[string]struct{})
	for _, file := range files {
		classes, err := scanFileForClasses(file)
		if err != nil {
			// Unreadable file: skip, not fatal.
			continue
		}
		for _, name := range classes {
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, stats, nil
}

// ScanPages scans files matching the glob patterns and groups the class
// references per file, keyed by the file's path with its extension stripped.
// Files with no class references get no entry. The result feeds the
// SiteBuilder's global/page-specific split when pages are plain source files
// rather than rendered documents.
func ScanPages(globPatterns []string) (map[string][]string, ScanStats, error) {
	files, stats, err := expandGlobPatterns(globPatterns)
	if err != nil {
		return nil, stats, err
	}

	pages := make(map[string][]string)
	for _, file := range files {
		classes, err := scanFileForClasses(file)
		if err != nil {
			// Unreadable file: skip, not fatal.
			continue
		}
		if len(classes) == 0 {
			continue
		}

		seen := make(map[string]struct{}, len(classes))
		for _, name := range classes {
			seen[name] = struct{}{}
		}
		names := make([]string, 0, len(seen))
		for name := range seen {
			names = append(names, name)
		}
		sort.Strings(names)

		pages[pageSlugForFile(file)] = names
	}

	return pages, stats, nil
}

// pageSlugForFile derives a page slug from a scanned file path:
// "site/pages/about.html" -> "site/pages/about".
func pageSlugForFile(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// expandGlobPatterns expands glob patterns to deduplicated file paths,
// tracking skip statistics.
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			seen[match] = true
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}

// scanFileForClasses scans a single file line by line.
func scanFileForClasses(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var classes []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := scanner.Text()
		if commentLinePattern.MatchString(line) {
			continue
		}
		classes = append(classes, extractClassesFromLine(line)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return classes, nil
}

// extractClassesFromLine pulls individual class tokens out of matched class
// attribute values ("btn p-4 hover:bg-blue-600" yields three tokens).
func extractClassesFromLine(line string) []string {
	var classes []string
	for _, pattern := range classRefPatterns {
		for _, match := range pattern.FindAllStringSubmatch(line, -1) {
			if len(match) < 2 {
				continue
			}
			classes = append(classes, strings.Fields(match[1])...)
		}
	}
	return classes
}
