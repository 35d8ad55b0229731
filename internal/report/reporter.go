// Package report renders human-readable build summaries to a terminal.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"

	stylegen "github.com/yacobolo/stylegen"
)

// Summary collects everything a build wants to show the user.
type Summary struct {
	Analysis     stylegen.ClassUsageAnalysis
	Assets       []stylegen.AssetEntry
	ScanStats    stylegen.ScanStats
	Unrecognized []string
}

// Reporter handles formatting and outputting build summaries.
type Reporter struct {
	w         io.Writer
	useColors bool
	verbose   bool
}

// Config controls reporter behavior.
type Config struct {
	UseColors bool
	Verbose   bool
}

// NewReporter creates a new reporter with the given configuration.
func NewReporter(w io.Writer, config Config) *Reporter {
	return &Reporter{
		w:         w,
		useColors: shouldUseColors(config),
		verbose:   config.Verbose,
	}
}

// shouldUseColors determines if colors should be enabled.
func shouldUseColors(config Config) bool {
	// Explicit flag wins
	if config.UseColors {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// UseColors returns whether colors are enabled.
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintSummary outputs the build summary: class split, written assets, scan
// statistics, and any unrecognized classes.
func (r *Reporter) PrintSummary(s Summary) {
	fmt.Fprintf(r.w, "%s\n", RenderStyle(StyleCyan, "Build summary", r.useColors))

	fmt.Fprintf(r.w, "  global classes: %d\n", len(s.Analysis.GlobalClasses))
	fmt.Fprintf(r.w, "  pages with specific styles: %d\n", len(s.Analysis.PageSpecific))

	if s.ScanStats.FilesDiscovered > 0 {
		fmt.Fprintf(r.w, "  safelist scan: %d scanned, %d skipped\n",
			s.ScanStats.FilesScanned, s.ScanStats.FilesSkipped)
	}

	r.printAssets(s.Assets)
	r.printUnrecognized(s.Unrecognized)
}

// printAssets lists written files sorted by path, with sizes.
func (r *Reporter) printAssets(assets []stylegen.AssetEntry) {
	if len(assets) == 0 {
		return
	}

	sorted := make([]stylegen.AssetEntry, len(assets))
	copy(sorted, assets)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "%s\n", RenderStyle(StyleCyan, "Written assets", r.useColors))
	for _, a := range sorted {
		line := fmt.Sprintf("  %s (%s)", a.Path, formatBytes(a.Bytes))
		fmt.Fprintln(r.w, line)
		if r.verbose {
			fmt.Fprintf(r.w, "    %s\n",
				RenderStyle(StyleGray, fmt.Sprintf("url=%s fingerprint=%s", a.URLPath, a.Fingerprint), r.useColors))
		}
	}
}

// printUnrecognized warns about classes that compiled to no rule. These
// produce class attributes with no effect and usually indicate a typo.
func (r *Reporter) printUnrecognized(classes []string) {
	if len(classes) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "%s\n",
		RenderStyle(StyleYellow, fmt.Sprintf("%s produced no CSS rule:", pluralizeCount(len(classes), "class", "classes")), r.useColors))
	for _, name := range classes {
		fmt.Fprintf(r.w, "  %s\n", name)
	}
	fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: unrecognized utilities are silently dropped; check for typos", r.useColors))
}

// PrintError outputs a build failure message.
func (r *Reporter) PrintError(err error) {
	fmt.Fprintf(r.w, "%s %v\n", RenderStyle(StyleRed, "build failed:", r.useColors), err)
}

// PrintSuccess outputs a build success message.
func (r *Reporter) PrintSuccess() {
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "build succeeded", r.useColors))
}

// Unrecognized returns the sorted subset of classes whose base utility
// compiles to no declarations.
func Unrecognized(classes []string) []string {
	var unknown []string
	for _, name := range classes {
		_, base := stylegen.ParseModifiers(name)
		if _, ok := stylegen.GenerateProperties(base); !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// formatBytes renders a byte count with a unit.
func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form.
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
