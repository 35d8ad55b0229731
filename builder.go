package stylegen

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Document is a renderable page. RenderBody walks the page's markup and
// reports every utility class it uses to the collector; the builder never
// looks at the produced HTML, only at the collected classes.
type Document interface {
	// Slug identifies the page's stylesheet. Slashes nest directories.
	Slug() string
	// RenderBody renders the page, registering class usage on the collector.
	RenderBody(c *Collector)
}

// ClassUsageAnalysis is the outcome of splitting class usage across pages
// into a shared bundle and per-page remainders.
type ClassUsageAnalysis struct {
	// PageCounts maps each class name to the number of distinct pages using
	// it.
	PageCounts map[string]int
	// GlobalClasses are classes used by at least the threshold number of
	// pages, sorted.
	GlobalClasses []string
	// PageSpecific maps page slug to the sorted classes that remain after
	// global extraction.
	PageSpecific map[string][]string
}

// SiteBuilder renders a set of documents, splits their class usage into a
// global stylesheet and per-page stylesheets, and writes the results through
// a Writer.
type SiteBuilder struct {
	writer    *Writer
	safelist  []string
	threshold int
	log       *zap.Logger
}

// SiteBuilderOption configures a SiteBuilder.
type SiteBuilderOption func(*SiteBuilder)

// WithGlobalThreshold sets the page count at which a class is promoted to
// the global stylesheet. Default 2; values below 1 are clamped to 1.
func WithGlobalThreshold(n int) SiteBuilderOption {
	return func(b *SiteBuilder) {
		if n < 1 {
			n = 1
		}
		b.threshold = n
	}
}

// WithSafelist adds classes compiled into the global stylesheet regardless of
// observed usage.
func WithSafelist(classes []string) SiteBuilderOption {
	return func(b *SiteBuilder) {
		b.safelist = append(b.safelist, classes...)
	}
}

// WithBuildLogger sets the builder's logger. Nil disables logging.
func WithBuildLogger(logger *zap.Logger) SiteBuilderOption {
	return func(b *SiteBuilder) {
		b.log = logger
	}
}

// NewSiteBuilder returns a SiteBuilder writing through w.
func NewSiteBuilder(w *Writer, opts ...SiteBuilderOption) *SiteBuilder {
	b := &SiteBuilder{
		writer:    w,
		threshold: 2,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.log == nil {
		b.log = zap.NewNop()
	}
	return b
}

// AnalyzeUsage renders every page into its own collector and classifies each
// class as global (used on >= threshold pages, or safelisted) or
// page-specific. Safelisted classes count as global even when a single page
// uses them. A page whose remainder is empty gets no PageSpecific entry.
func (b *SiteBuilder) AnalyzeUsage(pages []Document) ClassUsageAnalysis {
	perPage := make(map[string][]string, len(pages))
	counts := make(map[string]int)

	for _, page := range pages {
		c := NewCollector()
		page.RenderBody(c)
		classes := c.Classes()
		perPage[page.Slug()] = classes
		for _, name := range classes {
			counts[name]++
		}
	}

	global := make(map[string]struct{})
	for name, n := range counts {
		if n >= b.threshold {
			global[name] = struct{}{}
		}
	}
	for _, name := range b.safelist {
		if name != "" {
			global[name] = struct{}{}
		}
	}

	analysis := ClassUsageAnalysis{
		PageCounts:   counts,
		PageSpecific: make(map[string][]string),
	}

	for name := range global {
		analysis.GlobalClasses = append(analysis.GlobalClasses, name)
	}
	sort.Strings(analysis.GlobalClasses)

	for slug, classes := range perPage {
		var remainder []string
		for _, name := range classes {
			if _, isGlobal := global[name]; !isGlobal {
				remainder = append(remainder, name)
			}
		}
		if len(remainder) > 0 {
			analysis.PageSpecific[slug] = remainder
		}
	}

	return analysis
}

// GenerateCSS analyzes class usage across pages and writes the global
// stylesheet plus one stylesheet per page that has page-specific classes.
// The global write failing aborts the build; per-page write failures are
// accumulated and the remaining pages still get written.
func (b *SiteBuilder) GenerateCSS(pages []Document) (ClassUsageAnalysis, error) {
	buildID := uuid.NewString()
	log := b.log.With(zap.String("build_id", buildID))

	log.Info("analyzing class usage", zap.Int("pages", len(pages)))
	analysis := b.AnalyzeUsage(pages)

	globalCSS := GenerateCSS(analysis.GlobalClasses)
	if err := b.writer.WriteGlobalCSS(globalCSS); err != nil {
		return analysis, fmt.Errorf("global stylesheet: %w", err)
	}
	log.Info("wrote global stylesheet",
		zap.Int("classes", len(analysis.GlobalClasses)))

	var errs error
	slugs := make([]string, 0, len(analysis.PageSpecific))
	for slug := range analysis.PageSpecific {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	for _, slug := range slugs {
		classes := analysis.PageSpecific[slug]
		if err := b.writer.WritePageCSS(GenerateCSS(classes), slug); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("page %s: %w", slug, err))
			continue
		}
		log.Debug("wrote page stylesheet",
			zap.String("page", slug),
			zap.Int("classes", len(classes)))
	}

	return analysis, errs
}
