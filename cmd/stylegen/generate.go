package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	stylegen "github.com/yacobolo/stylegen"
	"github.com/yacobolo/stylegen/internal/report"
)

var generateCmd = &cobra.Command{
	Use:     "generate [class...]",
	Aliases: []string{"gen"},
	Short:   "Compile utility classes into a stylesheet",
	Long: `Compile utility class names into styles/global.css under the
configured output root. Classes come from positional arguments, from
scanning source files for class references, and from the configured
safelist; the union is compiled.

With --split, each scanned file is treated as a page: classes shared by
enough pages (generate.threshold, default 2) go to styles/global.css and
the remainder to a per-page stylesheet.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("mode", "static", "Output mode: static|server")
	f.String("static-dir", "dist", "Static-site output root")
	f.String("server-dir", "static", "Server-rendered output root")
	f.StringSlice("scan", nil, "Glob patterns to scan for class references")
	f.StringSlice("safelist", nil, "Classes to compile regardless of scan results")
	f.Bool("stdout", false, "Print the minified CSS instead of writing files")
	f.Bool("split", false, "Write per-page stylesheets for scanned files")
	f.Int("threshold", 2, "Pages before a class is promoted to the global stylesheet")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	outputConfig, err := buildOutputConfig()
	if err != nil {
		return err
	}

	logger, err := buildLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	if split, _ := cmd.Flags().GetBool("split"); split {
		return runSplitGenerate(args, outputConfig, logger)
	}

	collector := stylegen.NewCollector()
	collector.AddClasses(args)
	collector.AddSafelistClasses(configSafelist())

	var stats stylegen.ScanStats
	if patterns := scanPatterns(); len(args) == 0 || k.Exists("scan") {
		scanned, scanStats, err := stylegen.ScanSafelist(patterns)
		if err != nil {
			return fmt.Errorf("scanning sources: %w", err)
		}
		stats = scanStats
		collector.AddClasses(scanned)
	}

	classes := collector.Classes()
	css := stylegen.GenerateCSS(classes)

	quiet := getBoolWithFallback("quiet", "quiet", false)

	if stdout, _ := cmd.Flags().GetBool("stdout"); stdout {
		fmt.Println(stylegen.Minify(css))
		return nil
	}

	writer := stylegen.NewWriter(outputConfig, logger)
	if err := writer.WriteGlobalCSS(css); err != nil {
		return fmt.Errorf("writing stylesheet: %w", err)
	}

	if !quiet {
		reporter := report.NewReporter(os.Stdout, report.Config{
			UseColors: getBoolWithFallback("color", "color", false),
			Verbose:   getBoolWithFallback("verbose", "verbose", false),
		})
		reporter.PrintSummary(report.Summary{
			Analysis: stylegen.ClassUsageAnalysis{
				GlobalClasses: classes,
			},
			Assets:       writer.Manifest(),
			ScanStats:    stats,
			Unrecognized: report.Unrecognized(classes),
		})
	}

	return nil
}

// scannedPage adapts one scanned file's class set to the Document interface.
type scannedPage struct {
	slug    string
	classes []string
}

func (p scannedPage) Slug() string                     { return p.slug }
func (p scannedPage) RenderBody(c *stylegen.Collector) { c.AddClasses(p.classes) }

// runSplitGenerate treats each scanned file as a page and writes a global
// stylesheet plus per-page stylesheets through the SiteBuilder.
func runSplitGenerate(args []string, outputConfig stylegen.OutputConfig, logger *zap.Logger) error {
	pages, stats, err := stylegen.ScanPages(scanPatterns())
	if err != nil {
		return fmt.Errorf("scanning sources: %w", err)
	}

	slugs := make([]string, 0, len(pages))
	for slug := range pages {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	docs := make([]stylegen.Document, 0, len(slugs))
	for _, slug := range slugs {
		docs = append(docs, scannedPage{slug: slug, classes: pages[slug]})
	}

	writer := stylegen.NewWriter(outputConfig, logger)
	builder := stylegen.NewSiteBuilder(writer,
		stylegen.WithGlobalThreshold(globalThreshold()),
		stylegen.WithSafelist(append(append([]string{}, args...), configSafelist()...)),
		stylegen.WithBuildLogger(logger))

	analysis, err := builder.GenerateCSS(docs)
	if err != nil {
		return fmt.Errorf("writing stylesheets: %w", err)
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		all := make([]string, 0, len(analysis.PageCounts))
		for name := range analysis.PageCounts {
			all = append(all, name)
		}

		reporter := report.NewReporter(os.Stdout, report.Config{
			UseColors: getBoolWithFallback("color", "color", false),
			Verbose:   getBoolWithFallback("verbose", "verbose", false),
		})
		reporter.PrintSummary(report.Summary{
			Analysis:     analysis,
			Assets:       writer.Manifest(),
			ScanStats:    stats,
			Unrecognized: report.Unrecognized(all),
		})
	}

	return nil
}

// configSafelist returns safelist classes: flag key first, then config key.
func configSafelist() []string {
	if classes := k.Strings("safelist"); len(classes) > 0 {
		return classes
	}
	return k.Strings("generate.safelist")
}
