package stylegen

import (
	"fmt"
	"regexp"
	"strings"
)

// Minifier patterns. compilePattern returns nil on a malformed pattern and
// the corresponding step is skipped: minification is a best-effort
// optimization, never a reason to fail a build.
var (
	cssCommentRe = compilePattern(`(?s)/\*.*?\*/`)
	cssStringRe  = compilePattern(`"(?:\\.|[^"\\])*"|'(?:\\.|[^'\\])*'`)
	cssSpaceRe   = compilePattern(`\s+`)
	cssPunctRe   = compilePattern(`\s*([{};:,>+~()])\s*`)
)

func compilePattern(expr string) *regexp.Regexp {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil
	}
	return re
}

// Minify strips comments and collapses whitespace/punctuation spacing from a
// CSS string. Quoted string literals are swapped for placeholder comments
// before whitespace handling and restored afterwards, so values like
// content: "a : b" survive untouched.
//
// Minify is idempotent: minifying already-minified CSS returns it unchanged.
func Minify(css string) string {
	// 1. Comments.
	if cssCommentRe != nil {
		css = cssCommentRe.ReplaceAllString(css, "")
	}

	// 2. Protect string literals.
	var literals []string
	if cssStringRe != nil {
		css = cssStringRe.ReplaceAllStringFunc(css, func(lit string) string {
			literals = append(literals, lit)
			return fmt.Sprintf("/*__str%d__*/", len(literals)-1)
		})
	}

	// 3. Collapse whitespace runs.
	if cssSpaceRe != nil {
		css = cssSpaceRe.ReplaceAllString(css, " ")
	}

	// 4. Drop spaces around punctuation.
	if cssPunctRe != nil {
		css = cssPunctRe.ReplaceAllString(css, "$1")
	}

	// 5. Trailing semicolon before a closing brace.
	css = strings.ReplaceAll(css, ";}", "}")

	// 6. Restore literals.
	for i, lit := range literals {
		css = strings.Replace(css, fmt.Sprintf("/*__str%d__*/", i), lit, 1)
	}

	// 7. Trim.
	return strings.TrimSpace(css)
}
