package stylegen

import (
	"sort"
	"strings"
)

// resetCSS is the fixed reset block prepended to every generated stylesheet.
const resetCSS = `*, *::before, *::after {
  box-sizing: border-box;
  margin: 0;
  padding: 0;
}
html {
  -webkit-text-size-adjust: 100%;
  tab-size: 4;
}
body {
  line-height: 1.5;
  font-family: ui-sans-serif, system-ui, sans-serif;
}
img, picture, video, canvas, svg {
  display: block;
  max-width: 100%;
}
input, button, textarea, select {
  font: inherit;
}
a {
  color: inherit;
  text-decoration: inherit;
}
`

// GenerateCSS compiles a list of utility class names into a stylesheet: the
// fixed reset, then flat rules, then media query blocks.
//
// The input is sorted before generation, so output is a deterministic
// function of the class name set regardless of collection order. Unrecognized
// utilities emit no rule.
func GenerateCSS(classNames []string) string {
	sorted := make([]string, len(classNames))
	copy(sorted, classNames)
	sort.Strings(sorted)

	var flat []string
	media := make(map[string][]string)

	for _, name := range sorted {
		modifiers, base := ParseModifiers(name)

		decls, ok := GenerateProperties(base)
		if !ok {
			continue
		}

		selector := BuildSelector(base, modifiers)

		// space-* gutters style every child after the first, not the
		// element itself.
		var rule string
		if strings.HasPrefix(base, "space-") {
			rule = selector + " > * + * { " + decls + " }"
		} else {
			rule = selector + " { " + decls + " }"
		}

		if cond, ok := breakpointCondition(modifiers); ok {
			media[cond] = append(media[cond], rule)
		} else {
			flat = append(flat, rule)
		}
	}

	var b strings.Builder
	b.WriteString(resetCSS)

	if len(flat) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(flat, "\n"))
		b.WriteString("\n")
	}

	// Media blocks in sorted condition order, never map iteration order.
	conditions := make([]string, 0, len(media))
	for cond := range media {
		conditions = append(conditions, cond)
	}
	sort.Strings(conditions)

	for _, cond := range conditions {
		b.WriteString("\n@media " + cond + " {\n")
		for _, rule := range media[cond] {
			b.WriteString("  " + rule + "\n")
		}
		b.WriteString("}\n")
	}

	return b.String()
}
