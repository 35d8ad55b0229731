package stylegen

import "strings"

// escapeClassName escapes the characters that make a raw utility class name
// invalid as a literal CSS class selector. Colons from modifier prefixes are
// the common case: "md:hover:bg-blue-500" must become
// "md\:hover\:bg-blue-500" to select the element carrying that class.
func escapeClassName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch r {
		case '#', '[', ']', ':':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// BuildSelector builds the full CSS selector (including the leading dot) for
// a base utility and its modifier chain.
//
// Modifiers are prepended in reverse order so the escaped selector text reads
// in the original declaration order. Recognized state modifiers append their
// pseudo-class; group-* and peer-* modifiers rewrite the selector into an
// ancestor/sibling combinator form; breakpoint modifiers are textual only
// (the assembler routes them into a media query).
func BuildSelector(baseClass string, modifiers []string) string {
	sel := escapeClassName(baseClass)
	prefix := ""

	for i := len(modifiers) - 1; i >= 0; i-- {
		m := modifiers[i]
		sel = escapeClassName(m) + `\:` + sel

		if ps, ok := statePseudoClasses[m]; ok {
			sel += ps
			continue
		}
		if state, ok := strings.CutPrefix(m, "group-"); ok {
			if ps, ok := statePseudoClasses[state]; ok {
				prefix = ".group" + ps + " "
			}
			continue
		}
		if state, ok := strings.CutPrefix(m, "peer-"); ok {
			if ps, ok := statePseudoClasses[state]; ok {
				prefix = ".peer" + ps + " ~ "
			}
		}
	}

	return prefix + "." + sel
}
