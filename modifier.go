package stylegen

import "strings"

// Breakpoints maps responsive modifier names to their media query condition.
// Mobile-first: each condition is a min-width.
var Breakpoints = map[string]string{
	"xs":  "(min-width: 480px)",
	"sm":  "(min-width: 640px)",
	"md":  "(min-width: 768px)",
	"lg":  "(min-width: 1024px)",
	"xl":  "(min-width: 1280px)",
	"2xl": "(min-width: 1536px)",
}

// statePseudoClasses maps state modifiers to the pseudo-class suffix appended
// to the selector. Modifiers not listed here (and not breakpoints) are still
// chained into the selector text but get no suffix.
var statePseudoClasses = map[string]string{
	"hover":         ":hover",
	"focus":         ":focus",
	"active":        ":active",
	"disabled":      ":disabled",
	"visited":       ":visited",
	"checked":       ":checked",
	"focus-within":  ":focus-within",
	"focus-visible": ":focus-visible",
	"first":         ":first-child",
	"last":          ":last-child",
	"odd":           ":nth-child(odd)",
	"even":          ":nth-child(even)",
}

// ParseModifiers splits a class name into its modifier prefixes and the base
// utility. Modifiers keep their original left-to-right order. A name with no
// colon has no modifiers.
//
// "md:hover:bg-blue-500" -> ["md", "hover"], "bg-blue-500"
func ParseModifiers(className string) ([]string, string) {
	parts := strings.Split(className, ":")
	if len(parts) == 1 {
		return nil, className
	}
	return parts[:len(parts)-1], parts[len(parts)-1]
}

// breakpointCondition returns the media condition for the first breakpoint
// modifier in the chain, if any.
func breakpointCondition(modifiers []string) (string, bool) {
	for _, m := range modifiers {
		if cond, ok := Breakpoints[m]; ok {
			return cond, true
		}
	}
	return "", false
}
