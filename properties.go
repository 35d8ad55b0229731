package stylegen

import (
	"fmt"
	"strconv"
	"strings"
)

// staticUtilities maps exact utility names to their declarations. Anything
// with a parameterized suffix (spacing, colors, fractions) goes through
// prefixRules instead.
var staticUtilities = map[string]string{
	// Display
	"block":        "display: block;",
	"inline-block": "display: inline-block;",
	"inline":       "display: inline;",
	"flex":         "display: flex;",
	"inline-flex":  "display: inline-flex;",
	"grid":         "display: grid;",
	"inline-grid":  "display: inline-grid;",
	"table":        "display: table;",
	"contents":     "display: contents;",
	"hidden":       "display: none;",

	// Position
	"static":   "position: static;",
	"fixed":    "position: fixed;",
	"absolute": "position: absolute;",
	"relative": "position: relative;",
	"sticky":   "position: sticky;",

	// Flexbox
	"flex-row":          "flex-direction: row;",
	"flex-row-reverse":  "flex-direction: row-reverse;",
	"flex-col":          "flex-direction: column;",
	"flex-col-reverse":  "flex-direction: column-reverse;",
	"flex-wrap":         "flex-wrap: wrap;",
	"flex-wrap-reverse": "flex-wrap: wrap-reverse;",
	"flex-nowrap":       "flex-wrap: nowrap;",
	"flex-1":            "flex: 1 1 0%;",
	"flex-auto":         "flex: 1 1 auto;",
	"flex-initial":      "flex: 0 1 auto;",
	"flex-none":         "flex: none;",
	"grow":              "flex-grow: 1;",
	"grow-0":            "flex-grow: 0;",
	"shrink":            "flex-shrink: 1;",
	"shrink-0":          "flex-shrink: 0;",

	"justify-start":   "justify-content: flex-start;",
	"justify-end":     "justify-content: flex-end;",
	"justify-center":  "justify-content: center;",
	"justify-between": "justify-content: space-between;",
	"justify-around":  "justify-content: space-around;",
	"justify-evenly":  "justify-content: space-evenly;",

	"items-start":    "align-items: flex-start;",
	"items-end":      "align-items: flex-end;",
	"items-center":   "align-items: center;",
	"items-baseline": "align-items: baseline;",
	"items-stretch":  "align-items: stretch;",

	"content-start":   "align-content: flex-start;",
	"content-end":     "align-content: flex-end;",
	"content-center":  "align-content: center;",
	"content-between": "align-content: space-between;",
	"content-around":  "align-content: space-around;",

	"self-auto":    "align-self: auto;",
	"self-start":   "align-self: flex-start;",
	"self-end":     "align-self: flex-end;",
	"self-center":  "align-self: center;",
	"self-stretch": "align-self: stretch;",

	// Typography
	"text-left":    "text-align: left;",
	"text-center":  "text-align: center;",
	"text-right":   "text-align: right;",
	"text-justify": "text-align: justify;",

	"text-xs":   "font-size: 0.75rem; line-height: 1rem;",
	"text-sm":   "font-size: 0.875rem; line-height: 1.25rem;",
	"text-base": "font-size: 1rem; line-height: 1.5rem;",
	"text-lg":   "font-size: 1.125rem; line-height: 1.75rem;",
	"text-xl":   "font-size: 1.25rem; line-height: 1.75rem;",
	"text-2xl":  "font-size: 1.5rem; line-height: 2rem;",
	"text-3xl":  "font-size: 1.875rem; line-height: 2.25rem;",
	"text-4xl":  "font-size: 2.25rem; line-height: 2.5rem;",
	"text-5xl":  "font-size: 3rem; line-height: 1;",
	"text-6xl":  "font-size: 3.75rem; line-height: 1;",

	"font-thin":       "font-weight: 100;",
	"font-extralight": "font-weight: 200;",
	"font-light":      "font-weight: 300;",
	"font-normal":     "font-weight: 400;",
	"font-medium":     "font-weight: 500;",
	"font-semibold":   "font-weight: 600;",
	"font-bold":       "font-weight: 700;",
	"font-extrabold":  "font-weight: 800;",
	"font-black":      "font-weight: 900;",

	"font-sans":  "font-family: ui-sans-serif, system-ui, sans-serif;",
	"font-serif": "font-family: ui-serif, Georgia, Cambria, serif;",
	"font-mono":  "font-family: ui-monospace, SFMono-Regular, Menlo, monospace;",

	"italic":       "font-style: italic;",
	"not-italic":   "font-style: normal;",
	"underline":    "text-decoration-line: underline;",
	"line-through": "text-decoration-line: line-through;",
	"no-underline": "text-decoration-line: none;",
	"uppercase":    "text-transform: uppercase;",
	"lowercase":    "text-transform: lowercase;",
	"capitalize":   "text-transform: capitalize;",
	"normal-case":  "text-transform: none;",

	"leading-none":    "line-height: 1;",
	"leading-tight":   "line-height: 1.25;",
	"leading-snug":    "line-height: 1.375;",
	"leading-normal":  "line-height: 1.5;",
	"leading-relaxed": "line-height: 1.625;",
	"leading-loose":   "line-height: 2;",

	"tracking-tighter": "letter-spacing: -0.05em;",
	"tracking-tight":   "letter-spacing: -0.025em;",
	"tracking-normal":  "letter-spacing: 0em;",
	"tracking-wide":    "letter-spacing: 0.025em;",
	"tracking-wider":   "letter-spacing: 0.05em;",
	"tracking-widest":  "letter-spacing: 0.1em;",

	"whitespace-normal":   "white-space: normal;",
	"whitespace-nowrap":   "white-space: nowrap;",
	"whitespace-pre":      "white-space: pre;",
	"whitespace-pre-line": "white-space: pre-line;",
	"whitespace-pre-wrap": "white-space: pre-wrap;",
	"break-words":         "overflow-wrap: break-word;",
	"break-all":           "word-break: break-all;",
	"truncate":            "overflow: hidden; text-overflow: ellipsis; white-space: nowrap;",
	"antialiased":         "-webkit-font-smoothing: antialiased; -moz-osx-font-smoothing: grayscale;",

	"list-none":    "list-style-type: none;",
	"list-disc":    "list-style-type: disc;",
	"list-decimal": "list-style-type: decimal;",
	"list-inside":  "list-style-position: inside;",
	"list-outside": "list-style-position: outside;",

	// Borders
	"border":   "border-width: 1px;",
	"border-0": "border-width: 0px;",
	"border-2": "border-width: 2px;",
	"border-4": "border-width: 4px;",
	"border-8": "border-width: 8px;",

	"border-solid":  "border-style: solid;",
	"border-dashed": "border-style: dashed;",
	"border-dotted": "border-style: dotted;",
	"border-double": "border-style: double;",
	"border-none":   "border-style: none;",

	"rounded-none": "border-radius: 0px;",
	"rounded-sm":   "border-radius: 0.125rem;",
	"rounded":      "border-radius: 0.25rem;",
	"rounded-md":   "border-radius: 0.375rem;",
	"rounded-lg":   "border-radius: 0.5rem;",
	"rounded-xl":   "border-radius: 0.75rem;",
	"rounded-2xl":  "border-radius: 1rem;",
	"rounded-3xl":  "border-radius: 1.5rem;",
	"rounded-full": "border-radius: 9999px;",

	// Effects
	"shadow-sm":    "box-shadow: 0 1px 2px 0 rgb(0 0 0 / 0.05);",
	"shadow":       "box-shadow: 0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1);",
	"shadow-md":    "box-shadow: 0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1);",
	"shadow-lg":    "box-shadow: 0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1);",
	"shadow-xl":    "box-shadow: 0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1);",
	"shadow-2xl":   "box-shadow: 0 25px 50px -12px rgb(0 0 0 / 0.25);",
	"shadow-inner": "box-shadow: inset 0 2px 4px 0 rgb(0 0 0 / 0.05);",
	"shadow-none":  "box-shadow: 0 0 #0000;",

	"blur-none": "filter: blur(0);",
	"blur-sm":   "filter: blur(4px);",
	"blur":      "filter: blur(8px);",
	"blur-md":   "filter: blur(12px);",
	"blur-lg":   "filter: blur(16px);",
	"blur-xl":   "filter: blur(24px);",
	"blur-2xl":  "filter: blur(40px);",
	"blur-3xl":  "filter: blur(64px);",
	"grayscale": "filter: grayscale(100%);",

	// Overflow
	"overflow-auto":     "overflow: auto;",
	"overflow-hidden":   "overflow: hidden;",
	"overflow-visible":  "overflow: visible;",
	"overflow-scroll":   "overflow: scroll;",
	"overflow-x-auto":   "overflow-x: auto;",
	"overflow-x-hidden": "overflow-x: hidden;",
	"overflow-x-scroll": "overflow-x: scroll;",
	"overflow-y-auto":   "overflow-y: auto;",
	"overflow-y-hidden": "overflow-y: hidden;",
	"overflow-y-scroll": "overflow-y: scroll;",

	// Sizing keywords
	"w-full":   "width: 100%;",
	"w-screen": "width: 100vw;",
	"w-auto":   "width: auto;",
	"w-min":    "width: min-content;",
	"w-max":    "width: max-content;",
	"w-fit":    "width: fit-content;",
	"h-full":   "height: 100%;",
	"h-screen": "height: 100vh;",
	"h-auto":   "height: auto;",

	"min-w-0":      "min-width: 0px;",
	"min-w-full":   "min-width: 100%;",
	"min-h-0":      "min-height: 0px;",
	"min-h-full":   "min-height: 100%;",
	"min-h-screen": "min-height: 100vh;",
	"max-h-full":   "max-height: 100%;",
	"max-h-screen": "max-height: 100vh;",

	"max-w-none":  "max-width: none;",
	"max-w-xs":    "max-width: 20rem;",
	"max-w-sm":    "max-width: 24rem;",
	"max-w-md":    "max-width: 28rem;",
	"max-w-lg":    "max-width: 32rem;",
	"max-w-xl":    "max-width: 36rem;",
	"max-w-2xl":   "max-width: 42rem;",
	"max-w-3xl":   "max-width: 48rem;",
	"max-w-4xl":   "max-width: 56rem;",
	"max-w-5xl":   "max-width: 64rem;",
	"max-w-6xl":   "max-width: 72rem;",
	"max-w-7xl":   "max-width: 80rem;",
	"max-w-full":  "max-width: 100%;",
	"max-w-prose": "max-width: 65ch;",

	// Margin keywords
	"m-auto":  "margin: auto;",
	"mx-auto": "margin-left: auto; margin-right: auto;",
	"my-auto": "margin-top: auto; margin-bottom: auto;",
	"ml-auto": "margin-left: auto;",
	"mr-auto": "margin-right: auto;",

	// Interactivity
	"cursor-pointer":     "cursor: pointer;",
	"cursor-default":     "cursor: default;",
	"cursor-wait":        "cursor: wait;",
	"cursor-text":        "cursor: text;",
	"cursor-move":        "cursor: move;",
	"cursor-not-allowed": "cursor: not-allowed;",

	"select-none": "user-select: none;",
	"select-text": "user-select: text;",
	"select-all":  "user-select: all;",
	"select-auto": "user-select: auto;",

	"pointer-events-none": "pointer-events: none;",
	"pointer-events-auto": "pointer-events: auto;",

	"appearance-none": "appearance: none;",
	"outline-none":    "outline: 2px solid transparent; outline-offset: 2px;",

	// Object fit/position
	"object-contain":    "object-fit: contain;",
	"object-cover":      "object-fit: cover;",
	"object-fill":       "object-fit: fill;",
	"object-none":       "object-fit: none;",
	"object-scale-down": "object-fit: scale-down;",
	"object-center":     "object-position: center;",
	"object-top":        "object-position: top;",
	"object-bottom":     "object-position: bottom;",
	"object-left":       "object-position: left;",
	"object-right":      "object-position: right;",

	// Transitions and animation
	"transition-none": "transition-property: none;",
	"transition-all":  "transition-property: all; transition-timing-function: cubic-bezier(0.4, 0, 0.2, 1); transition-duration: 150ms;",
	"transition": "transition-property: color, background-color, border-color, text-decoration-color, fill, stroke, opacity, box-shadow, transform, filter, backdrop-filter; " +
		"transition-timing-function: cubic-bezier(0.4, 0, 0.2, 1); transition-duration: 150ms;",
	"transition-colors":    "transition-property: color, background-color, border-color, text-decoration-color, fill, stroke; transition-timing-function: cubic-bezier(0.4, 0, 0.2, 1); transition-duration: 150ms;",
	"transition-opacity":   "transition-property: opacity; transition-timing-function: cubic-bezier(0.4, 0, 0.2, 1); transition-duration: 150ms;",
	"transition-shadow":    "transition-property: box-shadow; transition-timing-function: cubic-bezier(0.4, 0, 0.2, 1); transition-duration: 150ms;",
	"transition-transform": "transition-property: transform; transition-timing-function: cubic-bezier(0.4, 0, 0.2, 1); transition-duration: 150ms;",

	"ease-linear": "transition-timing-function: linear;",
	"ease-in":     "transition-timing-function: cubic-bezier(0.4, 0, 1, 1);",
	"ease-out":    "transition-timing-function: cubic-bezier(0, 0, 0.2, 1);",
	"ease-in-out": "transition-timing-function: cubic-bezier(0.4, 0, 0.2, 1);",

	"animate-none":   "animation: none;",
	"animate-spin":   "animation: spin 1s linear infinite;",
	"animate-ping":   "animation: ping 1s cubic-bezier(0, 0, 0.2, 1) infinite;",
	"animate-pulse":  "animation: pulse 2s cubic-bezier(0.4, 0, 0.6, 1) infinite;",
	"animate-bounce": "animation: bounce 1s infinite;",

	// Accessibility
	"sr-only": "position: absolute; width: 1px; height: 1px; padding: 0; margin: -1px; overflow: hidden; clip: rect(0, 0, 0, 0); white-space: nowrap; border-width: 0;",
}

// prefixRule dispatches a utility prefix to its parameter parser. The slice
// order is the documented precedence: more specific prefixes must come before
// the generic ones they share a head with (border-t- before border-), so the
// ordering is part of the contract and asserted by tests.
type prefixRule struct {
	prefix string
	emit   func(rest string) (string, bool)
}

var prefixRules = []prefixRule{
	// Colors before anything else that shares the prefix is resolved by the
	// static table lookup in GenerateProperties, so bg-/text- only ever see
	// parameterized suffixes here.
	{"bg-", func(rest string) (string, bool) {
		if c, ok := paletteColor(rest); ok {
			return "background-color: " + c + ";", true
		}
		return "", false
	}},
	{"text-", func(rest string) (string, bool) {
		if c, ok := paletteColor(rest); ok {
			return "color: " + c + ";", true
		}
		return "", false
	}},
	{"fill-", func(rest string) (string, bool) {
		if c, ok := paletteColor(rest); ok {
			return "fill: " + c + ";", true
		}
		return "", false
	}},
	{"stroke-", func(rest string) (string, bool) {
		if c, ok := paletteColor(rest); ok {
			return "stroke: " + c + ";", true
		}
		return "", false
	}},

	// Border sides: width (integer) or color. Must precede the generic
	// "border-" rule.
	{"border-t-", borderSide("top")},
	{"border-r-", borderSide("right")},
	{"border-b-", borderSide("bottom")},
	{"border-l-", borderSide("left")},
	{"border-x-", borderAxis("left", "right")},
	{"border-y-", borderAxis("top", "bottom")},
	{"border-", func(rest string) (string, bool) {
		if n, ok := parseNonNegativeInt(rest); ok {
			return fmt.Sprintf("border-width: %dpx;", n), true
		}
		if c, ok := paletteColor(rest); ok {
			return "border-color: " + c + ";", true
		}
		return "", false
	}},

	// Padding: axis/side forms before the bare "p-".
	{"px-", spacingDecl("padding-left", "padding-right")},
	{"py-", spacingDecl("padding-top", "padding-bottom")},
	{"pt-", spacingDecl("padding-top")},
	{"pr-", spacingDecl("padding-right")},
	{"pb-", spacingDecl("padding-bottom")},
	{"pl-", spacingDecl("padding-left")},
	{"p-", spacingDecl("padding")},

	// Margin
	{"mx-", spacingDecl("margin-left", "margin-right")},
	{"my-", spacingDecl("margin-top", "margin-bottom")},
	{"mt-", spacingDecl("margin-top")},
	{"mr-", spacingDecl("margin-right")},
	{"mb-", spacingDecl("margin-bottom")},
	{"ml-", spacingDecl("margin-left")},
	{"m-", spacingDecl("margin")},

	// Space-between gutters: the assembler emits these with the
	// "> * + *" descendant form.
	{"space-x-", spacingDecl("margin-left")},
	{"space-y-", spacingDecl("margin-top")},

	// Gap: axis forms before "gap-".
	{"gap-x-", spacingDecl("column-gap")},
	{"gap-y-", spacingDecl("row-gap")},
	{"gap-", spacingDecl("gap")},

	// Sizing: fractions, then the spacing scale.
	{"w-", sizeDecl("width")},
	{"h-", sizeDecl("height")},
	{"min-w-", spacingDecl("min-width")},
	{"min-h-", spacingDecl("min-height")},
	{"max-w-", spacingDecl("max-width")},
	{"max-h-", spacingDecl("max-height")},
	{"basis-", spacingDecl("flex-basis")},

	// Placement
	{"inset-", spacingDecl("top", "right", "bottom", "left")},
	{"top-", spacingDecl("top")},
	{"right-", spacingDecl("right")},
	{"bottom-", spacingDecl("bottom")},
	{"left-", spacingDecl("left")},

	{"z-", func(rest string) (string, bool) {
		if n, ok := parseNonNegativeInt(rest); ok {
			return fmt.Sprintf("z-index: %d;", n), true
		}
		if rest == "auto" {
			return "z-index: auto;", true
		}
		return "", false
	}},
	{"order-", func(rest string) (string, bool) {
		if n, ok := parseNonNegativeInt(rest); ok {
			return fmt.Sprintf("order: %d;", n), true
		}
		return "", false
	}},

	// Grid
	{"grid-cols-", func(rest string) (string, bool) {
		if n, ok := parseNonNegativeInt(rest); ok {
			return fmt.Sprintf("grid-template-columns: repeat(%d, minmax(0, 1fr));", n), true
		}
		if rest == "none" {
			return "grid-template-columns: none;", true
		}
		return "", false
	}},
	{"grid-rows-", func(rest string) (string, bool) {
		if n, ok := parseNonNegativeInt(rest); ok {
			return fmt.Sprintf("grid-template-rows: repeat(%d, minmax(0, 1fr));", n), true
		}
		return "", false
	}},
	{"col-span-", func(rest string) (string, bool) {
		if n, ok := parseNonNegativeInt(rest); ok {
			return fmt.Sprintf("grid-column: span %d / span %d;", n, n), true
		}
		return "", false
	}},
	{"row-span-", func(rest string) (string, bool) {
		if n, ok := parseNonNegativeInt(rest); ok {
			return fmt.Sprintf("grid-row: span %d / span %d;", n, n), true
		}
		return "", false
	}},

	// Effects and transforms
	{"opacity-", func(rest string) (string, bool) {
		if n, ok := parseNonNegativeInt(rest); ok {
			return "opacity: " + formatNumber(float64(n)/100) + ";", true
		}
		return "", false
	}},
	{"rotate-", func(rest string) (string, bool) {
		if n, ok := parseNonNegativeInt(rest); ok {
			return fmt.Sprintf("transform: rotate(%ddeg);", n), true
		}
		return "", false
	}},
	{"scale-", func(rest string) (string, bool) {
		if n, ok := parseNonNegativeInt(rest); ok {
			return "transform: scale(" + formatNumber(float64(n)/100) + ");", true
		}
		return "", false
	}},
	{"translate-x-", func(rest string) (string, bool) {
		if v, ok := spacingValue(rest); ok {
			return "transform: translateX(" + v + ");", true
		}
		return "", false
	}},
	{"translate-y-", func(rest string) (string, bool) {
		if v, ok := spacingValue(rest); ok {
			return "transform: translateY(" + v + ");", true
		}
		return "", false
	}},
	{"brightness-", func(rest string) (string, bool) {
		if n, ok := parseNonNegativeInt(rest); ok {
			return "filter: brightness(" + formatNumber(float64(n)/100) + ");", true
		}
		return "", false
	}},

	// Timing
	{"duration-", func(rest string) (string, bool) {
		if n, ok := parseNonNegativeInt(rest); ok {
			return fmt.Sprintf("transition-duration: %dms;", n), true
		}
		return "", false
	}},
	{"delay-", func(rest string) (string, bool) {
		if n, ok := parseNonNegativeInt(rest); ok {
			return fmt.Sprintf("transition-delay: %dms;", n), true
		}
		return "", false
	}},

	// Numeric line-height (leading-4 etc.; keyword forms are static).
	{"leading-", spacingDecl("line-height")},
}

// GenerateProperties turns a base utility into its CSS declarations. The
// second return is false when the utility is not recognized; the caller emits
// no rule in that case (unknown utilities are never an error).
func GenerateProperties(baseClass string) (string, bool) {
	if decls, ok := staticUtilities[baseClass]; ok {
		return decls, true
	}

	// Arbitrary bracketed values bypass the fixed vocabulary.
	if strings.Contains(baseClass, "[") && strings.HasSuffix(baseClass, "]") {
		return arbitraryProperties(baseClass)
	}

	for _, rule := range prefixRules {
		if !strings.HasPrefix(baseClass, rule.prefix) {
			continue
		}
		if decls, ok := rule.emit(strings.TrimPrefix(baseClass, rule.prefix)); ok {
			return decls, true
		}
		// A matching prefix with an unparseable suffix falls through to the
		// remaining rules ("border-x-..." vs "border-..." style overlaps).
	}

	return "", false
}

// arbitraryProperties handles the prefix-[value] escape hatch. The bracketed
// value is emitted verbatim for a known set of properties; underscores stand
// in for spaces so multi-word values survive as one class token.
func arbitraryProperties(baseClass string) (string, bool) {
	open := strings.Index(baseClass, "[")
	if open < 1 || !strings.HasSuffix(baseClass, "]") {
		return "", false
	}

	property := strings.TrimSuffix(baseClass[:open], "-")
	value := strings.ReplaceAll(baseClass[open+1:len(baseClass)-1], "_", " ")
	if value == "" {
		return "", false
	}

	switch property {
	case "bg":
		return "background-color: " + value + ";", true
	case "text":
		return "color: " + value + ";", true
	case "border":
		return "border-color: " + value + ";", true
	case "font":
		return "font-family: " + value + ";", true
	case "max-w":
		return "max-width: " + value + ";", true
	case "w":
		return "width: " + value + ";", true
	case "h":
		return "height: " + value + ";", true
	case "p":
		return "padding: " + value + ";", true
	case "px":
		return "padding-left: " + value + "; padding-right: " + value + ";", true
	case "py":
		return "padding-top: " + value + "; padding-bottom: " + value + ";", true
	case "pt":
		return "padding-top: " + value + ";", true
	case "pr":
		return "padding-right: " + value + ";", true
	case "pb":
		return "padding-bottom: " + value + ";", true
	case "pl":
		return "padding-left: " + value + ";", true
	case "m":
		return "margin: " + value + ";", true
	case "mx":
		return "margin-left: " + value + "; margin-right: " + value + ";", true
	case "my":
		return "margin-top: " + value + "; margin-bottom: " + value + ";", true
	case "mt":
		return "margin-top: " + value + ";", true
	case "mr":
		return "margin-right: " + value + ";", true
	case "mb":
		return "margin-bottom: " + value + ";", true
	case "ml":
		return "margin-left: " + value + ";", true
	case "top", "right", "bottom", "left":
		return property + ": " + value + ";", true
	case "gap":
		return "gap: " + value + ";", true
	}

	return "", false
}

// spacingScale converts a spacing step to its CSS length: 0 -> "0",
// n -> "{n*0.25}rem" (4 -> "1rem", 1 -> "0.25rem").
func spacingScale(n int) string {
	if n == 0 {
		return "0"
	}
	return formatNumber(float64(n)*0.25) + "rem"
}

// spacingValue resolves a spacing suffix: an integer on the scale, or the
// literal "px" for a hairline.
func spacingValue(rest string) (string, bool) {
	if rest == "px" {
		return "1px", true
	}
	if n, ok := parseNonNegativeInt(rest); ok {
		return spacingScale(n), true
	}
	return "", false
}

// spacingDecl builds an emit func applying the spacing scale to one or more
// properties.
func spacingDecl(properties ...string) func(string) (string, bool) {
	return func(rest string) (string, bool) {
		v, ok := spacingValue(rest)
		if !ok {
			return "", false
		}
		parts := make([]string, len(properties))
		for i, p := range properties {
			parts[i] = p + ": " + v + ";"
		}
		return strings.Join(parts, " "), true
	}
}

// sizeDecl handles width/height suffixes: fractions ("1/3" -> 33.333333%)
// then the spacing scale.
func sizeDecl(property string) func(string) (string, bool) {
	return func(rest string) (string, bool) {
		if pct, ok := parseFraction(rest); ok {
			return property + ": " + pct + ";", true
		}
		if v, ok := spacingValue(rest); ok {
			return property + ": " + v + ";", true
		}
		return "", false
	}
}

// borderSide builds an emit func for one border side: integer suffixes are
// widths in px, color names are side colors.
func borderSide(side string) func(string) (string, bool) {
	return func(rest string) (string, bool) {
		if n, ok := parseNonNegativeInt(rest); ok {
			return fmt.Sprintf("border-%s-width: %dpx;", side, n), true
		}
		if c, ok := paletteColor(rest); ok {
			return "border-" + side + "-color: " + c + ";", true
		}
		return "", false
	}
}

// borderAxis is borderSide across two sides (border-x-, border-y-).
func borderAxis(a, b string) func(string) (string, bool) {
	return func(rest string) (string, bool) {
		if n, ok := parseNonNegativeInt(rest); ok {
			return fmt.Sprintf("border-%s-width: %dpx; border-%s-width: %dpx;", a, n, b, n), true
		}
		if c, ok := paletteColor(rest); ok {
			return "border-" + a + "-color: " + c + "; border-" + b + "-color: " + c + ";", true
		}
		return "", false
	}
}

// parseFraction converts "a/b" to a percentage with six decimal places:
// "1/3" -> "33.333333%", "1/2" -> "50.000000%".
func parseFraction(rest string) (string, bool) {
	num, den, ok := strings.Cut(rest, "/")
	if !ok {
		return "", false
	}
	a, okA := parseNonNegativeInt(num)
	b, okB := parseNonNegativeInt(den)
	if !okA || !okB || b == 0 {
		return "", false
	}
	return fmt.Sprintf("%.6f%%", float64(a)/float64(b)*100), true
}

func parseNonNegativeInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// formatNumber renders a float without trailing zeros (1.0 -> "1",
// 0.25 -> "0.25").
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
