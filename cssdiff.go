package stylegen

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Declarations parses CSS text into selector -> property -> value. Rules
// inside @media blocks are keyed with their media condition as a selector
// prefix, so "flat" and "bucketed" occurrences of the same selector stay
// distinct. Whitespace is normalized, which makes the result independent of
// formatting: minified and pretty-printed forms of the same stylesheet
// produce equal maps.
func Declarations(cssText string) map[string]map[string]string {
	rules := make(map[string]map[string]string)
	lexer := css.NewLexer(parse.NewInputString(cssText))

	var mediaStack []string
	var selector strings.Builder

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			break
		}

		switch tt {
		case css.CommentToken:
			continue

		case css.AtKeywordToken:
			if string(text) == "@media" {
				cond := readMediaCondition(lexer)
				mediaStack = append(mediaStack, "@media "+cond)
				selector.Reset()
				continue
			}
			selector.WriteString(string(text))

		case css.LeftBraceToken:
			key := normalizeSelector(selector.String())
			selector.Reset()
			if key == "" {
				continue
			}
			if len(mediaStack) > 0 {
				key = strings.Join(mediaStack, " ") + " " + key
			}
			props := readDeclarations(lexer)
			if existing, ok := rules[key]; ok {
				for k, v := range props {
					existing[k] = v
				}
			} else {
				rules[key] = props
			}

		case css.RightBraceToken:
			// Closes a media block (rule bodies are consumed by
			// readDeclarations).
			if len(mediaStack) > 0 {
				mediaStack = mediaStack[:len(mediaStack)-1]
			}
			selector.Reset()

		default:
			selector.WriteString(string(text))
		}
	}

	return rules
}

// EquivalentCSS reports whether two stylesheets describe the same rule and
// declaration structure, ignoring formatting. Used to verify that
// minification is behavior-preserving.
func EquivalentCSS(a, b string) bool {
	ra := Declarations(a)
	rb := Declarations(b)
	if len(ra) != len(rb) {
		return false
	}
	for sel, propsA := range ra {
		propsB, ok := rb[sel]
		if !ok || len(propsA) != len(propsB) {
			return false
		}
		for k, v := range propsA {
			if propsB[k] != v {
				return false
			}
		}
	}
	return true
}

// readMediaCondition consumes tokens up to the block-opening brace and
// returns the normalized condition text.
func readMediaCondition(lexer *css.Lexer) string {
	var cond strings.Builder
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken || tt == css.LeftBraceToken {
			break
		}
		cond.WriteString(string(text))
	}
	return normalizeSelector(cond.String())
}

// readDeclarations reads property: value pairs until the closing brace.
func readDeclarations(lexer *css.Lexer) map[string]string {
	props := make(map[string]string)

	var currentProp string
	var currentVal []string

	flush := func() {
		if currentProp != "" && len(currentVal) > 0 {
			props[currentProp] = normalizeSelector(strings.Join(currentVal, ""))
		}
		currentProp = ""
		currentVal = nil
	}

	for {
		tt, text := lexer.Next()

		if tt == css.ErrorToken || tt == css.RightBraceToken {
			flush()
			break
		}

		switch {
		case tt == css.CommentToken:
			continue
		case tt == css.IdentToken && currentProp == "":
			currentProp = string(text)
		case tt == css.ColonToken && currentProp != "" && len(currentVal) == 0:
			continue
		case tt == css.SemicolonToken:
			flush()
		case currentProp != "":
			currentVal = append(currentVal, string(text))
		}
	}

	return props
}

// normalizeSelector collapses whitespace runs and drops spaces around
// punctuation, so ".sel > * + *" and ".sel>*+*" compare equal.
func normalizeSelector(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if cssPunctRe != nil {
		s = cssPunctRe.ReplaceAllString(s, "$1")
	}
	return s
}
