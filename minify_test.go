package stylegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "whitespace and punctuation",
			input: ".p-4 { padding: 1rem; }",
			want:  ".p-4{padding:1rem}",
		},
		{
			name:  "comments stripped",
			input: "/* header */\n.flex { display: flex; } /* trailing */",
			want:  ".flex{display:flex}",
		},
		{
			name:  "multiline comment",
			input: "/* a\nb\nc */.m-0{margin:0}",
			want:  ".m-0{margin:0}",
		},
		{
			name:  "media query",
			input: "@media (min-width: 768px) {\n  .md\\:p-8 { padding: 2rem; }\n}",
			want:  "@media(min-width:768px){.md\\:p-8{padding:2rem}}",
		},
		{
			name:  "multiple declarations",
			input: ".a { color: red; background: blue; }",
			want:  ".a{color:red;background:blue}",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Minify(tt.input))
		})
	}
}

func TestMinifyIdempotent(t *testing.T) {
	inputs := []string{
		".p-4 { padding: 1rem; }",
		GenerateCSS([]string{"p-4", "md:p-8", "bg-blue-500", "hover:bg-blue-600"}),
		`.q::before { content: "a : b ; c"; }`,
	}

	for _, input := range inputs {
		once := Minify(input)
		twice := Minify(once)
		assert.Equal(t, once, twice)
	}
}

// String literals must survive the punctuation stripping untouched.
func TestMinifyStringLiteralSafety(t *testing.T) {
	input := `.q::before { content: "a : b ; c"; color: red; }`
	got := Minify(input)

	assert.Contains(t, got, `"a : b ; c"`)
	assert.Contains(t, got, "color:red")
	assert.NotContains(t, got, "; }")
}

func TestMinifySingleQuotedLiteral(t *testing.T) {
	input := `.q::after { content: 'x , y'; }`
	got := Minify(input)
	assert.Contains(t, got, `'x , y'`)
}

func TestMinifyBehaviorPreserving(t *testing.T) {
	css := GenerateCSS([]string{
		"p-4", "md:p-8", "bg-blue-500", "hover:bg-blue-600",
		"space-y-4", "w-1/3", "lg:flex", "text-sm",
	})
	minified := Minify(css)

	require.NotEqual(t, css, minified)
	assert.True(t, EquivalentCSS(css, minified),
		"minified output must parse to the same rule structure")
}

func TestDeclarations(t *testing.T) {
	css := `.p-4 { padding: 1rem; }
@media (min-width: 768px) {
  .md\:p-8 { padding: 2rem; }
}`

	rules := Declarations(css)

	require.Contains(t, rules, ".p-4")
	assert.Equal(t, "1rem", rules[".p-4"]["padding"])

	found := false
	for sel := range rules {
		if sel != ".p-4" {
			assert.Contains(t, sel, "@media")
			assert.Contains(t, sel, `.md\:p-8`)
			found = true
		}
	}
	assert.True(t, found, "media rule present under a media-prefixed key")
}

func TestEquivalentCSS(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{
			name: "formatting only",
			a:    ".a { color: red; }",
			b:    ".a{color:red}",
			want: true,
		},
		{
			name: "combinator spacing",
			a:    ".a > * + * { margin-top: 1rem; }",
			b:    ".a>*+*{margin-top:1rem}",
			want: true,
		},
		{
			name: "different value",
			a:    ".a { color: red; }",
			b:    ".a { color: blue; }",
			want: false,
		},
		{
			name: "missing rule",
			a:    ".a { color: red; } .b { color: blue; }",
			b:    ".a { color: red; }",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EquivalentCSS(tt.a, tt.b))
		})
	}
}
