// Package stylegen compiles utility class names into CSS and generates the
// client-side JavaScript runtime for declarative state machines.
//
// stylegen recognizes a closed vocabulary of utility class names (for
// example "bg-blue-500", "p-4", "hover:md:bg-blue-600") and turns the set of
// names observed during a render pass into a minified stylesheet, including
// responsive and pseudo-state variants.
//
// # Compiling CSS
//
// The pure entry point is GenerateCSS:
//
//	css := stylegen.GenerateCSS([]string{"bg-blue-500", "p-4", "md:p-8"})
//
// During rendering, class usage is tracked through a Collector:
//
//	c := stylegen.NewCollector()
//	c.AddClasses([]string{"bg-blue-500", "hover:bg-blue-600"})
//	css := c.GenerateCSS()
//
// A Writer persists minified CSS and generated JS to disk, and a SiteBuilder
// renders multiple pages and splits their class usage into a shared global
// bundle plus per-page files.
//
// # State machines
//
// Declarative state machine definitions compile to a self-contained
// JavaScript class:
//
//	m, err := stylegen.NewStateMachine("idle",
//		stylegen.StateDefinition{Name: "idle", Events: []stylegen.EventDefinition{
//			{Name: "start", Target: "running"},
//		}},
//		stylegen.StateDefinition{Name: "running"},
//	)
//	js := stylegen.GenerateStateMachine(m)
//
// # CLI Tool
//
// stylegen also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/stylegen/cmd/stylegen@latest
package stylegen
