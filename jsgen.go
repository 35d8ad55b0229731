package stylegen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// NamedMachine pairs a StateMachine with the identifier it is exposed under
// in a batched script.
type NamedMachine struct {
	ID      string
	Machine *StateMachine
}

// GenerateStateMachine emits a self-contained JavaScript class implementing
// the machine, a createStateMachine factory, and module-export boilerplate
// that self-detects CommonJS, AMD, or a browser global at load time.
//
// Guards and actions are embedded verbatim as arrow-function bodies; nothing
// validates them here. The emitted text is intentionally left unminified so
// the escape-hatch fragments stay debuggable in browser devtools.
func GenerateStateMachine(m *StateMachine) string {
	var b strings.Builder

	b.WriteString("class StateMachine {\n")
	fmt.Fprintf(&b, "  constructor(initialState) {\n")
	fmt.Fprintf(&b, "    this.initialState = initialState || %s;\n", jsString(m.InitialState()))
	b.WriteString("    this.currentState = this.initialState;\n")
	b.WriteString("    this.listeners = [];\n")
	fmt.Fprintf(&b, "    this.states = %s;\n", indentTail(statesLiteral(m), "    "))
	fmt.Fprintf(&b, "    this.transitions = %s;\n", indentTail(transitionsLiteral(m), "    "))
	b.WriteString("  }\n\n")

	b.WriteString(`  getCurrentState() {
    return this.currentState;
  }

  canTransition(event) {
    const outgoing = this.transitions[this.currentState];
    return !!(outgoing && outgoing[event]);
  }

  transition(event, data) {
    const outgoing = this.transitions[this.currentState];
    const edge = outgoing && outgoing[event];
    if (!edge) {
      return false;
    }
    if (edge.guard && !edge.guard(data)) {
      return false;
    }
    const from = this.currentState;
    this.currentState = edge.target;
    if (edge.action) {
      edge.action(data);
    }
    this.notifyListeners({ event: event, from: from, to: this.currentState, data: data });
    return true;
  }

  onTransition(listener) {
    this.listeners.push(listener);
  }

  offTransition(listener) {
    this.listeners = this.listeners.filter((l) => l !== listener);
  }

  notifyListeners(change) {
    for (const listener of this.listeners) {
      try {
        listener(change);
      } catch (err) {
        console.error("state machine listener failed", err);
      }
    }
  }

  reset() {
    this.currentState = this.initialState;
    this.notifyListeners({ event: "reset", from: this.currentState, to: this.currentState, data: undefined });
  }
}

function createStateMachine(initialState) {
  return new StateMachine(initialState);
}

if (typeof module !== "undefined" && module.exports) {
  module.exports = { StateMachine: StateMachine, createStateMachine: createStateMachine };
} else if (typeof define === "function" && define.amd) {
  define([], function () {
    return { StateMachine: StateMachine, createStateMachine: createStateMachine };
  });
} else if (typeof window !== "undefined") {
  window.StateMachine = StateMachine;
  window.createStateMachine = createStateMachine;
}
`)

	return b.String()
}

// GenerateStateMachines batches multiple named machines into one script. Each
// machine is built inside its own IIFE and registered on a shared
// stateMachines lookup object, which is then exported with the same
// environment detection as the single-machine form.
func GenerateStateMachines(machines []NamedMachine) string {
	var b strings.Builder

	b.WriteString("const stateMachines = {};\n\n")

	for _, nm := range machines {
		fmt.Fprintf(&b, "stateMachines[%s] = (function () {\n", jsString(nm.ID))
		machine := GenerateStateMachine(nm.Machine)
		// Strip the single-machine export boilerplate; the batch exports the
		// lookup object instead.
		if idx := strings.Index(machine, "if (typeof module"); idx >= 0 {
			machine = machine[:idx]
		}
		b.WriteString(indentBlock(strings.TrimRight(machine, "\n"), "  "))
		b.WriteString("\n  return createStateMachine();\n")
		b.WriteString("})();\n\n")
	}

	b.WriteString(`if (typeof module !== "undefined" && module.exports) {
  module.exports = { stateMachines: stateMachines };
} else if (typeof define === "function" && define.amd) {
  define([], function () {
    return { stateMachines: stateMachines };
  });
} else if (typeof window !== "undefined") {
  window.stateMachines = stateMachines;
}
`)

	return b.String()
}

// statesLiteral serializes the state table, including static data payloads,
// in declaration order.
func statesLiteral(m *StateMachine) string {
	states := m.States()
	if len(states) == 0 {
		return "{}"
	}

	var b strings.Builder
	b.WriteString("{\n")
	for _, s := range states {
		fmt.Fprintf(&b, "  %s: { data: %s },\n", jsString(s.Name), dataLiteral(s.Data))
	}
	b.WriteString("}")
	return b.String()
}

// transitionsLiteral serializes the (state, event) -> edge table. Events are
// emitted in sorted order so output bytes are stable across builds.
func transitionsLiteral(m *StateMachine) string {
	states := m.States()
	if len(states) == 0 {
		return "{}"
	}

	var b strings.Builder
	b.WriteString("{\n")
	for _, s := range states {
		fmt.Fprintf(&b, "  %s: {\n", jsString(s.Name))
		for _, event := range m.eventNames(s.Name) {
			edge, _ := m.Transition(s.Name, event)
			fmt.Fprintf(&b, "    %s: { target: %s", jsString(event), jsString(edge.Target))
			if edge.Guard != "" {
				fmt.Fprintf(&b, ", guard: (data) => %s", edge.Guard)
			}
			if edge.Action != "" {
				fmt.Fprintf(&b, ", action: (data) => { %s }", edge.Action)
			}
			b.WriteString(" },\n")
		}
		b.WriteString("  },\n")
	}
	b.WriteString("}")
	return b.String()
}

// dataLiteral serializes a state's data payload as a JS object literal with
// sorted keys. Values are raw fragments.
func dataLiteral(data map[string]RawExpression) string {
	if len(data) == 0 {
		return "{}"
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", jsString(k), data[k]))
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// jsString quotes a Go string as a JS double-quoted string literal. Go's
// quoting rules are a compatible subset of JS's for the identifiers and
// state names that reach this point.
func jsString(s string) string {
	return strconv.Quote(s)
}

// indentTail indents every line after the first, for embedding a multi-line
// literal at the end of an assignment.
func indentTail(s, indent string) string {
	lines := strings.Split(s, "\n")
	for i := 1; i < len(lines); i++ {
		if lines[i] != "" {
			lines[i] = indent + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

// indentBlock indents every non-empty line.
func indentBlock(s, indent string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}
