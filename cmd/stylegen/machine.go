package main

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	stylegen "github.com/yacobolo/stylegen"
)

var machineCmd = &cobra.Command{
	Use:   "machine DEFINITIONS.yaml",
	Short: "Compile state-machine definitions to JavaScript",
	Long: `Compile declarative state-machine definitions from a YAML file into a
self-contained JavaScript module. One machine emits a StateMachine class
and createStateMachine factory; several machines emit a combined
stateMachines lookup object. Guard and action values are embedded as
verbatim JavaScript and are never validated here.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runMachine,
}

func init() {
	f := machineCmd.Flags()
	f.String("mode", "static", "Output mode: static|server")
	f.String("static-dir", "dist", "Static-site output root")
	f.String("server-dir", "static", "Server-rendered output root")
	f.Bool("stdout", false, "Print the JavaScript instead of writing js/global.js")
}

// machineFile is the YAML shape the machine command reads.
type machineFile struct {
	Machines []machineDef `koanf:"machines"`
}

type machineDef struct {
	ID      string     `koanf:"id"`
	Initial string     `koanf:"initial"`
	States  []stateDef `koanf:"states"`
}

type stateDef struct {
	Name   string            `koanf:"name"`
	Data   map[string]string `koanf:"data"`
	Events []eventDef        `koanf:"events"`
}

type eventDef struct {
	Name   string `koanf:"name"`
	Target string `koanf:"target"`
	Guard  string `koanf:"guard"`
	Action string `koanf:"action"`
}

func runMachine(cmd *cobra.Command, args []string) error {
	defs, err := loadMachineFile(args[0])
	if err != nil {
		return err
	}
	if len(defs.Machines) == 0 {
		return fmt.Errorf("%s defines no machines", args[0])
	}

	machines := make([]stylegen.NamedMachine, 0, len(defs.Machines))
	for _, def := range defs.Machines {
		machine, err := buildMachine(def)
		if err != nil {
			return fmt.Errorf("machine %q: %w", def.ID, err)
		}
		machines = append(machines, stylegen.NamedMachine{ID: def.ID, Machine: machine})
	}

	var js string
	if len(machines) == 1 {
		js = stylegen.GenerateStateMachine(machines[0].Machine)
	} else {
		js = stylegen.GenerateStateMachines(machines)
	}

	if stdout, _ := cmd.Flags().GetBool("stdout"); stdout {
		fmt.Print(js)
		return nil
	}

	outputConfig, err := buildOutputConfig()
	if err != nil {
		return err
	}
	logger, err := buildLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	writer := stylegen.NewWriter(outputConfig, logger)
	if err := writer.WriteGlobalJS(js); err != nil {
		return fmt.Errorf("writing script: %w", err)
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		fmt.Printf("Wrote %s (%d machines)\n", writer.GlobalJSPath(), len(machines))
	}

	return nil
}

// loadMachineFile parses the definitions YAML into machineFile.
func loadMachineFile(path string) (*machineFile, error) {
	mk := koanf.New(".")
	if err := mk.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	var defs machineFile
	if err := mk.Unmarshal("", &defs); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &defs, nil
}

// buildMachine converts the YAML shape into a validated StateMachine.
func buildMachine(def machineDef) (*stylegen.StateMachine, error) {
	states := make([]stylegen.StateDefinition, 0, len(def.States))
	for _, s := range def.States {
		state := stylegen.StateDefinition{Name: s.Name}

		if len(s.Data) > 0 {
			state.Data = make(map[string]stylegen.RawExpression, len(s.Data))
			for key, value := range s.Data {
				state.Data[key] = stylegen.RawExpression(value)
			}
		}

		for _, e := range s.Events {
			state.Events = append(state.Events, stylegen.EventDefinition{
				Name:   e.Name,
				Target: e.Target,
				Guard:  stylegen.RawExpression(e.Guard),
				Action: stylegen.RawExpression(e.Action),
			})
		}

		states = append(states, state)
	}

	return stylegen.NewStateMachine(def.Initial, states...)
}
