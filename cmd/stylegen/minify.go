package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	stylegen "github.com/yacobolo/stylegen"
)

var minifyCmd = &cobra.Command{
	Use:   "minify [file]",
	Short: "Minify a CSS file",
	Long: `Minify CSS read from a file (or stdin when no file is given) and
print the result to stdout. With --check, additionally parse both forms
and fail if minification changed the rule structure.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runMinify,
}

func init() {
	minifyCmd.Flags().Bool("check", false, "Verify minification preserved the rule structure")
}

func runMinify(cmd *cobra.Command, args []string) error {
	var input []byte
	var err error

	if len(args) == 1 {
		input, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
	} else {
		input, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	css := string(input)
	minified := stylegen.Minify(css)

	if check, _ := cmd.Flags().GetBool("check"); check {
		if !stylegen.EquivalentCSS(css, minified) {
			return fmt.Errorf("minification changed the rule structure")
		}
	}

	fmt.Println(minified)
	return nil
}
