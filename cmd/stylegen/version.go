package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by the release build:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/stylegen
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the stylegen version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("stylegen version %s\n", version)
	},
}
