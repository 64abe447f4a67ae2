package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridable at build time:
// go build -ldflags "-X main.version=v0.2.0".
var version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lvlroot version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("lvlroot " + version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
