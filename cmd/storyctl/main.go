package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storyctl",
	Short: "Run and inspect the story API",
	Long: `storyctl runs the story API server and inspects its configuration.

Settings are read from the environment, falling back to the env file
(.env by default) for variables the environment does not define.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("env-file", ".env", `fallback env file ("" disables it)`)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
