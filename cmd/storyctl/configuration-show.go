package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/story-in-go/pkg/config"
)

// configurationShowCmd represents the configuration show command
var configurationShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show configuration attributes and their sources",
	Long: `Show configuration attributes and their sources.

Each attribute reports whether its value came from the environment, the env
file or the built-in default. Secret values are redacted.

Example:
  storyctl configuration show
  storyctl configuration show --output json
  storyctl configuration show --env-file deploy/.env -o yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		settings := mustLoadSettings(cmd)

		if err := showConfiguration(os.Stdout, settings, output); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to show configuration: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	configurationCmd.AddCommand(configurationShowCmd)
	configurationShowCmd.Flags().StringP("output", "o", "text", "Output format (text, json or yaml)")
}

func showConfiguration(w io.Writer, settings *config.Settings, output string) error {
	switch output {
	case "text":
		_, err := fmt.Fprint(w, settings.FormatText())
		return err
	case "json":
		out, err := settings.FormatJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	case "yaml":
		out, err := settings.FormatYAML()
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, out)
		return err
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}
