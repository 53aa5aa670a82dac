package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/story-in-go/pkg/config"
)

// configurationCheckCmd represents the configuration check command
var configurationCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration",
	Long: `Validate the configuration from the environment and the env file.

Every missing required setting and every malformed value is reported.
The command exits non-zero when the configuration is invalid.

Example:
  storyctl configuration check
  storyctl configuration check --env-file deploy/.env`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := checkConfiguration(os.Stdout, config.WithEnvFile(envFileFlag(cmd))); err != nil {
			fmt.Fprintf(os.Stderr, "Configuration is invalid: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	configurationCmd.AddCommand(configurationCheckCmd)
}

func checkConfiguration(w io.Writer, opts ...config.Option) error {
	fmt.Fprintln(w, "Validating configuration...")

	settings, err := config.Load(opts...)
	if err != nil {
		var cfgErr *config.Error
		if errors.As(err, &cfgErr) {
			for _, name := range cfgErr.Missing {
				fmt.Fprintf(w, "  missing: %s\n", name)
			}
			for _, fe := range cfgErr.Invalid {
				fmt.Fprintf(w, "  invalid: %s=%q (%v)\n", fe.Field, fe.Value, fe.Err)
			}
		}
		return err
	}

	if settings.EnvFile() != "" {
		fmt.Fprintf(w, "Env file: %s\n", settings.EnvFile())
	}
	fmt.Fprintln(w, "Configuration is valid.")
	return nil
}
