package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/story-in-go/pkg/config"
)

func envFileFlag(cmd *cobra.Command) string {
	envFile, _ := cmd.Flags().GetString("env-file")
	return envFile
}

// mustLoadSettings constructs the process-wide settings and configures
// logging from them. Configuration errors are fatal.
func mustLoadSettings(cmd *cobra.Command) *config.Settings {
	settings, err := config.Get(config.WithEnvFile(envFileFlag(cmd)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	configureLogging(settings)
	return settings
}

func configureLogging(settings *config.Settings) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if settings.Debug() {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	logrus.WithFields(logrus.Fields{
		"env_file":   settings.EnvFile(),
		"api_prefix": settings.APIPrefix(),
		"debug":      settings.Debug(),
	}).Debug("Configuration loaded")
}
