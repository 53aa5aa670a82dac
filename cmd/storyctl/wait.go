package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/story-in-go/pkg/config"
	"github.com/doodlesbykumbi/story-in-go/pkg/server"
)

func defaultPortInt() int {
	if p, err := strconv.Atoi(defaultPort()); err == nil {
		return p
	}
	return 8000
}

// waitCmd represents the wait command
var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for the story API server to be ready",
	Long: `Wait for the story API server to be ready by polling the status endpoint.

This command will repeatedly check the server status until it responds
successfully or the maximum number of retries is reached.

The API prefix comes from --prefix when given, otherwise from API_PREFIX.
If the configuration cannot be loaded the default prefix is used, so the
server can be polled from a host without the server's secrets.

Example:
  storyctl wait
  storyctl wait --port 3000 --retries 60
  storyctl wait --prefix /v1`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetInt("port")
		retries, _ := cmd.Flags().GetInt("retries")

		prefix := waitPrefix(cmd, func() (*config.Settings, error) {
			return config.Get(config.WithEnvFile(envFileFlag(cmd)))
		})

		url := statusURL(port, prefix)
		if err := waitForServer(url, retries, time.Second); err != nil {
			fmt.Fprintf(os.Stderr, "Server did not become ready: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().IntP("port", "p", defaultPortInt(), "Server port to check")
	waitCmd.Flags().IntP("retries", "r", 90, "Number of retries")
	waitCmd.Flags().String("prefix", config.DefaultAPIPrefix, "API prefix of the server (defaults to API_PREFIX)")
}

// waitPrefix resolves the API prefix to poll. An explicit --prefix wins;
// otherwise settings are loaded, and a load failure falls back to the flag
// default.
func waitPrefix(cmd *cobra.Command, load func() (*config.Settings, error)) string {
	prefix, _ := cmd.Flags().GetString("prefix")
	if cmd.Flags().Changed("prefix") {
		return prefix
	}

	settings, err := load()
	if err != nil {
		logrus.WithError(err).Warnf("Configuration unavailable, using API prefix %q", prefix)
		return prefix
	}
	return settings.APIPrefix()
}

func statusURL(port int, prefix string) string {
	return fmt.Sprintf("http://localhost:%d%s/status", port, server.NormalizePrefix(prefix))
}

func waitForServer(url string, retries int, interval time.Duration) error {
	client := &http.Client{Timeout: 2 * time.Second}

	fmt.Println("Waiting for the story API to be ready...")

	for i := 0; i < retries; i++ {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode < 300 {
				fmt.Println()
				fmt.Println("Story API is ready!")
				return nil
			}
		}

		fmt.Print(".")
		time.Sleep(interval)
	}

	fmt.Println()
	return fmt.Errorf("story API is not ready after %d attempts", retries)
}
