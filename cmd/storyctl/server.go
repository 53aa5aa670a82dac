package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/story-in-go/pkg/db"
	"github.com/doodlesbykumbi/story-in-go/pkg/server"
	"github.com/doodlesbykumbi/story-in-go/pkg/server/endpoints"
	gormstore "github.com/doodlesbykumbi/story-in-go/pkg/server/store/gorm"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8000"
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the story API server",
	Long: `Run the story API server.

To run the server requires the settings DATABASE_URI and OPENAI_API_KEY,
from the environment or the env file. API routes are mounted at API_PREFIX
and cross-origin requests are allowed from ALLOWED_ORIGINS only.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings := mustLoadSettings(cmd)

		database, err := db.Connect(db.ConfigFrom(settings))
		if err != nil {
			logrus.WithError(err).Fatal("Unable to connect to DB")
		}

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		s := server.NewServer(settings, gormstore.NewHealthStore(database), host, port)

		endpoints.RegisterAll(s)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logrus.WithFields(logrus.Fields{
			"addr":            s.Addr(),
			"api_prefix":      server.NormalizePrefix(settings.APIPrefix()),
			"allowed_origins": settings.AllowedOriginsList(),
		}).Info("Running server")
		if err := s.Run(ctx); err != nil {
			logrus.WithError(err).Fatal("Server error")
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
}
