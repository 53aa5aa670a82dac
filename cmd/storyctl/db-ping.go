package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/story-in-go/pkg/config"
	"github.com/doodlesbykumbi/story-in-go/pkg/db"
	gormstore "github.com/doodlesbykumbi/story-in-go/pkg/server/store/gorm"
)

// dbPingCmd represents the db ping command
var dbPingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the database is reachable",
	Long: `Connect to DATABASE_URI and run a trivial query.

Example:
  storyctl db ping
  storyctl db ping --timeout 10s`,
	Run: func(cmd *cobra.Command, args []string) {
		timeout, _ := cmd.Flags().GetDuration("timeout")
		settings := mustLoadSettings(cmd)

		if err := pingDatabase(settings, timeout); err != nil {
			fmt.Fprintf(os.Stderr, "Database is not reachable: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Database is reachable")
	},
}

func init() {
	dbCmd.AddCommand(dbPingCmd)
	dbPingCmd.Flags().Duration("timeout", 5*time.Second, "Ping timeout")
}

func pingDatabase(settings *config.Settings, timeout time.Duration) error {
	database, err := db.Connect(db.ConfigFrom(settings))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return gormstore.NewHealthStore(database).CheckConnectivity(ctx)
}
