package cli

import (
	"fmt"
	"log"

	"github.com/axellelanca/minicrud/cmd"
	"github.com/axellelanca/minicrud/internal/database"
	"github.com/axellelanca/minicrud/internal/models"
	"github.com/spf13/cobra"
)

// MigrateCmd creates the tables of both services when they are missing.
var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Creates the urls and tasks tables if they do not exist.",
	Long: `Connects to the shortener and to-do SQLite files and creates their tables.
Running it again is harmless; the servers do the same step at startup.`,
	Run: func(c *cobra.Command, args []string) {
		cfg := cmd.MustConfig()

		stores := []struct {
			path  string
			model any
		}{
			{cfg.Shortener.Database, &models.ShortLink{}},
			{cfg.Todo.Database, &models.Task{}},
		}
		for _, s := range stores {
			db, err := database.Open(s.path)
			if err != nil {
				log.Fatalf("Failed to connect to database: %v", err)
			}
			if err := database.EnsureSchema(db, s.model); err != nil {
				closeDB(db)
				log.Fatalf("Failed to migrate %s: %v", s.path, err)
			}
			closeDB(db)
			fmt.Printf("Schema ready in %s\n", s.path)
		}

		fmt.Println("Database migrations executed successfully.")
	},
}

func init() {
	cmd.RootCmd.AddCommand(MigrateCmd)
}
