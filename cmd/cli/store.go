// Package cli holds the commands that work on the databases directly,
// without a running server.
package cli

import (
	"log"

	"github.com/axellelanca/minicrud/internal/database"
	"gorm.io/gorm"
)

// openDB opens path and ensures the table of model exists. The caller closes it.
func openDB(path string, model any) *gorm.DB {
	db, err := database.Open(path)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.EnsureSchema(db, model); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	return db
}

func closeDB(db *gorm.DB) {
	if err := database.Close(db); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
}
