package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/axellelanca/minicrud/cmd"
	"github.com/axellelanca/minicrud/internal/models"
	"github.com/axellelanca/minicrud/internal/repository"
	"github.com/axellelanca/minicrud/internal/services"
	"github.com/spf13/cobra"
)

var longURLFlag string

// CreateCmd shortens a URL straight into the shortener database.
var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Crée une URL courte à partir d'une URL longue.",
	Long: `Stores the given URL under a new short code and prints the short URL.

Exemple:
  minicrud create --url="https://www.google.com/search?q=go+lang"`,
	Args: cobra.NoArgs,
	Run: func(c *cobra.Command, args []string) {
		cfg := cmd.MustConfig()

		db := openDB(cfg.Shortener.Database, &models.ShortLink{})
		defer closeDB(db)

		linkService := services.NewLinkService(repository.NewShortLinkRepository(db),
			cfg.Shortener.CodeLength, cfg.Shortener.MaxAttempts)

		link, err := linkService.Shorten(context.Background(), longURLFlag)
		if err != nil {
			log.Fatalf("Failed to create short link: %v", err)
		}

		fmt.Printf("URL courte créée avec succès:\n")
		fmt.Printf("Code: %s\n", link.ShortID)
		fmt.Printf("URL complète: %s/%s\n", cfg.ShortURLBase(), link.ShortID)
	},
}

func init() {
	CreateCmd.Flags().StringVar(&longURLFlag, "url", "", "The long URL to shorten")
	CreateCmd.MarkFlagRequired("url")
	cmd.RootCmd.AddCommand(CreateCmd)
}
