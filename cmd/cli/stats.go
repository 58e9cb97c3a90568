package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/axellelanca/minicrud/cmd"
	customerrors "github.com/axellelanca/minicrud/internal/errors"
	"github.com/axellelanca/minicrud/internal/models"
	"github.com/axellelanca/minicrud/internal/repository"
	"github.com/axellelanca/minicrud/internal/services"
	"github.com/spf13/cobra"
)

// StatsCmd prints the target and click count of a short code.
var StatsCmd = &cobra.Command{
	Use:   "stats [short-id]",
	Short: "Get statistics for a short URL",
	Long:  `Prints the stored URL and the number of redirects served for the short id.`,
	Args:  cobra.ExactArgs(1),
	Run:   runStats,
}

func init() {
	cmd.RootCmd.AddCommand(StatsCmd)
}

func runStats(c *cobra.Command, args []string) {
	shortID := args[0]
	cfg := cmd.MustConfig()

	db := openDB(cfg.Shortener.Database, &models.ShortLink{})
	defer closeDB(db)

	linkService := services.NewLinkService(repository.NewShortLinkRepository(db),
		cfg.Shortener.CodeLength, cfg.Shortener.MaxAttempts)

	link, err := linkService.Stats(context.Background(), shortID)
	if err != nil {
		if customerrors.IsNotFound(err) {
			fmt.Printf("Error: %s: '%s'\n", customerrors.DetailShortURLNotFound, shortID)
		} else {
			fmt.Printf("Error retrieving statistics: %v\n", err)
		}
		closeDB(db)
		os.Exit(1)
	}

	fmt.Printf("Statistiques pour le code court: %s\n", shortID)
	fmt.Printf("URL longue: %s\n", link.FullURL)
	fmt.Printf("Total de clics: %d\n", link.Clicks)
}
