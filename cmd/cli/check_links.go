package cli

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/axellelanca/minicrud/cmd"
	"github.com/axellelanca/minicrud/internal/models"
	"github.com/axellelanca/minicrud/internal/monitor"
	"github.com/axellelanca/minicrud/internal/repository"
	"github.com/axellelanca/minicrud/internal/services"
	"github.com/spf13/cobra"
)

// CheckLinksCmd reports which stored target URLs currently answer.
var CheckLinksCmd = &cobra.Command{
	Use:   "check-links",
	Short: "Vérifie l'accessibilité des URLs longues enregistrées.",
	Long: `Sends a HEAD request to the target of every short link and prints
whether it answered with a 2xx or 3xx status. Nothing is written to the database.`,
	Args: cobra.NoArgs,
	Run: func(c *cobra.Command, args []string) {
		cfg := cmd.MustConfig()

		db := openDB(cfg.Shortener.Database, &models.ShortLink{})
		defer closeDB(db)

		linkService := services.NewLinkService(repository.NewShortLinkRepository(db),
			cfg.Shortener.CodeLength, cfg.Shortener.MaxAttempts)
		checker := monitor.NewLinkChecker(linkService, time.Duration(cfg.Monitor.TimeoutSeconds)*time.Second)

		log.Println("[MONITOR] Starting URL status verification...")
		results, err := checker.Check(context.Background())
		if err != nil {
			log.Printf("[MONITOR] ERROR retrieving links for monitoring: %v", err)
			return
		}
		for _, r := range results {
			fmt.Printf("%s  %-12s %s\n", r.ShortID, monitor.FormatState(r.Reachable), r.FullURL)
		}
		log.Printf("[MONITOR] URL status verification completed (%d links).", len(results))
	},
}

func init() {
	cmd.RootCmd.AddCommand(CheckLinksCmd)
}
