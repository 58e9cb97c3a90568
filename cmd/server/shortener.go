package server

import (
	"log"
	"time"

	"github.com/axellelanca/minicrud/cmd"
	"github.com/axellelanca/minicrud/internal/api"
	"github.com/axellelanca/minicrud/internal/models"
	"github.com/axellelanca/minicrud/internal/repository"
	"github.com/axellelanca/minicrud/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

// RunShortenerCmd starts the URL-shortening service.
var RunShortenerCmd = &cobra.Command{
	Use:   "run-shortener",
	Short: "Lance le service de raccourcissement d'URLs.",
	Long: `Opens the shortener database, creates the urls table when missing
and serves POST /shorten, GET /{short_id} and GET /stats/{short_id}.`,
	Run: func(c *cobra.Command, args []string) {
		cfg := cmd.MustConfig()
		const prefix = "[SHORTENER]"

		db := openStore(prefix, cfg.Shortener.Database, &models.ShortLink{})

		linkRepo := repository.NewShortLinkRepository(db)
		linkService := services.NewLinkService(linkRepo, cfg.Shortener.CodeLength, cfg.Shortener.MaxAttempts)

		router := gin.Default()
		api.SetupShortenerRoutes(router, linkService, cfg.ShortURLBase())
		log.Printf("%s Routes API configurées (short URLs sous %s).", prefix, cfg.ShortURLBase())

		serve(prefix, cfg.ShortenerAddr(), router, db, time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
	},
}

func init() {
	cmd.RootCmd.AddCommand(RunShortenerCmd)
}
