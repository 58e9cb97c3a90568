// Package server holds the commands that run one of the HTTP services.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/axellelanca/minicrud/internal/database"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// openStore opens the service database and makes sure its table exists
// before any request is served.
func openStore(prefix, path string, model any) *gorm.DB {
	db, err := database.Open(path)
	if err != nil {
		log.Fatalf("%s Échec de la connexion à la base de données : %v", prefix, err)
	}
	if err := database.EnsureSchema(db, model); err != nil {
		log.Fatalf("%s Échec de la migration de la base de données : %v", prefix, err)
	}
	log.Printf("%s Base de données %s prête.", prefix, path)
	return db
}

// serve runs router on addr until SIGINT/SIGTERM, then drains in-flight
// requests within shutdownTimeout and closes db.
func serve(prefix, addr string, router *gin.Engine, db *gorm.DB, shutdownTimeout time.Duration) {
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Printf("%s Démarrage du serveur sur %s", prefix, addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("%s Échec du démarrage du serveur : %v", prefix, err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("%s Signal d'arrêt reçu. Arrêt du serveur...", prefix)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("%s Arrêt forcé du serveur : %v", prefix, err)
	}
	if err := database.Close(db); err != nil {
		log.Printf("%s Échec de la fermeture de la base de données : %v", prefix, err)
	}

	log.Printf("%s Serveur arrêté proprement.", prefix)
}
