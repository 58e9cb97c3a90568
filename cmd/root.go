package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/axellelanca/minicrud/internal/config"
	"github.com/spf13/cobra"
)

// Cfg is the configuration loaded before any command runs.
var Cfg *config.Config

var cfgErr error

// RootCmd is the base command; the servers and CLI tools register themselves
// as subcommands from their own init() functions.
var RootCmd = &cobra.Command{
	Use:   "minicrud",
	Short: "A URL shortener and a to-do list service",
	Long: `minicrud runs two small HTTP services, each backed by its own SQLite file:
a URL shortener with click counting and a to-do list.`,
}

// Execute is called from main.go.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

// initConfig runs at the beginning of every command execution.
func initConfig() {
	Cfg, cfgErr = config.LoadConfig()
	if cfgErr != nil {
		log.Printf("Warning: Problem loading configuration: %v", cfgErr)
	}
}

// MustConfig returns Cfg and stops the program when it could not be loaded.
func MustConfig() *config.Config {
	if Cfg == nil {
		log.Fatalf("Échec du chargement de la configuration : %v", cfgErr)
	}
	return Cfg
}
