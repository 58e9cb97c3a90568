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

// RunTodoCmd starts the to-do list service.
var RunTodoCmd = &cobra.Command{
	Use:   "run-todo",
	Short: "Lance le service de liste de tâches.",
	Long:  `Opens the to-do database, creates the tasks table when missing and serves the /tasks API.`,
	Run: func(c *cobra.Command, args []string) {
		cfg := cmd.MustConfig()
		const prefix = "[TODO]"

		db := openStore(prefix, cfg.Todo.Database, &models.Task{})

		taskService := services.NewTaskService(repository.NewTaskRepository(db))

		router := gin.Default()
		api.SetupTodoRoutes(router, taskService)
		log.Printf("%s Routes API configurées.", prefix)

		serve(prefix, cfg.TodoAddr(), router, db, time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
	},
}

func init() {
	cmd.RootCmd.AddCommand(RunTodoCmd)
}
