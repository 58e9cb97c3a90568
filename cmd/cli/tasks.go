package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/axellelanca/minicrud/cmd"
	customerrors "github.com/axellelanca/minicrud/internal/errors"
	"github.com/axellelanca/minicrud/internal/models"
	"github.com/axellelanca/minicrud/internal/repository"
	"github.com/axellelanca/minicrud/internal/services"
	"github.com/spf13/cobra"
)

var completedFlag bool

// TasksCmd groups the to-do list commands.
var TasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Manage the to-do list from the command line",
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	Args:  cobra.NoArgs,
	Run: func(c *cobra.Command, args []string) {
		withTaskService(func(ctx context.Context, svc *services.TaskService) error {
			tasks, err := svc.List(ctx)
			if err != nil {
				return err
			}
			for _, task := range tasks {
				printTask(&task)
			}
			return nil
		})
	},
}

var tasksAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a task",
	Args:  cobra.ExactArgs(1),
	Run: func(c *cobra.Command, args []string) {
		withTaskService(func(ctx context.Context, svc *services.TaskService) error {
			task, err := svc.Create(ctx, args[0], completedFlag)
			if err != nil {
				return err
			}
			printTask(task)
			return nil
		})
	},
}

var tasksDoneCmd = &cobra.Command{
	Use:   "done [id]",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	Run: func(c *cobra.Command, args []string) {
		id := parseTaskID(args[0])
		withTaskService(func(ctx context.Context, svc *services.TaskService) error {
			task, err := svc.Get(ctx, id)
			if err != nil {
				return notFoundAs(err, customerrors.DetailTaskUpdateNotFound)
			}
			task, err = svc.Update(ctx, id, task.Title, true)
			if err != nil {
				return notFoundAs(err, customerrors.DetailTaskUpdateNotFound)
			}
			printTask(task)
			return nil
		})
	},
}

var tasksRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	Run: func(c *cobra.Command, args []string) {
		id := parseTaskID(args[0])
		withTaskService(func(ctx context.Context, svc *services.TaskService) error {
			if err := svc.Delete(ctx, id); err != nil {
				return notFoundAs(err, customerrors.DetailTaskDeleteNotFound)
			}
			fmt.Printf("Task %d deleted\n", id)
			return nil
		})
	},
}

func init() {
	tasksAddCmd.Flags().BoolVar(&completedFlag, "completed", false, "Create the task already completed")
	TasksCmd.AddCommand(tasksListCmd, tasksAddCmd, tasksDoneCmd, tasksRmCmd)
	cmd.RootCmd.AddCommand(TasksCmd)
}

// withTaskService opens the to-do database around fn and exits non-zero when fn fails.
func withTaskService(fn func(ctx context.Context, svc *services.TaskService) error) {
	cfg := cmd.MustConfig()

	db := openDB(cfg.Todo.Database, &models.Task{})
	err := fn(context.Background(), services.NewTaskService(repository.NewTaskRepository(db)))
	closeDB(db)

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func parseTaskID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Printf("Error: invalid task id %q\n", arg)
		os.Exit(1)
	}
	return id
}

func notFoundAs(err error, detail string) error {
	if customerrors.IsNotFound(err) {
		return customerrors.NotFound(detail)
	}
	return err
}

func printTask(task *models.Task) {
	mark := " "
	if task.Completed {
		mark = "x"
	}
	fmt.Printf("[%s] %d  %s\n", mark, task.ID, task.Title)
}
