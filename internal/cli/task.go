package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/tally/internal/config"
	"github.com/example/tally/internal/ports/primary"
	"github.com/example/tally/internal/wire"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
	Long:  "Add, list, complete, and delete tasks in the tally task list",
}

var taskAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		description, _ := cmd.Flags().GetString("description")
		priority, _ := cmd.Flags().GetString("priority")
		if priority == "" {
			priority = defaultPriority()
		}

		task, err := wire.TaskService().AddTask(ctx, primary.AddTaskRequest{
			Name:        args[0],
			Description: description,
			Priority:    priority,
		})
		if err != nil {
			return err
		}

		fmt.Printf("✓ Added task %s: %s (%s) %s\n", task.ID, task.Name, task.Description, priorityMarker(task.Priority))
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		tasks, err := wire.TaskService().ListTasks(ctx)
		if err != nil {
			return err
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks found")
			return nil
		}

		fmt.Printf("Found %d task(s):\n\n", len(tasks))
		for i, task := range tasks {
			fmt.Printf("%d. %s %-9s %s (%s) %s\n",
				i+1, doneMarker(task.Done), task.ID, task.Name, task.Description, priorityMarker(task.Priority))
		}
		return nil
	},
}

var taskDoneCmd = &cobra.Command{
	Use:   "done [index]",
	Short: "Mark the task at the given list position done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		task, err := wire.TaskService().MarkTaskDone(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("✓ Marked done: %s\n", task.Name)
		return nil
	},
}

var taskUndoneCmd = &cobra.Command{
	Use:   "undone [index]",
	Short: "Mark the task at the given list position not done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		task, err := wire.TaskService().UnmarkTaskDone(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("✓ Marked not done: %s\n", task.Name)
		return nil
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete [index]",
	Short: "Delete the task at the given list position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		task, err := wire.TaskService().DeleteTask(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("✓ Deleted task: %s\n", task.Name)
		return nil
	},
}

// defaultPriority reads the configured default, falling back to low.
func defaultPriority() string {
	if cfg, err := config.LoadConfig(); err == nil && cfg.DefaultPriority != "" {
		return cfg.DefaultPriority
	}
	return "low"
}

func doneMarker(done bool) string {
	if done {
		return color.New(color.FgGreen).Sprint("✓")
	}
	return color.New(color.FgYellow).Sprint("○")
}

func priorityMarker(priority string) string {
	switch priority {
	case "high":
		return color.New(color.FgRed).Sprint("[high]")
	case "medium":
		return color.New(color.FgYellow).Sprint("[medium]")
	default:
		return color.New(color.FgHiBlack).Sprint("[low]")
	}
}

func init() {
	taskAddCmd.Flags().StringP("description", "d", "", "One-word task description")
	taskAddCmd.Flags().StringP("priority", "p", "", "Priority: low, medium, or high")
	taskAddCmd.MarkFlagRequired("description")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskUndoneCmd)
	taskCmd.AddCommand(taskDeleteCmd)
}

// TaskCmd returns the task command
func TaskCmd() *cobra.Command {
	return taskCmd
}
