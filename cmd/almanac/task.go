package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/almanac/pkg/core"
)

func newTaskCmd(a *app) *cobra.Command {
	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	taskCmd.AddCommand(
		newTaskAddCmd(a),
		newTaskDeleteCmd(a),
		newTaskRemoveCmd(a),
		newTaskListCmd(a),
		newTaskQueryCmd(a, "search [name]", "Find tasks by name", (*core.TaskManager).SearchByTask),
		newTaskQueryCmd(a, "deadline [date]", "Find tasks due on a deadline", (*core.TaskManager).SearchByDeadline),
		newTaskFilterCmd(a, "completed", "List finished tasks", "All finished tasks:", (*core.TaskManager).Completed),
		newTaskFilterCmd(a, "pending", "List unfinished tasks", "All unfinished tasks:", (*core.TaskManager).Pending),
		newTaskDoneCmd(a),
		newTaskUndoneCmd(a),
	)
	return taskCmd
}

// taskFields binds the attribute flags shared by add and remove.
type taskFields struct {
	id          int
	name        string
	description string
	deadline    string
	status      string
}

func (f *taskFields) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.id, "id", 0, "Unique task id")
	cmd.Flags().StringVar(&f.name, "task", "", "Name of the task")
	cmd.Flags().StringVar(&f.description, "description", "", "Description")
	cmd.Flags().StringVar(&f.deadline, "deadline", core.NoDeadline, `Deadline in YYYY-MM-DD format or "No Deadline"`)
	cmd.Flags().StringVar(&f.status, "status", core.StatusNotDone, `"Done" or "Not done"`)
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("task")
}

func (f *taskFields) task() core.Task {
	return core.NewTask(f.id, f.name,
		core.WithDescription(f.description),
		core.WithDeadline(f.deadline),
		core.WithStatus(f.status),
	)
}

func newTaskAddCmd(a *app) *cobra.Command {
	var f taskFields

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := a.tasks(cmd.Context())
			if err != nil {
				return err
			}
			if err := tasks.Add(cmd.Context(), f.task()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Task added.")
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func newTaskDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			tasks, err := a.tasks(cmd.Context())
			if err != nil {
				return err
			}
			if err := tasks.DeleteByID(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Task removed.")
			return nil
		},
	}
}

func newTaskRemoveCmd(a *app) *cobra.Command {
	var f taskFields

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Delete the task equal to the given attributes",
		Long: `Remove deletes the task whose every field equals the given attributes.
Unlike delete, any difference (including defaults) means no match.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := a.tasks(cmd.Context())
			if err != nil {
				return err
			}
			if err := tasks.DeleteMatching(cmd.Context(), f.task()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Task removed.")
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func newTaskListCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := a.tasks(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), tasks.DisplayAll(), asJSON, "No task entries.")
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func newTaskQueryCmd(a *app, use, short string, query func(*core.TaskManager, string) ([]core.Task, error)) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := a.tasks(cmd.Context())
			if err != nil {
				return err
			}
			found, err := query(tasks, args[0])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), found, asJSON, "")
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func newTaskFilterCmd(a *app, use, short, header string, filter func(*core.TaskManager) ([]core.Task, error)) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := a.tasks(cmd.Context())
			if err != nil {
				return err
			}
			found, err := filter(tasks)
			if err != nil {
				return err
			}
			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), header)
			}
			return render(cmd.OutOrStdout(), found, asJSON, "")
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func newTaskDoneCmd(a *app) *cobra.Command {
	return newTaskMarkCmd(a, "done [id]", "Mark a task as done",
		func(ctx context.Context, tasks *core.TaskManager, id int) (string, error) {
			if _, err := tasks.MarkDone(ctx, id); err != nil {
				return "", err
			}
			return "Task is completed.", nil
		})
}

func newTaskUndoneCmd(a *app) *cobra.Command {
	return newTaskMarkCmd(a, "undone [id]", "Mark a task as not done",
		func(ctx context.Context, tasks *core.TaskManager, id int) (string, error) {
			before, err := tasks.Get(id)
			if err != nil {
				return "", err
			}
			if _, err := tasks.MarkUndone(ctx, id); err != nil {
				return "", err
			}
			if !before.Done() {
				return "Task is already marked as undone.", nil
			}
			return "Task is marked undone.", nil
		})
}

func newTaskMarkCmd(a *app, use, short string, mark func(context.Context, *core.TaskManager, int) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			tasks, err := a.tasks(cmd.Context())
			if err != nil {
				return err
			}
			msg, err := mark(cmd.Context(), tasks, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}
