package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brunocoutinho/prazo/internal/cli/formatter"
	"github.com/brunocoutinho/prazo/internal/domain"
	"github.com/brunocoutinho/prazo/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tj/go-naturaldate"
)

// addEstimateFlags registers the priority/estimate pair shared by "add"
// and "preview".
func addEstimateFlags(fs *pflag.FlagSet, priority *string, estimate *float64) {
	fs.StringVarP(priority, "priority", "p", "medium", "Priority (low|medium|high|critical)")
	fs.Float64VarP(estimate, "estimate", "e", 0, "Estimated effort in hours")
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskShowCmd(app),
		newTaskDoneCmd(app),
		newTaskRemoveCmd(app),
		newTaskTimerCmd(app),
		newTaskWatchCmd(app),
		newTaskPreviewCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var priority, clientRef, startFlag, dueFlag, description string
	var estimate float64
	var autoSchedule, interactive bool

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a task",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			now := time.Now()

			title := ""
			if len(args) > 0 {
				title = args[0]
			}

			if interactive {
				var err error
				title, priority, estimate, dueFlag, err = runTaskForm(title, priority, estimate, dueFlag)
				if err != nil {
					return err
				}
			}

			task := &domain.Task{
				Title:          title,
				Description:    description,
				Priority:       domain.Priority(priority),
				EstimatedHours: estimate,
			}

			if clientRef != "" {
				client, err := resolveClient(ctx, app, clientRef)
				if err != nil {
					return err
				}
				task.ClientID = &client.ID
			}

			if startFlag != "" {
				start, err := parseNaturalDate(startFlag, now)
				if err != nil {
					return err
				}
				task.StartDate = start
			}
			if dueFlag != "" {
				due, err := parseNaturalDate(dueFlag, now)
				if err != nil {
					return err
				}
				task.DueDate = &due
			}

			res, err := app.Tasks.Create(ctx, service.CreateTaskRequest{
				Task:         task,
				AutoSchedule: autoSchedule,
				Now:          now,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Created task %s (%s)\n", formatter.ShortID(res.Task.ID), res.Task.Title)
			if res.Task.DueDate != nil {
				fmt.Printf("Due %s\n", res.Task.DueDate.Format("2006-01-02 15:04"))
			}
			if res.Slots.Full {
				fmt.Println(formatter.StyleYellow.Render(fmt.Sprintf(
					"Warning: %d of %d %s start slot(s) used on %s",
					res.Slots.Used, res.Slots.Max, res.Task.Priority,
					res.Task.StartDate.Format("2006-01-02"))))
			}
			return nil
		},
	}

	addEstimateFlags(cmd.Flags(), &priority, &estimate)
	cmd.Flags().StringVar(&clientRef, "client", "", "Client name or ID")
	cmd.Flags().StringVar(&startFlag, "start", "", "Start date (natural language or YYYY-MM-DD)")
	cmd.Flags().StringVar(&dueFlag, "due", "", "Due date (natural language or YYYY-MM-DD)")
	cmd.Flags().StringVarP(&description, "desc", "d", "", "Description")
	cmd.Flags().BoolVar(&autoSchedule, "auto", false, "Derive the start date from the priority's SLA offset")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in task fields interactively")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var includeDone bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(context.Background(), includeDone)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatTaskList(tasks, time.Now()))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&includeDone, "all", "a", false, "Include done tasks")
	return cmd
}

func newTaskShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <task>",
		Short: "Show a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			task, err := resolveTask(ctx, app, args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatTaskDetail(task, time.Now()))
			return nil
		},
	}
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <task>",
		Short: "Mark a task done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			task, err := resolveTask(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.MarkDone(ctx, task.ID); err != nil {
				return err
			}
			fmt.Printf("Done: %s\n", task.Title)
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <task>",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			task, err := resolveTask(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, task.ID); err != nil {
				return err
			}
			fmt.Printf("Removed: %s\n", task.Title)
			return nil
		},
	}
}

func newTaskTimerCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "timer <task>",
		Short: "Toggle the task's timer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			task, err := resolveTask(ctx, app, args[0])
			if err != nil {
				return err
			}
			toggled, err := app.Tasks.ToggleTimer(ctx, task.ID)
			if err != nil {
				return err
			}
			if toggled.IsTracking {
				fmt.Printf("Timer started for %s\n", toggled.Title)
			} else {
				fmt.Printf("Timer stopped for %s (%s logged)\n",
					toggled.Title, formatter.FormatHours(toggled.ActualHours))
			}
			return nil
		},
	}
}

func newTaskWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <task>",
		Short: "Watch a task's timer live",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			task, err := resolveTask(ctx, app, args[0])
			if err != nil {
				return err
			}
			p := tea.NewProgram(newWatchModel(task))
			_, err = p.Run()
			return err
		},
	}
}

func newTaskPreviewCmd(app *App) *cobra.Command {
	var priority string
	var estimate float64

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview a projected start and delivery date",
		RunE: func(cmd *cobra.Command, args []string) error {
			projection, err := app.Tasks.Preview(context.Background(),
				domain.Priority(priority), estimate, time.Now())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatProjection(projection))
			return nil
		},
	}

	addEstimateFlags(cmd.Flags(), &priority, &estimate)
	_ = cmd.MarkFlagRequired("estimate")
	return cmd
}

// resolveTask matches a task by exact ID or unambiguous ID prefix.
func resolveTask(ctx context.Context, app *App, ref string) (*domain.Task, error) {
	tasks, err := app.Tasks.List(ctx, true)
	if err != nil {
		return nil, err
	}

	var matches []*domain.Task
	for _, task := range tasks {
		if task.ID == ref {
			return task, nil
		}
		if strings.HasPrefix(task.ID, ref) {
			matches = append(matches, task)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, fmt.Errorf("no task matches %q", ref)
	default:
		return nil, fmt.Errorf("%q matches %d tasks, be more specific", ref, len(matches))
	}
}

// parseNaturalDate accepts YYYY-MM-DD or natural language like "next friday".
func parseNaturalDate(s string, now time.Time) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, now.Location()); err == nil {
		return t, nil
	}
	t, err := naturaldate.Parse(s, now, naturaldate.WithDirection(naturaldate.Future))
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse date %q: %w", s, err)
	}
	return t, nil
}
