package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brunocoutinho/prazo/internal/cli/formatter"
	"github.com/brunocoutinho/prazo/internal/domain"
	"github.com/spf13/cobra"
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and change the work calendar and SLA policy",
	}

	cmd.AddCommand(
		newConfigShowCmd(app),
		newConfigSetDayCmd(app),
		newConfigSetSLACmd(app),
	)

	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config.Load(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatWorkConfig(cfg))
			return nil
		},
	}
}

func newConfigSetDayCmd(app *App) *cobra.Command {
	var start, end string
	var off bool

	cmd := &cobra.Command{
		Use:   "set-day <weekday>",
		Short: "Set a weekday's working window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, ok := weekdayNames[strings.ToLower(args[0])]
			if !ok {
				return fmt.Errorf("unknown weekday %q", args[0])
			}

			ctx := context.Background()
			cfg, err := app.Config.Load(ctx)
			if err != nil {
				return err
			}

			window := cfg.Days[day]
			if off {
				window.Active = false
			} else {
				window.Active = true
				if start != "" {
					window.Start = start
				}
				if end != "" {
					window.End = end
				}
			}
			cfg.Days[day] = window

			if err := app.Config.Save(ctx, cfg); err != nil {
				return err
			}
			if off {
				fmt.Printf("%s is now a non-working day\n", day)
			} else {
				fmt.Printf("%s: %s-%s\n", day, window.Start, window.End)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Window start (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "Window end (HH:MM)")
	cmd.Flags().BoolVar(&off, "off", false, "Mark the day as non-working")
	return cmd
}

func newConfigSetSLACmd(app *App) *cobra.Command {
	var offset, maxTasks int

	cmd := &cobra.Command{
		Use:   "set-sla <priority>",
		Short: "Set a priority's SLA rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			priority := domain.Priority(strings.ToLower(args[0]))
			if !domain.ValidPriorities[priority] {
				return fmt.Errorf("unknown priority %q", args[0])
			}

			ctx := context.Background()
			cfg, err := app.Config.Load(ctx)
			if err != nil {
				return err
			}

			rule := cfg.SLA[priority]
			if cmd.Flags().Changed("offset") {
				rule.StartOffsetDays = offset
			}
			if cmd.Flags().Changed("max-tasks") {
				rule.MaxTasksPerDay = maxTasks
			}
			cfg.SLA[priority] = rule

			if err := app.Config.Save(ctx, cfg); err != nil {
				return err
			}
			fmt.Printf("%s: start offset %dd, %d task(s)/day\n",
				priority, rule.StartOffsetDays, rule.MaxTasksPerDay)
			return nil
		},
	}

	cmd.Flags().IntVar(&offset, "offset", 0, "Start offset in days")
	cmd.Flags().IntVar(&maxTasks, "max-tasks", 0, "Max task starts per day")
	return cmd
}
