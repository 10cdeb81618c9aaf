package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/brunocoutinho/prazo/internal/cli/formatter"
	"github.com/brunocoutinho/prazo/internal/service"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show workload, compliance and upcoming working day",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			date := now
			if dateFlag != "" {
				parsed, err := parseNaturalDate(dateFlag, now)
				if err != nil {
					return err
				}
				date = parsed
			}

			overview, err := app.Dashboard.Overview(context.Background(), service.OverviewRequest{
				Date: date,
				Now:  now,
			})
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatOverview(overview))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Date to inspect (natural language or YYYY-MM-DD)")
	return cmd
}
