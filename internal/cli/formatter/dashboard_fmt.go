package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/brunocoutinho/prazo/internal/service"
)

// FormatOverview renders the workload banner and SLA compliance rollup.
func FormatOverview(resp *service.OverviewResponse) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("Workload "+resp.Date.Format(dateLayout)) + "\n")
	b.WriteString(fmt.Sprintf("%s  %.1fh estimated across %d task(s)\n",
		TierIndicator(resp.Load.Tier), resp.Load.TotalHours, resp.Load.Count))

	b.WriteString("\n" + StyleHeader.Render("SLA compliance") + "\n")
	rate := fmt.Sprintf("%d%%", resp.ComplianceRate)
	switch {
	case resp.ComplianceRate >= 90:
		rate = StyleGreen.Render(rate)
	case resp.ComplianceRate >= 70:
		rate = StyleYellow.Render(rate)
	default:
		rate = StyleRed.Render(rate)
	}
	b.WriteString(fmt.Sprintf("%s of %d task(s)\n", rate, resp.TotalTasks))

	if len(resp.Violations) > 0 {
		b.WriteString("\n" + StyleRed.Render("Violations") + "\n")
		for _, task := range resp.Violations {
			reason := "overdue"
			if task.ActualHours > task.EstimatedHours {
				reason = fmt.Sprintf("%.1fh logged vs %.1fh estimated", task.ActualHours, task.EstimatedHours)
			}
			b.WriteString(fmt.Sprintf("  %s %s (%s)\n", ShortID(task.ID), task.Title, reason))
		}
	}

	if resp.HasWorkday {
		label := "Next working day"
		if sameCalendarDay(resp.NextWorkday, resp.Date) {
			label = "Working day"
		}
		b.WriteString("\n" + StyleDim.Render(fmt.Sprintf("%s: %s", label, resp.NextWorkday.Format("Mon 2006-01-02"))) + "\n")
	} else {
		b.WriteString("\n" + StyleRed.Render("No active days in the work calendar") + "\n")
	}

	return b.String()
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
