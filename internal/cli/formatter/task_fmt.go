package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/brunocoutinho/prazo/internal/domain"
	"github.com/brunocoutinho/prazo/internal/schedule"
)

const dateLayout = "2006-01-02"

// FormatTaskList renders tasks as a table.
func FormatTaskList(tasks []*domain.Task, now time.Time) string {
	if len(tasks) == 0 {
		return StyleDim.Render("No tasks.") + "\n"
	}

	headers := []string{"ID", "TITLE", "PRIORITY", "STATUS", "EST", "LOGGED", "START", "DUE", "SLA"}
	rows := make([][]string, 0, len(tasks))
	for _, task := range tasks {
		due := "-"
		if task.DueDate != nil {
			due = task.DueDate.Format(dateLayout)
		}
		sla := StyleGreen.Render("ok")
		if schedule.IsViolation(task, now) {
			sla = StyleRed.Render("violation")
		}
		logged := fmt.Sprintf("%.1fh", task.TrackedHours(now))
		if task.IsTracking {
			logged += StyleYellow.Render(" ⏱")
		}
		rows = append(rows, []string{
			ShortID(task.ID),
			task.Title,
			PriorityLabel(task.Priority),
			string(task.Status),
			fmt.Sprintf("%.1fh", task.EstimatedHours),
			logged,
			task.StartDate.Format(dateLayout),
			due,
			sla,
		})
	}
	return RenderTable(headers, rows)
}

// FormatTaskDetail renders one task with its live tracked time.
func FormatTaskDetail(task *domain.Task, now time.Time) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(task.Title) + "\n")
	if task.Description != "" {
		b.WriteString(StyleDim.Render(task.Description) + "\n")
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", PriorityLabel(task.Priority), task.Status))
	b.WriteString(fmt.Sprintf("Estimated  %.1fh\n", task.EstimatedHours))
	b.WriteString(fmt.Sprintf("Logged     %s\n", FormatHours(task.TrackedHours(now))))
	b.WriteString(fmt.Sprintf("Start      %s\n", task.StartDate.Format(dateLayout)))
	if task.DueDate != nil {
		b.WriteString(fmt.Sprintf("Due        %s\n", task.DueDate.Format(dateLayout)))
	}
	if task.IsTracking {
		b.WriteString(StyleYellow.Render("Timer running") + "\n")
	}
	if schedule.IsViolation(task, now) {
		b.WriteString(StyleRed.Render("SLA violation") + "\n")
	}
	return b.String()
}

// FormatHours renders fractional hours as "1h32m".
func FormatHours(hours float64) string {
	d := time.Duration(hours * float64(time.Hour)).Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh%02dm", h, m)
}

// ShortID returns the first eight characters of an id for display.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// FormatProjection renders a preview start/delivery estimate.
func FormatProjection(p schedule.Projection) string {
	return fmt.Sprintf("Projected start %s, delivery %s (%d day(s) at %.0fh/day)",
		p.Start.Format(dateLayout),
		p.Delivery.Format(dateLayout),
		p.DeliveryDays,
		schedule.ProductiveHoursPerDay,
	)
}
