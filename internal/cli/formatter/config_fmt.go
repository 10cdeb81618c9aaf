package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/brunocoutinho/prazo/internal/domain"
)

// FormatWorkConfig renders the weekly calendar and the SLA table.
func FormatWorkConfig(cfg *domain.WorkConfig) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("Working days"))
	b.WriteString("\n")
	dayRows := make([][]string, 0, 7)
	for wd := time.Monday; ; wd = (wd + 1) % 7 {
		window := cfg.Days[wd]
		hours := StyleDim.Render("off")
		if window.Active {
			hours = fmt.Sprintf("%s-%s", window.Start, window.End)
		}
		dayRows = append(dayRows, []string{wd.String(), hours})
		if wd == time.Sunday {
			break
		}
	}
	b.WriteString(RenderTable([]string{"DAY", "HOURS"}, dayRows))

	b.WriteString("\n")
	b.WriteString(StyleHeader.Render("SLA policy"))
	b.WriteString("\n")
	slaRows := make([][]string, 0, len(domain.AllPriorities))
	for _, pr := range domain.AllPriorities {
		rule := cfg.SLA[pr]
		slaRows = append(slaRows, []string{
			PriorityLabel(pr),
			fmt.Sprintf("%dd", rule.StartOffsetDays),
			fmt.Sprintf("%d", rule.MaxTasksPerDay),
		})
	}
	b.WriteString(RenderTable([]string{"PRIORITY", "START OFFSET", "MAX STARTS/DAY"}, slaRows))

	return b.String()
}
