package formatter

import (
	"fmt"
	"strings"

	"github.com/brunocoutinho/prazo/internal/domain"
)

// FormatClientList renders clients as a table.
func FormatClientList(clients []*domain.Client) string {
	if len(clients) == 0 {
		return StyleDim.Render("No clients.") + "\n"
	}

	headers := []string{"ID", "NAME", "COMPANY", "EMAIL", "STATUS"}
	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		status := string(c.Status)
		if c.Status == domain.ClientInactive {
			status = StyleDim.Render(status)
		}
		rows = append(rows, []string{
			StyleDim.Render(ShortID(c.ID)),
			c.Name,
			c.Company,
			c.Email,
			status,
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString(StyleDim.Render(fmt.Sprintf("%d client(s)", len(clients))))
	b.WriteString("\n")
	return b.String()
}
