package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/brunocoutinho/prazo/internal/cli/formatter"
	"github.com/brunocoutinho/prazo/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// prazoHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func prazoHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

func validatePositiveHours(s string) error {
	h, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || h <= 0 {
		return errors.New("enter a positive number of hours")
	}
	return nil
}

func priorityOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.AllPriorities))
	for _, pr := range domain.AllPriorities {
		opts = append(opts, huh.NewOption(string(pr), string(pr)))
	}
	return opts
}

// runTaskForm collects the task fields interactively, seeded with whatever
// was already given on the command line.
func runTaskForm(title, priority string, estimate float64, due string) (string, string, float64, string, error) {
	estimateStr := ""
	if estimate > 0 {
		estimateStr = strconv.FormatFloat(estimate, 'f', -1, 64)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Landing page redesign").
				Value(&title).
				Validate(validateRequired),
			huh.NewSelect[string]().
				Title("Priority").
				Options(priorityOptions()...).
				Value(&priority),
			huh.NewInput().
				Title("Estimated Hours").
				Placeholder("4").
				Value(&estimateStr).
				Validate(validatePositiveHours),
			huh.NewInput().
				Title("Due Date (blank for SLA fallback)").
				Placeholder("next friday").
				Value(&due),
		),
	).WithTheme(prazoHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", "", 0, "", err
	}

	h, err := strconv.ParseFloat(strings.TrimSpace(estimateStr), 64)
	if err != nil {
		return "", "", 0, "", err
	}
	return title, priority, h, strings.TrimSpace(due), nil
}
