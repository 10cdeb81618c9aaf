package cli

import (
	"fmt"
	"time"

	"github.com/brunocoutinho/prazo/internal/cli/formatter"
	"github.com/brunocoutinho/prazo/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

type watchTickMsg time.Time

// watchModel renders a task's running timer, refreshed once per second.
// Stopped timers render a static snapshot; quitting never mutates the task.
type watchModel struct {
	task *domain.Task
	now  time.Time
}

func newWatchModel(task *domain.Task) watchModel {
	return watchModel{task: task, now: time.Now()}
}

func watchTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	return watchTick()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case watchTickMsg:
		m.now = time.Time(msg)
		return m, watchTick()
	}
	return m, nil
}

func (m watchModel) View() string {
	title := formatter.StyleBold.Render(m.task.Title)
	logged := formatter.FormatHours(m.task.TrackedHours(m.now))

	state := formatter.StyleDim.Render("timer stopped")
	if m.task.IsTracking && m.task.TrackingSince != nil {
		elapsed := m.now.Sub(*m.task.TrackingSince).Round(time.Second)
		state = formatter.StyleGreen.Render(fmt.Sprintf("⏱ running %s", elapsed))
	}

	return fmt.Sprintf("%s\n%s\nLogged: %s of %s\n\n%s\n",
		title,
		state,
		logged,
		formatter.FormatHours(m.task.EstimatedHours),
		formatter.StyleDim.Render("q to quit"),
	)
}
