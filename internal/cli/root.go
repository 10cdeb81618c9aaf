package cli

import (
	"github.com/brunocoutinho/prazo/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks     service.TaskService
	Clients   service.ClientService
	Config    service.ConfigService
	Dashboard service.DashboardService
}

// NewRootCmd creates the top-level "prazo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "prazo",
		Short: "Agency task board with SLA-driven scheduling",
	}

	root.AddCommand(
		newTaskCmd(app),
		newClientCmd(app),
		newConfigCmd(app),
		newDashboardCmd(app),
	)

	return root
}
