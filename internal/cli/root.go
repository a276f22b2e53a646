package cli

import (
	"database/sql"
	"net/http"

	"github.com/spf13/cobra"

	"lentoflow/internal/config"
	"lentoflow/internal/repository"
	"lentoflow/internal/service"
)

// App holds the wired dependencies the CLI commands operate on.
type App struct {
	Cfg      *config.AppConfig
	Database *sql.DB
	Handler  http.Handler

	Users       repository.UserRepo
	Tasks       repository.TaskRepo
	Completions repository.CompletionRepo
	Tokens      repository.TokenRepo
	Clock       service.Clock
}

// NewRootCmd creates the top-level "lentoflow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "lentoflow",
		Short: "Habit garden: energy-budgeted daily task recommendations over HTTP",
	}

	root.AddCommand(
		newServeCmd(app),
		newTokenCmd(app),
		newSeedCmd(app),
	)

	return root
}
