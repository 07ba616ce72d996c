package bootstrap

import (
	"github.com/rivo/tview"

	"github.com/boolean-maybe/trialscope/controller"
)

// Controllers holds all application controllers.
type Controllers struct {
	Nav     *controller.NavigationController
	Builder *controller.BuilderController
}

// BuildControllers constructs the navigation and builder controllers.
func BuildControllers(app *tview.Application, models *Models, clients *Clients) *Controllers {
	navController := controller.NewNavigationController(app)
	builderController := controller.NewBuilderController(
		models.Builder,
		models.SearchState,
		models.History,
		clients.Search,
		clients.Insights,
		navController,
		clients.Timeout,
		func(f func()) { app.QueueUpdateDraw(f) },
	)

	return &Controllers{
		Nav:     navController,
		Builder: builderController,
	}
}
