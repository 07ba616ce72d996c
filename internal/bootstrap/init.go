package bootstrap

import (
	"log/slog"

	"github.com/rivo/tview"

	"github.com/boolean-maybe/trialscope/catalog"
	"github.com/boolean-maybe/trialscope/config"
	"github.com/boolean-maybe/trialscope/controller"
	"github.com/boolean-maybe/trialscope/internal/app"
	"github.com/boolean-maybe/trialscope/model"
	"github.com/boolean-maybe/trialscope/util/sysinfo"
	"github.com/boolean-maybe/trialscope/view"
)

// Result contains all initialized application components.
type Result struct {
	Cfg      *config.Config
	LogLevel slog.Level
	// SystemInfo contains client environment information collected during
	// bootstrap using terminfo lookup (no screen initialization needed).
	SystemInfo   *sysinfo.SystemInfo
	Catalog      *catalog.Catalog
	Models       *Models
	Clients      *Clients
	App          *tview.Application
	Controllers  *Controllers
	InputRouter  *controller.InputRouter
	ViewFactory  *view.ViewFactory
	HeaderWidget *view.HeaderWidget
	RootLayout   *view.RootLayout
}

// Bootstrap orchestrates the complete application initialization sequence
// and returns all initialized components. A nil Result without an error
// means the user aborted first-run setup.
func Bootstrap() (*Result, error) {
	// Phase 1: Configuration and logging
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	logLevel := config.InitLogging(cfg)

	// Phase 2: System information collection
	systemInfo := sysinfo.NewSystemInfo()
	slog.Debug("collected system information",
		"os", systemInfo.OS,
		"arch", systemInfo.Architecture,
		"term", systemInfo.TermType,
		"theme", systemInfo.DetectedTheme,
		"color_support", systemInfo.ColorSupport,
		"color_count", systemInfo.ColorCount)

	// Phase 3: First-run setup
	proceed, err := config.EnsureSetup()
	if err != nil {
		return nil, err
	}
	if !proceed {
		return nil, nil // user chose not to proceed
	}

	// Phase 4: Term catalog
	terms, err := LoadCatalog()
	if err != nil {
		return nil, err
	}

	// Phase 5: Model initialization
	models := InitModels(cfg)

	// Phase 6: Application and clients
	application := app.NewApp()
	app.SetupSignalHandler(application)
	clients := InitClients(cfg)

	// Phase 7: Controllers
	controllers := BuildControllers(application, models, clients)

	// Phase 8: Input routing
	inputRouter := controller.NewInputRouter(controllers.Nav, controllers.Builder)

	// Phase 9: View factory and layout
	viewFactory := view.NewViewFactory(models.Builder, models.SearchState, controllers.Builder, terms)
	headerWidget := view.NewHeaderWidget()
	rootLayout := view.NewRootLayout(headerWidget, viewFactory, application, config.GetHeaderVisible())
	inputRouter.SetHeaderToggler(rootLayout.ToggleHeader)

	// Phase 10: Navigation and input wiring
	wireNavigation(controllers.Nav, rootLayout)
	app.InstallGlobalInputCapture(application, inputRouter)

	// Phase 11: Initial view
	rootLayout.ShowView(model.BuilderViewID)

	return &Result{
		Cfg:          cfg,
		LogLevel:     logLevel,
		SystemInfo:   systemInfo,
		Catalog:      terms,
		Models:       models,
		Clients:      clients,
		App:          application,
		Controllers:  controllers,
		InputRouter:  inputRouter,
		ViewFactory:  viewFactory,
		HeaderWidget: headerWidget,
		RootLayout:   rootLayout,
	}, nil
}

// wireNavigation keeps RootLayout in sync with the navigation controller.
func wireNavigation(navController *controller.NavigationController, rootLayout *view.RootLayout) {
	navController.SetOnViewChanged(rootLayout.ShowView)
	navController.SetActiveViewGetter(rootLayout.ActiveView)
}
