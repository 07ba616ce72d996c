package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/boolean-maybe/trialscope/controller"
	"github.com/boolean-maybe/trialscope/view"
)

// NewApp creates a tview application.
func NewApp() *tview.Application {
	return tview.NewApplication()
}

// Run runs the tview application.
// Returns an error if the application fails to run.
func Run(app *tview.Application, rootLayout *view.RootLayout) error {
	app.SetRoot(rootLayout.GetPrimitive(), true).EnableMouse(false)
	if err := app.Run(); err != nil {
		return fmt.Errorf("run application: %w", err)
	}
	return nil
}

// SetupSignalHandler stops the application cleanly on SIGINT/SIGTERM so the
// terminal is restored.
func SetupSignalHandler(app *tview.Application) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		app.Stop()
	}()
}

// InstallGlobalInputCapture routes all key events through the input router
// before tview's own handling. Events the router doesn't consume fall
// through to the focused primitive.
func InstallGlobalInputCapture(app *tview.Application, inputRouter *controller.InputRouter) {
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if inputRouter.HandleInput(event) {
			return nil
		}
		return event
	})
}
