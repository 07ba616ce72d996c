// Package report implements the standalone report-viewer mode: render a
// saved insight report (markdown) and page through it without the full app.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/boolean-maybe/trialscope/config"
	"github.com/boolean-maybe/trialscope/view/renderer"
)

// Run renders the markdown report at path in a scrollable viewer. A path of
// "-" reads the report from stdin.
func Run(path string) error {
	if _, err := config.LoadConfig(); err != nil {
		return err
	}

	content, err := readReport(path)
	if err != nil {
		return err
	}

	rendered, err := renderer.NewMarkdownRenderer().Render(content)
	if err != nil {
		// show the raw markdown rather than nothing
		rendered = content
	}

	viewer := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)
	viewer.SetBackgroundColor(config.GetContentBackgroundColor())
	viewer.SetText(tview.TranslateANSI(rendered))

	app := tview.NewApplication()
	viewer.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			app.Stop()
			return nil
		}
		return event
	})

	app.SetRoot(viewer, true).EnableMouse(false)
	if err := app.Run(); err != nil {
		return fmt.Errorf("report viewer error: %w", err)
	}
	return nil
}

// readReport loads the report source from a file or stdin.
func readReport(path string) (string, error) {
	if path == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		if len(content) == 0 {
			return "", fmt.Errorf("stdin is empty")
		}
		return string(content), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read report: %w", err)
	}
	return string(content), nil
}
