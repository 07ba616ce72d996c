package config

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/viper"
)

// First-run setup: ask which suggested-term catalogs the builder should
// offer. Runs before the TUI starts, so a terminal form is fine here.

// EnsureSetup runs the first-run form once and persists the answers.
// Returns (proceed, error); proceed is false when the user aborted.
func EnsureSetup() (bool, error) {
	if viper.GetBool("setup.done") {
		return true, nil
	}

	selected := []string{"condition", "intervention", "other"}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Which suggested-term catalogs should the query builder offer?").
				Options(
					huh.NewOption("Conditions (diseases, disorders)", "condition").Selected(true),
					huh.NewOption("Interventions (drugs, procedures)", "intervention").Selected(true),
					huh.NewOption("Other (phases, demographics, outcomes)", "other").Selected(true),
				).
				Value(&selected),
		),
	).WithTheme(huh.ThemeCharm())

	if err := form.Run(); err != nil {
		if err == huh.ErrUserAborted {
			return false, nil
		}
		return false, fmt.Errorf("run setup form: %w", err)
	}

	viper.Set("setup.done", true)
	viper.Set("catalog.enabled", selected)
	if err := saveConfig(); err != nil {
		return false, fmt.Errorf("save setup answers: %w", err)
	}
	return true, nil
}

// GetEnabledCatalogs returns the catalog sections chosen during setup.
// An empty answer means all catalogs.
func GetEnabledCatalogs() []string {
	enabled := viper.GetStringSlice("catalog.enabled")
	if len(enabled) == 0 {
		return []string{"condition", "intervention", "other"}
	}
	return enabled
}
