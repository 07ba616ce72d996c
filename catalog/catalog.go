// Package catalog provides the suggested-term lists the builder offers per
// category. Defaults ship embedded; a catalog.yaml in the user config
// directory extends them.
package catalog

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/boolean-maybe/trialscope/model"
)

//go:embed default_catalog.yaml
var defaultCatalogYAML []byte

// fileData is the YAML structure of a catalog file.
type fileData struct {
	Condition    []string `yaml:"condition"`
	Intervention []string `yaml:"intervention"`
	Other        []string `yaml:"other"`
}

// Catalog holds the suggested terms per category.
type Catalog struct {
	terms [len(model.Categories)][]string
}

// Load builds the catalog from the embedded defaults, extended by the user
// file at userPath when it exists. A missing user file is not an error; a
// malformed one is logged and skipped so the defaults still work.
func Load(userPath string) (*Catalog, error) {
	var defaults fileData
	if err := yaml.Unmarshal(defaultCatalogYAML, &defaults); err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}

	c := &Catalog{}
	c.terms[model.CategoryCondition] = defaults.Condition
	c.terms[model.CategoryIntervention] = defaults.Intervention
	c.terms[model.CategoryOther] = defaults.Other

	if userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			var user fileData
			if err := yaml.Unmarshal(data, &user); err != nil {
				slog.Warn("ignoring malformed user catalog", "file", userPath, "error", err)
			} else {
				c.extend(model.CategoryCondition, user.Condition)
				c.extend(model.CategoryIntervention, user.Intervention)
				c.extend(model.CategoryOther, user.Other)
			}
		}
	}

	return c, nil
}

// extend appends terms not already present in the category's list.
func (c *Catalog) extend(cat model.Category, terms []string) {
	existing := make(map[string]struct{}, len(c.terms[cat]))
	for _, t := range c.terms[cat] {
		existing[t] = struct{}{}
	}
	for _, t := range terms {
		if t == "" {
			continue
		}
		if _, ok := existing[t]; ok {
			continue
		}
		c.terms[cat] = append(c.terms[cat], t)
		existing[t] = struct{}{}
	}
}

// Restrict drops the suggestion lists of categories whose name is not in
// enabled. Queries still accept custom terms for restricted categories; only
// the offered suggestions go away. An empty enabled list restricts nothing.
func (c *Catalog) Restrict(enabled []string) {
	if len(enabled) == 0 {
		return
	}
	keep := make(map[string]struct{}, len(enabled))
	for _, name := range enabled {
		keep[strings.ToLower(name)] = struct{}{}
	}
	for _, cat := range model.Categories {
		if _, ok := keep[strings.ToLower(cat.String())]; !ok {
			c.terms[cat] = nil
		}
	}
}

// Terms returns the suggested terms for the category in catalog order.
func (c *Catalog) Terms(cat model.Category) []string {
	if !cat.Valid() {
		return nil
	}
	return c.terms[cat]
}

// AllTerms returns every suggested term across categories, used for
// completion in the custom-term prompt.
func (c *Catalog) AllTerms() []string {
	var all []string
	for _, cat := range model.Categories {
		all = append(all, c.terms[cat]...)
	}
	return all
}
