package bootstrap

import (
	"fmt"

	"github.com/boolean-maybe/trialscope/catalog"
	"github.com/boolean-maybe/trialscope/config"
	"github.com/boolean-maybe/trialscope/model"
)

// Models holds the shared application state.
type Models struct {
	Builder     *model.BuilderState
	SearchState *model.SearchState
	History     *model.QueryHistory
}

// InitModels constructs the shared application models.
func InitModels(cfg *config.Config) *Models {
	return &Models{
		Builder:     model.NewBuilderState(),
		SearchState: model.NewSearchState(),
		History:     model.NewQueryHistory(cfg.Search.HistorySize),
	}
}

// LoadCatalog builds the suggested-term catalog: embedded defaults, the
// user's catalog.yaml overlay, then the catalogs chosen during setup.
func LoadCatalog() (*catalog.Catalog, error) {
	c, err := catalog.Load(config.GetUserCatalogFile())
	if err != nil {
		return nil, fmt.Errorf("load term catalog: %w", err)
	}
	c.Restrict(config.GetEnabledCatalogs())
	return c, nil
}
