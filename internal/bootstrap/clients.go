package bootstrap

import (
	"time"

	"github.com/boolean-maybe/trialscope/config"
	"github.com/boolean-maybe/trialscope/search"
)

// Clients holds the remote endpoint clients.
type Clients struct {
	Search   *search.Client
	Insights *search.InsightsClient
	Timeout  time.Duration
}

// InitClients constructs the search and insights clients from config.
func InitClients(cfg *config.Config) *Clients {
	timeout := time.Duration(cfg.API.TimeoutSeconds) * time.Second
	return &Clients{
		Search:   search.NewClient(cfg.API.BaseURL, timeout, cfg.Search.PageSize),
		Insights: search.NewInsightsClient(cfg.API.BaseURL, timeout),
		Timeout:  timeout,
	}
}
