package model

// ViewID identifies a view type
type ViewID string

// view identifiers
const (
	BuilderViewID  ViewID = "builder"
	ResultsViewID  ViewID = "results"
	InsightsViewID ViewID = "insights"
)

// AllViewIDs lists the views in navigation order.
var AllViewIDs = []ViewID{BuilderViewID, ResultsViewID, InsightsViewID}
