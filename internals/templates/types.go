package templates

import (
	"github.com/kridavyuha/forecast-dashboard/internals/forecast"
	"github.com/kridavyuha/forecast-dashboard/internals/view"
)

type TypeOption struct {
	Type     forecast.PlayerType
	Label    string
	Selected bool
}

type DashboardPageData struct {
	DatasetID     string
	Types         []TypeOption
	View          view.PlayerView
	Distributions []view.Distribution
	TrendURL      string
	ChartFormat   string
}

type DataNotFoundPageData struct {
	Paths []string
	Error string
}
