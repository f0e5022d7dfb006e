package main

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/kridavyuha/forecast-dashboard/internals/forecast"
	"github.com/kridavyuha/forecast-dashboard/internals/templates"
	"github.com/kridavyuha/forecast-dashboard/internals/view"

	"github.com/a-h/templ"
)

func (app *App) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ds, err := app.dataset()
	if err != nil {
		app.Log.WithError(err).Error("Forecast files not found")
		page := templates.DataNotFoundPageData{
			Paths: []string{app.Conf.Data.BatsmanPath, app.Conf.Data.BowlerPath},
		}
		if !isDataNotFound(err) {
			page.Error = err.Error()
		}
		templ.Handler(templates.DataNotFound(page), templ.WithStatus(http.StatusServiceUnavailable)).ServeHTTP(w, r)
		return
	}

	sel, err := selectionFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	v, err := view.Build(ds, sel)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	format := app.Conf.Chart.Format
	q := url.Values{}
	q.Set("type", string(v.Type))
	q.Set("player", v.Player)

	types := make([]templates.TypeOption, 0, len(forecast.PlayerTypes))
	for _, t := range forecast.PlayerTypes {
		types = append(types, templates.TypeOption{Type: t, Label: t.Label(), Selected: t == v.Type})
	}

	data := templates.DashboardPageData{
		DatasetID:     ds.ID,
		Types:         types,
		View:          v,
		Distributions: view.Distributions(ds),
		TrendURL:      fmt.Sprintf("/charts/trend.%s?%s", format, q.Encode()),
		ChartFormat:   format,
	}
	templ.Handler(templates.Dashboard(data)).ServeHTTP(w, r)
}
