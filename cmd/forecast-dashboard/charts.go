package main

import (
	"net/http"

	"github.com/kridavyuha/forecast-dashboard/internals/cache"
	"github.com/kridavyuha/forecast-dashboard/internals/chart"
	"github.com/kridavyuha/forecast-dashboard/internals/forecast"
	"github.com/kridavyuha/forecast-dashboard/internals/view"

	"github.com/go-chi/chi/v5"
)

func (app *App) GetTrendChart(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	contentType, err := chart.ContentType(format)
	if err != nil {
		sendResponse(w, errResp(http.StatusBadRequest, err))
		return
	}
	sel, err := selectionFromQuery(r)
	if err != nil {
		sendResponse(w, errResp(http.StatusBadRequest, err))
		return
	}
	ds := app.loadedDataset(w)
	if ds == nil {
		return
	}

	v, err := view.Build(ds, sel)
	if err != nil {
		sendResponse(w, errResp(http.StatusBadRequest, err))
		return
	}

	key := cache.ChartKey{DatasetID: ds.ID, Kind: "trend", Type: string(v.Type), Player: v.Player, Format: format}
	img, err := app.Charts.Get(key, func() ([]byte, error) {
		return chart.Trend(v, chart.TrendOptions(format))
	})
	if err != nil {
		app.Log.WithError(err).WithField("player", v.Player).Error("trend chart render failed")
		sendResponse(w, errResp(http.StatusInternalServerError, err))
		return
	}
	writeImage(w, contentType, img)
}

func (app *App) GetDistributionChart(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	contentType, err := chart.ContentType(format)
	if err != nil {
		sendResponse(w, errResp(http.StatusBadRequest, err))
		return
	}
	t, err := forecast.ParsePlayerType(chi.URLParam(r, "type"))
	if err != nil {
		sendResponse(w, errResp(http.StatusBadRequest, err))
		return
	}
	ds := app.loadedDataset(w)
	if ds == nil {
		return
	}

	d, err := view.DistributionFor(ds, t)
	if err != nil {
		sendResponse(w, errResp(http.StatusBadRequest, err))
		return
	}

	key := cache.ChartKey{DatasetID: ds.ID, Kind: "distribution", Type: string(t), Format: format}
	img, err := app.Charts.Get(key, func() ([]byte, error) {
		return chart.Distribution(d, chart.DistributionOptions(format))
	})
	if err != nil {
		app.Log.WithError(err).WithField("type", t).Error("distribution chart render failed")
		sendResponse(w, errResp(http.StatusInternalServerError, err))
		return
	}
	writeImage(w, contentType, img)
}

func writeImage(w http.ResponseWriter, contentType string, img []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "private, max-age=300")
	w.WriteHeader(http.StatusOK)
	w.Write(img)
}
