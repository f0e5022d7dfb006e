package main

import (
	"net/http"

	"github.com/kridavyuha/forecast-dashboard/internals/view"
)

func (app *App) GetPlayers(w http.ResponseWriter, r *http.Request) {
	sel, err := selectionFromQuery(r)
	if err != nil {
		sendResponse(w, errResp(http.StatusBadRequest, err))
		return
	}
	ds := app.loadedDataset(w)
	if ds == nil {
		return
	}

	players, err := ds.Players(sel.Type)
	if err != nil {
		sendResponse(w, errResp(http.StatusBadRequest, err))
		return
	}
	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"type": sel.Type, "players": players}})
}

func (app *App) GetForecast(w http.ResponseWriter, r *http.Request) {
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
	sendResponse(w, httpResp{Status: http.StatusOK, Data: v})
}

func (app *App) GetSummary(w http.ResponseWriter, r *http.Request) {
	ds := app.loadedDataset(w)
	if ds == nil {
		return
	}
	sendResponse(w, httpResp{Status: http.StatusOK, Data: view.Summarize(ds)})
}
