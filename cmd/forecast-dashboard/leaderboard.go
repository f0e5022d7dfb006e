package main

import (
	"net/http"
	"strconv"

	"github.com/kridavyuha/forecast-dashboard/internals/leaderboard"
)

func (app *App) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	sel, err := selectionFromQuery(r)
	if err != nil {
		sendResponse(w, errResp(http.StatusBadRequest, err))
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "limit must be a non-negative integer"})
			return
		}
	}

	ds := app.loadedDataset(w)
	if ds == nil {
		return
	}

	scores, err := leaderboard.New(ds).GetLeaderboard(sel.Type, limit)
	if err != nil {
		sendResponse(w, errResp(http.StatusBadRequest, err))
		return
	}
	sendResponse(w, httpResp{Status: http.StatusOK, Data: scores})
}
