package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kridavyuha/forecast-dashboard/internals/forecast"
	"github.com/kridavyuha/forecast-dashboard/internals/view"
)

var ErrDataUnavailable = errors.New("forecast data is not available")

type httpResp struct {
	Status  int         `json:"status"`
	IsError bool        `json:"is_error"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func sendResponse(rw http.ResponseWriter, resp httpResp) {
	out, err := json.Marshal(resp)
	if err != nil {
		rw.Header().Set("Content-Type", "application/json; charset=utf-8")
		rw.WriteHeader(http.StatusInternalServerError)
		rw.Write([]byte(`{"status": 500, "is_error": true, "error": "could not marshal response"}`))
		return
	}
	rw.Header().Set("Content-Type", "application/json; charset=utf-8")
	rw.WriteHeader(resp.Status)
	rw.Write(out)
}

func errResp(status int, err error) httpResp {
	return httpResp{Status: status, IsError: true, Error: err.Error()}
}

// selectionFromQuery reads the type and player query parameters. A missing
// type selects batsmen.
func selectionFromQuery(r *http.Request) (view.Selection, error) {
	sel := view.Selection{Type: forecast.Batsman, Player: r.URL.Query().Get("player")}
	if raw := r.URL.Query().Get("type"); raw != "" {
		t, err := forecast.ParsePlayerType(raw)
		if err != nil {
			return view.Selection{}, err
		}
		sel.Type = t
	}
	return sel, nil
}

// loadedDataset writes a 503 envelope and returns nil when the forecast files
// cannot be loaded.
func (app *App) loadedDataset(w http.ResponseWriter) *forecast.Dataset {
	ds, err := app.dataset()
	if err != nil {
		app.Log.WithError(err).Warn("request without forecast data")
		sendResponse(w, httpResp{Status: http.StatusServiceUnavailable, IsError: true, Error: ErrDataUnavailable.Error() + ": " + err.Error()})
		return nil
	}
	return ds
}
