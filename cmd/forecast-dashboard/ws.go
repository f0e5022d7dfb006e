package main

import (
	"encoding/json"
	"net/http"

	"github.com/kridavyuha/forecast-dashboard/internals/forecast"
	"github.com/kridavyuha/forecast-dashboard/internals/view"

	"github.com/gorilla/websocket"
)

type wsSelection struct {
	Type   string `json:"type"`
	Player string `json:"player"`
}

// HandleWebSocket answers each selection message with the player's view, so
// a frontend can switch players without reloading the page.
func (app *App) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := app.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.Log.WithError(err).Warn("Could not open websocket connection")
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				app.Log.WithError(err).Warn("websocket closed unexpectedly")
			}
			return
		}

		if err := conn.WriteJSON(app.selectionResponse(msg)); err != nil {
			app.Log.WithError(err).Warn("websocket write failed")
			return
		}
	}
}

func (app *App) selectionResponse(msg []byte) httpResp {
	var req wsSelection
	if err := json.Unmarshal(msg, &req); err != nil {
		return httpResp{Status: http.StatusBadRequest, IsError: true, Error: "could not parse selection"}
	}

	sel := view.Selection{Type: forecast.Batsman, Player: req.Player}
	if req.Type != "" {
		t, err := forecast.ParsePlayerType(req.Type)
		if err != nil {
			return errResp(http.StatusBadRequest, err)
		}
		sel.Type = t
	}

	ds, err := app.dataset()
	if err != nil {
		return httpResp{Status: http.StatusServiceUnavailable, IsError: true, Error: ErrDataUnavailable.Error() + ": " + err.Error()}
	}
	v, err := view.Build(ds, sel)
	if err != nil {
		return errResp(http.StatusBadRequest, err)
	}
	return httpResp{Status: http.StatusOK, Data: v}
}
