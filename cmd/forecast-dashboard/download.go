package main

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/kridavyuha/forecast-dashboard/internals/export"
	"github.com/kridavyuha/forecast-dashboard/internals/forecast"

	"github.com/go-chi/chi/v5"
)

func (app *App) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	t, err := forecast.ParsePlayerType(chi.URLParam(r, "type"))
	if err != nil {
		sendResponse(w, errResp(http.StatusBadRequest, err))
		return
	}
	info, err := forecast.InfoFor(t)
	if err != nil {
		sendResponse(w, errResp(http.StatusBadRequest, err))
		return
	}
	ds := app.loadedDataset(w)
	if ds == nil {
		return
	}
	if notModified(w, r, ds) {
		return
	}

	var buf bytes.Buffer
	if err := export.TableCSV(&buf, ds, t); err != nil {
		app.Log.WithError(err).WithField("type", t).Error("csv export failed")
		sendResponse(w, errResp(http.StatusInternalServerError, err))
		return
	}
	writeAttachment(w, "text/csv; charset=utf-8", info.Filename, buf.Bytes())
}

func (app *App) DownloadWorkbook(w http.ResponseWriter, r *http.Request) {
	ds := app.loadedDataset(w)
	if ds == nil {
		return
	}
	if notModified(w, r, ds) {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, ds); err != nil {
		app.Log.WithError(err).Error("xlsx export failed")
		sendResponse(w, errResp(http.StatusInternalServerError, err))
		return
	}
	writeAttachment(w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", export.WorkbookFilename, buf.Bytes())
}

// notModified sets the snapshot ETag and answers 304 when the client already
// holds this snapshot.
func notModified(w http.ResponseWriter, r *http.Request, ds *forecast.Dataset) bool {
	etag := `"` + ds.ID + `"`
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}
	return false
}

func writeAttachment(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
