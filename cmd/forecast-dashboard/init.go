package main

import (
	"errors"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/kridavyuha/forecast-dashboard/internals/cache"
	"github.com/kridavyuha/forecast-dashboard/internals/forecast"
	"github.com/kridavyuha/forecast-dashboard/pkg/conf"
	"github.com/kridavyuha/forecast-dashboard/pkg/kvstore"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

func initLogger(cfg conf.LogConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if strings.EqualFold(cfg.Format, "text") {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	logLevel, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}

func newApp(cfg *conf.Config, log *logrus.Logger) *App {
	app := &App{
		Conf: cfg,
		Log:  log,
		R:    chi.NewRouter(),
	}
	app.Upgrader = websocket.Upgrader{CheckOrigin: app.checkOrigin}

	app.initKVStore()
	app.Charts = cache.New(app.KVStore, cfg.Cache.TTL, log)
	app.initHandlers()
	return app
}

// initKVStore connects to redis when enabled. The cache is an optimisation,
// so an unreachable redis falls back to the in-process store.
func (app *App) initKVStore() {
	if !app.Conf.Redis.Enabled {
		app.KVStore = kvstore.NewMemory()
		return
	}
	kv, err := kvstore.NewRedis(app.Conf.Redis.Addr, app.Conf.Redis.Password, app.Conf.Redis.DB)
	if err != nil {
		app.Log.WithError(err).WithField("addr", app.Conf.Redis.Addr).Warn("Could not connect to Redis, using in-memory chart cache")
		app.KVStore = kvstore.NewMemory()
		return
	}
	app.KVStore = kv
}

// dataset returns the loaded forecasts, loading them on first use. Failed
// loads are retried on the next call; a successful one is kept for the life
// of the process.
func (app *App) dataset() (*forecast.Dataset, error) {
	app.dataM.Lock()
	defer app.dataM.Unlock()

	if app.data != nil {
		return app.data, nil
	}

	ds, err := forecast.Load(app.Conf.Data.BatsmanPath, app.Conf.Data.BowlerPath)
	if err != nil {
		return nil, err
	}
	app.data = ds
	app.Log.WithFields(logrus.Fields{
		"dataset_id": ds.ID,
		"batsmen":    len(ds.Batsmen.Rows),
		"bowlers":    len(ds.Bowlers.Rows),
	}).Info("Forecast CSVs loaded successfully")
	return ds, nil
}

func isDataNotFound(err error) bool {
	return errors.Is(err, forecast.ErrDataNotFound)
}

func (app *App) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}
	for _, allowed := range app.Conf.Server.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}
