package main

import (
	"os"
	"sync"

	"github.com/kridavyuha/forecast-dashboard/internals/cache"
	"github.com/kridavyuha/forecast-dashboard/internals/forecast"
	"github.com/kridavyuha/forecast-dashboard/pkg/conf"
	"github.com/kridavyuha/forecast-dashboard/pkg/kvstore"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

type App struct {
	Conf     *conf.Config
	Log      *logrus.Logger
	R        *chi.Mux
	KVStore  kvstore.KVStore
	Charts   *cache.ChartCache
	Upgrader websocket.Upgrader

	// data is set by the first successful load and never replaced.
	dataM sync.Mutex
	data  *forecast.Dataset
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
