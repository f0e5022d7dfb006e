package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func (app *App) initHandlers() {
	app.R.Use(app.RequestLogger)
	app.R.Use(middleware.Recoverer)
	app.R.Use(cors.New(cors.Options{
		AllowedOrigins: app.Conf.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "If-None-Match"},
		ExposedHeaders: []string{"Content-Disposition", "ETag", requestIDHeader},
		MaxAge:         300,
	}).Handler)

	app.R.Get("/", app.GetDashboard)

	app.R.Route("/api", func(r chi.Router) {
		r.Get("/players", app.GetPlayers)
		r.Get("/forecast", app.GetForecast)
		r.Get("/summary", app.GetSummary)
		r.Get("/leaderboard", app.GetLeaderboard)
	})

	app.R.Get("/charts/trend.{format}", app.GetTrendChart)
	app.R.Get("/charts/distribution/{type}.{format}", app.GetDistributionChart)

	app.R.Get("/download/forecasts.xlsx", app.DownloadWorkbook)
	app.R.Get("/download/{type}.csv", app.DownloadCSV)

	app.R.Get("/ws", app.HandleWebSocket)

	app.R.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("I am Healthy"))
	})
}
