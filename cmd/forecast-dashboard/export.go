package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kridavyuha/forecast-dashboard/internals/export"
	"github.com/kridavyuha/forecast-dashboard/internals/forecast"
	"github.com/kridavyuha/forecast-dashboard/pkg/conf"

	"github.com/sirupsen/logrus"
)

func runExport(cfg *conf.Config, log *logrus.Logger, format, outDir string) error {
	var withCSV, withXLSX bool
	switch format {
	case "csv":
		withCSV = true
	case "xlsx":
		withXLSX = true
	case "all":
		withCSV, withXLSX = true, true
	default:
		return fmt.Errorf("invalid format: %s (must be csv, xlsx or all)", format)
	}

	ds, err := forecast.Load(cfg.Data.BatsmanPath, cfg.Data.BowlerPath)
	if err != nil {
		return fmt.Errorf("load forecasts: %w", err)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	if withCSV {
		for _, t := range forecast.PlayerTypes {
			info, _ := forecast.InfoFor(t)
			var buf bytes.Buffer
			if err := export.TableCSV(&buf, ds, t); err != nil {
				return fmt.Errorf("export %s: %w", t, err)
			}
			path := filepath.Join(outDir, info.Filename)
			if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			log.WithField("path", path).Info("wrote forecast csv")
		}
	}

	if withXLSX {
		var buf bytes.Buffer
		if err := export.WriteXLSX(&buf, ds); err != nil {
			return fmt.Errorf("export workbook: %w", err)
		}
		path := filepath.Join(outDir, export.WorkbookFilename)
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		log.WithField("path", path).Info("wrote forecast workbook")
	}
	return nil
}
