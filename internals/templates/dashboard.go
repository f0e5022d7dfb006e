// Package templates holds the dashboard's templ components.
package templates

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/a-h/templ"
)

const pageTitle = "Player Performance Forecasts"

const style = `body{font-family:sans-serif;margin:0;display:flex}
aside{width:240px;padding:1rem;background:#f4f4f6;min-height:100vh}
main{flex:1;padding:1rem 2rem}
table{border-collapse:collapse;width:100%}td,th{border:1px solid #ddd;padding:4px 8px;text-align:left}
.cards{display:flex;gap:1rem}.card{border:1px solid #ddd;border-radius:6px;padding:.5rem 1rem}
.card .label{color:#666;font-size:.85rem}.card .value{font-size:1.4rem}
.cols{display:flex;gap:2rem}.ok{color:#1a7f37}.err{color:#b42318}`

// Dashboard renders the full forecast page for one selection.
func Dashboard(data DashboardPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		head(p)

		p.raw(`<aside><h3>Select Player Type</h3><form method="get" action="/">`)
		for _, opt := range data.Types {
			checked := ""
			if opt.Selected {
				checked = " checked"
			}
			p.raw(`<label><input type="radio" name="type" value="`).text(string(opt.Type)).raw(`" onchange="this.form.player.value='';this.form.submit()"` + checked + `> `).text(opt.Label).raw(`</label><br>`)
		}
		v := data.View
		p.raw(`<p>Select `).text(v.Type.Label()).raw(`</p><select name="player" onchange="this.form.submit()">`)
		for _, name := range v.Players {
			sel := ""
			if name == v.Player {
				sel = " selected"
			}
			p.raw(`<option value="`).text(name).raw(`"` + sel + `>`).text(name).raw(`</option>`)
		}
		p.raw(`</select></form></aside>`)

		p.raw(`<main><h1>Cricket Player Performance Forecast Dashboard</h1>`)
		p.raw(`<p>Analyze <b>batsmen and bowlers</b> forecasted performances for upcoming matches using LSTM predictions.</p>`)
		p.raw(`<p class="ok">Forecast CSVs loaded successfully!</p>`)

		p.raw(`<h2>`).text(v.Player).raw(` — Forecast Overview</h2>`)
		p.raw(`<table><thead><tr><th></th><th>`).text(v.ValueLabel).raw(`</th><th>Form Status</th></tr></thead><tbody>`)
		for i, e := range v.Entries {
			p.raw(`<tr><td>`).text(fmt.Sprint(i)).raw(`</td><td>`).text(fmt.Sprint(e.Value)).raw(`</td><td>`).text(e.FormStatus).raw(`</td></tr>`)
		}
		p.raw(`</tbody></table>`)

		p.raw(`<h2>`).text(v.Player).raw(` — Forecast Trend</h2>`)
		p.raw(`<img alt="forecast trend" src="`).text(data.TrendURL).raw(`">`)

		p.raw(`<h2>Next 5 Match Predictions</h2><div class="cards">`)
		for _, c := range v.Cards {
			p.raw(`<div class="card"><div class="label">`).text(c.Label).raw(`</div><div class="value">`).text(c.Display).raw(`</div></div>`)
		}
		p.raw(`</div>`)

		p.raw(`<h2>Overall Form Distribution</h2><div class="cols">`)
		for _, d := range data.Distributions {
			src := fmt.Sprintf("/charts/distribution/%s.%s", url.PathEscape(string(d.Type)), data.ChartFormat)
			p.raw(`<div><p><b>`).text(d.Title).raw(`</b></p><img alt="`).text(d.Title).raw(`" src="`).text(src).raw(`"></div>`)
		}
		p.raw(`</div>`)

		p.raw(`<hr><h2>Download Forecast Data</h2>`)
		p.raw(`<p><a href="/download/batsman.csv">Download Batsman Forecasts</a> · `)
		p.raw(`<a href="/download/bowler.csv">Download Bowler Forecasts</a> · `)
		p.raw(`<a href="/download/forecasts.xlsx">Download Workbook</a></p>`)
		p.raw(`<hr><small><b>Note:</b> This dashboard visualizes forecasted player performances using LSTM-based models. Built for analytics and portfolio showcase.</small>`)
		p.raw(`</main></body></html>`)
		return p.err
	})
}

// DataNotFound is shown instead of the dashboard while either forecast file
// is missing.
func DataNotFound(data DataNotFoundPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		head(p)
		p.raw(`<main><h1>Cricket Player Performance Forecast Dashboard</h1>`)
		p.raw(`<p class="err">Forecast files not found! Please ensure the files exist:</p><pre>`)
		for _, path := range data.Paths {
			p.text(path).raw("\n")
		}
		p.raw(`</pre>`)
		if data.Error != "" {
			p.raw(`<p><small>`).text(data.Error).raw(`</small></p>`)
		}
		p.raw(`</main></body></html>`)
		return p.err
	})
}

func head(p *printer) {
	p.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`).text(pageTitle).raw(`</title><style>` + style + `</style></head><body>`)
}

// printer keeps the first write error so components can be written as a
// flat sequence of writes.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) raw(s string) *printer {
	if p.err == nil {
		_, p.err = io.WriteString(p.w, s)
	}
	return p
}

func (p *printer) text(s string) *printer {
	return p.raw(templ.EscapeString(s))
}
