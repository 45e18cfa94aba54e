// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package visualizer

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"gonum.org/v1/gonum/stat"
)

const dutyCycleRef = "duty-cycle"
const emissionHistogramRef = "emission-histogram"

// MainHtml is the dashboard's index page, the same named-refs menu shape
// as stochastic/visualizer.MainHtml.
const MainHtml = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>Random-Access Duty Cycle</title>
  </head>
  <body>
    <h1>Random-Access Duty Cycle</h1>
    <ul>
    <li> <h3> <a href="/` + dutyCycleRef + `"> Duty Cycle Over Time </a> </h3> </li>
    <li> <h3> <a href="/` + emissionHistogramRef + `"> Per-Channel Emissions </a> </h3> </li>
    </ul>
</body>
</html>
`

func renderMain(w http.ResponseWriter, r *http.Request) {
	_, _ = fmt.Fprint(w, MainHtml)
}

// runningDutyCycle turns a channel's samples into a running-mean emission
// rate over a sliding window, using gonum/stat the way
// stochastic/statistics computes its own summary statistics.
func runningDutyCycle(samples []Sample, window int) []opts.LineData {
	items := make([]opts.LineData, 0, len(samples))
	emitted := make([]float64, 0, window)
	for _, s := range samples {
		v := 0.0
		if s.Emitted {
			v = 1.0
		}
		emitted = append(emitted, v)
		if len(emitted) > window {
			emitted = emitted[len(emitted)-window:]
		}
		items = append(items, opts.LineData{Value: stat.Mean(emitted, nil)})
	}
	return items
}

func newDutyCycleChart(rec *Recorder, window int) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeChalk}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: true, Title: "Save"},
				DataZoom:    &opts.ToolBoxFeatureDataZoom{Show: true},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{Title: "Duty Cycle Over Time"}),
	)

	channels := rec.Channels()
	sort.Slice(channels, func(i, j int) bool { return channels[i] < channels[j] })
	for _, id := range channels {
		samples := rec.Samples(id)
		chart.AddSeries(fmt.Sprintf("channel %d", id), runningDutyCycle(samples, window))
	}
	return chart
}

func renderDutyCycle(rec *Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chart := newDutyCycleChart(rec, 20)
		_ = chart.Render(w)
	}
}

func newEmissionHistogramChart(rec *Recorder) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeChalk}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: true, Title: "Save"},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{Title: "Per-Channel Emissions"}),
	)

	channels := rec.Channels()
	sort.Slice(channels, func(i, j int) bool { return channels[i] < channels[j] })

	labels := make([]string, 0, len(channels))
	data := make([]opts.BarData, 0, len(channels))
	for _, id := range channels {
		samples := rec.Samples(id)
		count := 0
		for _, s := range samples {
			if s.Emitted {
				count++
			}
		}
		labels = append(labels, fmt.Sprintf("channel %d", id))
		data = append(data, opts.BarData{Value: count})
	}
	bar.SetXAxis(labels).AddSeries("emissions", data)
	return bar
}

func renderEmissionHistogram(rec *Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chart := newEmissionHistogramChart(rec)
		_ = chart.Render(w)
	}
}

// FireUpWeb serves the dashboard for a recorded trace on addr (host:port
// or ":port"), the same entry shape as stochastic/visualizer.FireUpWeb.
func FireUpWeb(rec *Recorder, addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", renderMain)
	mux.HandleFunc("/"+dutyCycleRef, renderDutyCycle(rec))
	mux.HandleFunc("/"+emissionHistogramRef, renderEmissionHistogram(rec))
	return http.ListenAndServe(addr, mux)
}
