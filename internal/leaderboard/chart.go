package leaderboard

import (
	"bytes"
	"errors"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var ErrEmptyBoard = errors.New("leaderboard has no rows")

const (
	chartHeight   = 400
	chartBarWidth = 40
	chartMinWidth = 400
)

var (
	chartBackground = drawing.ColorFromHex("ffffff")
	chartBar        = drawing.ColorFromHex("6aaa64")
	chartText       = drawing.ColorFromHex("121213")
)

// RenderChart draws the rows as a PNG bar chart, one bar per user in rank
// order. Lower bars are better.
func RenderChart(title string, rows []Row) ([]byte, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyBoard
	}

	bars := make([]chart.Value, 0, len(rows))
	maxScore := 0.0
	for _, r := range rows {
		bars = append(bars, chart.Value{
			Label: r.User,
			Value: r.Score,
			Style: chart.Style{
				FillColor:   chartBar,
				StrokeColor: chartBar,
				StrokeWidth: 1,
			},
		})
		if r.Score > maxScore {
			maxScore = r.Score
		}
	}

	width := len(rows) * (chartBarWidth * 2)
	if width < chartMinWidth {
		width = chartMinWidth
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    width,
		Height:   chartHeight,
		BarWidth: chartBarWidth,
		Background: chart.Style{
			FillColor: chartBackground,
			Padding:   chart.Box{Top: 40},
		},
		Canvas: chart.Style{
			FillColor: chartBackground,
		},
		TitleStyle: chart.Style{
			FontColor: chartText,
		},
		XAxis: chart.Style{
			FontColor: chartText,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{
				FontColor: chartText,
			},
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: maxScore + 1,
			},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
