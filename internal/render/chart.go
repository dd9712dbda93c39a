// Package render draws dashboard charts as SVG.
package render

import (
	"bytes"
	"io"

	"github.com/go-faster/errors"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"recruitment-dashboard/internal/model"
	"recruitment-dashboard/pkg/utils"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("no data to chart")

const (
	principleTitle  = "RECRUIT vs OPEN by Principle"
	chartHeight     = 520
	minPrincipleW   = 1600
	perPrincipleW   = 140
	principleBarW   = 80
	principleGap    = 30
	minRegionW      = 640
	perRegionW      = 120
	regionBarW      = 70
	regionBarGap    = 40
	otherStatusName = "OTHER"
)

var (
	colorOpen    = drawing.ColorFromHex("1F77B4")
	colorRecruit = drawing.ColorFromHex("4FC3F7")
	colorOther   = drawing.ColorFromHex("9E9E9E")
	colorPanel   = drawing.ColorFromHex("2E2D2D")
	colorText    = drawing.ColorFromHex("EEEEEE")
)

// PrincipleWidth is the chart width for n principles: 140px each, at
// least 1600px.
func PrincipleWidth(n int) int {
	if w := n * perPrincipleW; w > minPrincipleW {
		return w
	}
	return minPrincipleW
}

func barStyle(c drawing.Color) chart.Style {
	return chart.Style{FillColor: c, StrokeColor: c, StrokeWidth: 1}
}

func panelStyle() chart.Style {
	return chart.Style{FillColor: colorPanel, FontColor: colorText}
}

// PrincipleOverview draws stacked RECRUIT/OPEN bars per principle in the
// order the counts are given. Statuses other than OPEN and RECRUIT are
// stacked on top as OTHER.
func PrincipleOverview(w io.Writer, counts []model.StatusCount) error {
	if len(counts) == 0 {
		return ErrNoData
	}

	type stack struct{ recruit, open, other int }
	var order []string
	stacks := make(map[string]*stack)
	for _, c := range counts {
		s, ok := stacks[c.Group]
		if !ok {
			s = &stack{}
			stacks[c.Group] = s
			order = append(order, c.Group)
		}
		switch c.Status {
		case model.StatusOpen:
			s.open += c.Count
		case model.StatusRecruit:
			s.recruit += c.Count
		default:
			s.other += c.Count
		}
	}

	bars := make([]chart.StackedBar, 0, len(order))
	for _, g := range order {
		s := stacks[g]
		values := []chart.Value{
			{Label: model.StatusRecruit, Value: float64(s.recruit), Style: barStyle(colorRecruit)},
			{Label: model.StatusOpen, Value: float64(s.open), Style: barStyle(colorOpen)},
		}
		if s.other > 0 {
			values = append(values, chart.Value{Label: otherStatusName, Value: float64(s.other), Style: barStyle(colorOther)})
		}
		name := g
		if name == "" {
			name = "(blank)"
		}
		bars = append(bars, chart.StackedBar{Name: name, Width: principleBarW, Values: values})
	}

	sbc := chart.StackedBarChart{
		Title:      principleTitle,
		TitleStyle: chart.Style{FontColor: colorText, FontSize: 18},
		Width:      PrincipleWidth(len(bars)),
		Height:     chartHeight,
		BarSpacing: principleGap,
		Background: chart.Style{FillColor: colorPanel, Padding: chart.Box{Top: 60, Left: 20, Right: 20, Bottom: 150}},
		Canvas:     panelStyle(),
		XAxis:      chart.Style{FontColor: colorText, TextRotationDegrees: 30},
		YAxis:      chart.Style{FontColor: colorText},
		Bars:       bars,
	}
	if err := sbc.Render(chart.SVG, w); err != nil {
		return errors.Wrap(err, "render principle chart")
	}
	return nil
}

// RegionFulfillment draws one bar per region with its fulfillment
// percentage. Undefined percentages are drawn empty and labelled n/a.
func RegionFulfillment(w io.Writer, panel model.RegionPanel) error {
	if len(panel.Regions) == 0 {
		return ErrNoData
	}

	bars := make([]chart.Value, 0, len(panel.Regions))
	for _, g := range panel.Regions {
		v := 0.0
		if g.Defined() {
			v = g.Percentage
		}
		name := g.Group
		if name == "" {
			name = "(blank)"
		}
		bars = append(bars, chart.Value{
			Label: name + " " + utils.FormatPercent(g.Percentage),
			Value: v,
			Style: barStyle(colorOpen),
		})
	}

	width := len(bars)*perRegionW + 200
	if width < minRegionW {
		width = minRegionW
	}

	bc := chart.BarChart{
		Title:      panel.Title,
		TitleStyle: chart.Style{FontColor: colorText, FontSize: 16},
		Width:      width,
		Height:     chartHeight,
		BarWidth:   regionBarW,
		BarSpacing: regionBarGap,
		Background: chart.Style{FillColor: colorPanel, Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 40}},
		Canvas:     panelStyle(),
		XAxis:      chart.Style{FontColor: colorText},
		YAxis: chart.YAxis{
			Style: chart.Style{FontColor: colorText},
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Bars: bars,
	}
	if err := bc.Render(chart.SVG, w); err != nil {
		return errors.Wrap(err, "render region chart")
	}
	return nil
}

// PrincipleOverviewSVG renders PrincipleOverview into a byte slice.
func PrincipleOverviewSVG(counts []model.StatusCount) ([]byte, error) {
	var buf bytes.Buffer
	if err := PrincipleOverview(&buf, counts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RegionFulfillmentSVG renders RegionFulfillment into a byte slice.
func RegionFulfillmentSVG(panel model.RegionPanel) ([]byte, error) {
	var buf bytes.Buffer
	if err := RegionFulfillment(&buf, panel); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
