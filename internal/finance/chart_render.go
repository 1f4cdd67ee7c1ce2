package finance

import (
	"fmt"
	"math"
	"strings"

	"github.com/vicanso/go-charts/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Output formats accepted by RenderChart.
const (
	FormatPNG = charts.ChartOutputPNG
	FormatSVG = charts.ChartOutputSVG
)

// ParseFormat maps a file extension or flag value to an output format.
func ParseFormat(s string) (string, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "", "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	}
	return "", fmt.Errorf("unsupported chart format %q", s)
}

// RenderChart draws the chart description with the go-charts painter.
func RenderChart(ch Chart, format string) ([]byte, error) {
	p, err := charts.NewPainter(charts.PainterOptions{
		Type:   format,
		Width:  ch.Width,
		Height: ch.Height,
	})
	if err != nil {
		return nil, err
	}

	// the page draws on a dark card; keep that underneath the translucent fill
	p.SetBackground(ch.Width, ch.Height, drawing.Color{R: 0x0b, G: 0x10, B: 0x20, A: 255})
	bg := ch.Background
	p.OverrideDrawingStyle(charts.Style{
		FillColor: toDrawing(bg.Fill),
	}).FillArea(roundedRectPath(bg))

	if len(ch.Curve.Points) == 0 {
		return p.Bytes()
	}

	zl := ch.ZeroLine
	p.OverrideDrawingStyle(charts.Style{
		StrokeColor:     toDrawing(zl.Stroke),
		StrokeWidth:     1,
		StrokeDashArray: zl.Dash,
	}).LineStroke([]charts.Point{pixel(zl.From), pixel(zl.To)})

	pts := make([]charts.Point, len(ch.Curve.Points))
	for i, pt := range ch.Curve.Points {
		pts[i] = pixel(pt)
	}
	p.OverrideDrawingStyle(charts.Style{
		StrokeColor: toDrawing(ch.Curve.Stroke),
		StrokeWidth: ch.Curve.StrokeWidth,
	}).LineStroke(pts)

	m := ch.Marker
	mp := pixel(m.Center)
	p.OverrideDrawingStyle(charts.Style{
		FillColor:   toDrawing(m.Fill),
		StrokeColor: toDrawing(m.Fill),
		StrokeWidth: 1,
	})
	p.Circle(m.Radius, mp.X, mp.Y)
	p.FillStroke()

	return p.Bytes()
}

const cornerSegments = 6

// roundedRectPath outlines r as a closed polygon with each corner arc
// approximated by cornerSegments chords.
func roundedRectPath(r Rect) []charts.Point {
	rad := math.Min(r.Radius, math.Min(r.Width, r.Height)/2)
	if rad <= 0 {
		return []charts.Point{
			pixel(Point{r.X, r.Y}),
			pixel(Point{r.X + r.Width, r.Y}),
			pixel(Point{r.X + r.Width, r.Y + r.Height}),
			pixel(Point{r.X, r.Y + r.Height}),
			pixel(Point{r.X, r.Y}),
		}
	}
	corners := []struct {
		cx, cy, start float64
	}{
		{r.X + r.Width - rad, r.Y + rad, -math.Pi / 2},
		{r.X + r.Width - rad, r.Y + r.Height - rad, 0},
		{r.X + rad, r.Y + r.Height - rad, math.Pi / 2},
		{r.X + rad, r.Y + rad, math.Pi},
	}
	pts := make([]charts.Point, 0, len(corners)*(cornerSegments+1)+1)
	for _, c := range corners {
		for i := 0; i <= cornerSegments; i++ {
			a := c.start + float64(i)*(math.Pi/2)/cornerSegments
			pts = append(pts, pixel(Point{c.cx + rad*math.Cos(a), c.cy + rad*math.Sin(a)}))
		}
	}
	return append(pts, pts[0])
}

func pixel(pt Point) charts.Point {
	return charts.Point{X: int(math.Round(pt.X)), Y: int(math.Round(pt.Y))}
}

func toDrawing(c Color) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(c.A * 255))}
}
