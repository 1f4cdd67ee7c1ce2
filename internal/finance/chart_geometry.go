package finance

import (
	"fmt"
	"math"
)

const (
	chartWidth   = 520
	chartHeight  = 140
	chartPadding = 28
)

const chartCaption = "ROI vs. Price (assuming settlement “Yes” and fees applied on entry & exit)"

// Color is an RGB colour with a 0..1 alpha, as drawn on the page.
type Color struct {
	R, G, B uint8
	A       float64
}

// CSS renders the colour as a CSS rgba() value.
func (c Color) CSS() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%g)", c.R, c.G, c.B, c.A)
}

var (
	colorBackground = Color{255, 255, 255, 0.03}
	colorReference  = Color{255, 255, 255, 0.2}
	colorCurve      = Color{0x4c, 0xc9, 0xf0, 1}
	colorMarker     = Color{0x82, 0x57, 0xe6, 1}
)

type Point struct {
	X, Y float64
}

type Rect struct {
	X, Y, Width, Height float64
	Radius              float64
	Fill                Color
}

type Line struct {
	From, To Point
	Stroke   Color
	Dash     []float64
}

type Polyline struct {
	Points      []Point
	Stroke      Color
	StrokeWidth float64
}

type Circle struct {
	Center Point
	Radius float64
	Fill   Color
}

// Chart is a declarative description of the ROI sparkline. Renderers draw it in
// field order: background, zero line, curve, marker.
type Chart struct {
	Width, Height int
	Caption       string
	Background    Rect
	ZeroLine      Line
	Curve         Polyline
	Marker        Circle
}

// BuildChart projects the series onto the fixed canvas and highlights the point
// for price.
func BuildChart(series ChartSeries, price float64) Chart {
	w, h, pad := float64(chartWidth), float64(chartHeight), float64(chartPadding)
	ch := Chart{
		Width:      chartWidth,
		Height:     chartHeight,
		Caption:    chartCaption,
		Background: Rect{Width: w, Height: h, Radius: 10, Fill: colorBackground},
	}
	if len(series) == 0 {
		return ch
	}

	first, last := series[0].Price, series[len(series)-1].Price
	priceSpan := last - first
	if priceSpan == 0 {
		priceSpan = 1
	}
	minROI, maxROI := series.ROIRange()
	roiSpan := maxROI - minROI
	if roiSpan == 0 {
		roiSpan = 1
	}
	x := func(p float64) float64 { return pad + (p-first)/priceSpan*(w-2*pad) }
	y := func(r float64) float64 { return h - pad - (r-minROI)/roiSpan*(h-2*pad) }

	axisY0 := y(0)
	ch.ZeroLine = Line{
		From:   Point{pad, axisY0},
		To:     Point{w - pad, axisY0},
		Stroke: colorReference,
		Dash:   []float64{4, 4},
	}

	pts := make([]Point, len(series))
	for i, p := range series {
		pts[i] = Point{round1(x(p.Price)), round1(y(p.ROI))}
	}
	ch.Curve = Polyline{Points: pts, Stroke: colorCurve, StrokeWidth: 2.2}

	m := series[series.MarkerIndex(price)]
	ch.Marker = Circle{Center: Point{x(m.Price), y(m.ROI)}, Radius: 4, Fill: colorMarker}
	return ch
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
