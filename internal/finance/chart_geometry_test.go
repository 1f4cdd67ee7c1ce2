package finance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildChart(t *testing.T) {
	s := BuildROISeries(0.50, 100, 0.005)
	ch := BuildChart(s, 0.50)

	require.Equal(t, 520, ch.Width)
	require.Equal(t, 140, ch.Height)
	require.Equal(t, Rect{Width: 520, Height: 140, Radius: 10, Fill: colorBackground}, ch.Background)

	pts := ch.Curve.Points
	require.Len(t, pts, len(s))
	// highest ROI at the cheapest price: top-left; lowest at the dearest: bottom-right
	require.Equal(t, Point{28, 28}, pts[0])
	require.Equal(t, Point{492, 112}, pts[len(pts)-1])
	for _, p := range pts {
		require.GreaterOrEqual(t, p.X, 28.0)
		require.LessOrEqual(t, p.X, 492.0)
		require.GreaterOrEqual(t, p.Y, 28.0)
		require.LessOrEqual(t, p.Y, 112.0)
	}

	require.Equal(t, 28.0, ch.ZeroLine.From.X)
	require.Equal(t, 492.0, ch.ZeroLine.To.X)
	require.Equal(t, ch.ZeroLine.From.Y, ch.ZeroLine.To.Y)
	require.Equal(t, []float64{4, 4}, ch.ZeroLine.Dash)

	// marker sits on the 0.50 sample, the middle of the window
	require.InDelta(t, 260.0, ch.Marker.Center.X, 1e-9)
	require.InDelta(t, pts[15].Y, ch.Marker.Center.Y, 0.05)
	require.Equal(t, 4.0, ch.Marker.Radius)
	require.Equal(t, colorMarker, ch.Marker.Fill)
}

func TestBuildChartZeroLineCrossesCurve(t *testing.T) {
	// with 2% fees an entry near 0.99 loses money, so ROI changes sign inside the window
	s := BuildROISeries(0.90, 100, 0.02)
	lo, hi := s.ROIRange()
	require.Less(t, lo, 0.0)
	require.Greater(t, hi, 0.0)

	ch := BuildChart(s, 0.90)
	require.Greater(t, ch.ZeroLine.From.Y, 28.0)
	require.Less(t, ch.ZeroLine.From.Y, 112.0)
}

func TestBuildChartFlatSeries(t *testing.T) {
	ch := BuildChart(ChartSeries{{Price: 0.5, ROI: 0.2}}, 0.5)
	require.Equal(t, []Point{{28, 112}}, ch.Curve.Points)
	require.Equal(t, Point{28, 112}, ch.Marker.Center)
}

func TestBuildChartEmptySeries(t *testing.T) {
	ch := BuildChart(nil, 0.5)
	require.Empty(t, ch.Curve.Points)
	require.Equal(t, 520.0, ch.Background.Width)
}

func TestColorCSS(t *testing.T) {
	require.Equal(t, "rgba(76,201,240,1)", colorCurve.CSS())
	require.Equal(t, "rgba(255,255,255,0.03)", colorBackground.CSS())
}
