package report

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
)

// Chart geometry in pixels.
const (
	chartWidth   = 1000
	chartHeight  = 600
	marginLeft   = 70
	marginRight  = 30
	marginTop    = 30
	marginBottom = 50
	gridLines    = 5
	markerRadius = 4
)

var (
	axisColor = color.RGBA{0x33, 0x33, 0x33, 0xff}
	gridColor = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}
)

// AlgorithmInfo describes how an algorithm is drawn.
type AlgorithmInfo struct {
	Label string
	Color color.RGBA
}

// Algorithms maps results-file names to their chart style.
var Algorithms = map[string]AlgorithmInfo{
	"InsertionSort": {Label: "Insertion Sort (O(n²))", Color: color.RGBA{0xff, 0x00, 0x00, 0xff}},
	"MergeSort":     {Label: "Merge Sort (O(n log n))", Color: color.RGBA{0x00, 0x00, 0xff, 0xff}},
	"QuickSort":     {Label: "Quick Sort (O(n log n))", Color: color.RGBA{0x00, 0x80, 0x00, 0xff}},
}

func infoFor(alg string) AlgorithmInfo {
	if info, ok := Algorithms[alg]; ok {
		return info
	}
	return AlgorithmInfo{Label: alg, Color: color.RGBA{0x80, 0x80, 0x80, 0xff}}
}

// plotArea maps data coordinates onto the image.
type plotArea struct {
	minX, maxX float64
	maxY       float64
}

func newPlotArea(t *Table) plotArea {
	p := plotArea{
		minX: float64(t.Sizes[0]),
		maxX: float64(t.Sizes[len(t.Sizes)-1]),
		maxY: t.Max() * 1.05,
	}
	if p.maxY <= 0 {
		p.maxY = 1
	}
	return p
}

func (p plotArea) x(size int) float64 {
	w := float64(chartWidth - marginLeft - marginRight)
	if p.maxX == p.minX {
		return marginLeft + w/2
	}
	return marginLeft + (float64(size)-p.minX)/(p.maxX-p.minX)*w
}

func (p plotArea) y(ms float64) float64 {
	h := float64(chartHeight - marginTop - marginBottom)
	return float64(chartHeight-marginBottom) - ms/p.maxY*h
}

// DrawChart renders t as a line chart, one line with markers per algorithm,
// over a dashed grid.
func DrawChart(t *Table) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, chartWidth, chartHeight))
	fill(img, color.White)

	left, right := float64(marginLeft), float64(chartWidth-marginRight)
	top, bottom := float64(marginTop), float64(chartHeight-marginBottom)
	for i := 1; i <= gridLines; i++ {
		gy := bottom - float64(i)*(bottom-top)/gridLines
		drawDashed(img, left, gy, right, gy, gridColor)
		gx := left + float64(i)*(right-left)/gridLines
		drawDashed(img, gx, top, gx, bottom, gridColor)
	}
	drawLine(img, left, bottom, right, bottom, axisColor)
	drawLine(img, left, top, left, bottom, axisColor)

	p := newPlotArea(t)
	for j, alg := range t.Algorithms {
		c := infoFor(alg).Color
		prevOK := false
		var px, py float64
		for i, n := range t.Sizes {
			v := t.Millis[i][j]
			if math.IsNaN(v) {
				prevOK = false
				continue
			}
			x, y := p.x(n), p.y(v)
			if prevOK {
				drawThickLine(img, px, py, x, y, c)
			}
			drawMarker(img, x, y, c)
			px, py, prevOK = x, y, true
		}
	}
	return img
}

// WriteChart encodes the chart for t as PNG.
func WriteChart(w io.Writer, t *Table) error {
	return png.Encode(w, DrawChart(t))
}

func fill(img *image.RGBA, c color.Color) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

// drawLine uses Bresenham's algorithm
func drawLine(img *image.RGBA, x0, y0, x1, y1 float64, c color.Color) {
	plotLine(img, x0, y0, x1, y1, c, 0)
}

func drawDashed(img *image.RGBA, x0, y0, x1, y1 float64, c color.Color) {
	plotLine(img, x0, y0, x1, y1, c, 6)
}

// drawThickLine draws a two pixel wide line.
func drawThickLine(img *image.RGBA, x0, y0, x1, y1 float64, c color.Color) {
	drawLine(img, x0, y0, x1, y1, c)
	if math.Abs(x1-x0) > math.Abs(y1-y0) {
		drawLine(img, x0, y0+1, x1, y1+1, c)
	} else {
		drawLine(img, x0+1, y0, x1+1, y1, c)
	}
}

// plotLine steps from (x0, y0) to (x1, y1). With dash > 0 it alternates
// dash pixels on and dash pixels off.
func plotLine(img *image.RGBA, x0, y0, x1, y1 float64, c color.Color, dash int) {
	x0, y0, x1, y1 = math.Round(x0), math.Round(y0), math.Round(x1), math.Round(y1)
	dx := math.Abs(x1 - x0)
	dy := math.Abs(y1 - y0)
	sx, sy := 1.0, 1.0
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx - dy
	for step := 0; ; step++ {
		if dash == 0 || (step/dash)%2 == 0 {
			img.Set(int(x0), int(y0), c)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// drawMarker draws a filled circle centered on (x, y).
func drawMarker(img *image.RGBA, x, y float64, c color.Color) {
	cx, cy := int(math.Round(x)), int(math.Round(y))
	for dy := -markerRadius; dy <= markerRadius; dy++ {
		for dx := -markerRadius; dx <= markerRadius; dx++ {
			if dx*dx+dy*dy <= markerRadius*markerRadius {
				img.Set(cx+dx, cy+dy, c)
			}
		}
	}
}
