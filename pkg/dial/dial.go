package dial

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/tigerbot-team/tigerbot/go-linalg/pkg/angle"
)

// Render draws a dial of the given size with the anti-clockwise sweep from
// first to second highlighted. Each test angle is drawn as a spoke, green
// if it lies on the sweep and red if not.
func Render[U angle.UnitPolicy, W angle.WrapPolicy](size int, first, second angle.Angle[float64, U, W], tests ...angle.Angle[float64, U, W]) image.Image {
	return draw(size, first, second, tests).Image()
}

// EncodePNG renders the dial and writes it to w as a PNG.
func EncodePNG[U angle.UnitPolicy, W angle.WrapPolicy](w io.Writer, size int, first, second angle.Angle[float64, U, W], tests ...angle.Angle[float64, U, W]) error {
	return draw(size, first, second, tests).EncodePNG(w)
}

// SavePNG renders the dial to a PNG file.
func SavePNG[U angle.UnitPolicy, W angle.WrapPolicy](path string, size int, first, second angle.Angle[float64, U, W], tests ...angle.Angle[float64, U, W]) error {
	return draw(size, first, second, tests).SavePNG(path)
}

func draw[U angle.UnitPolicy, W angle.WrapPolicy](size int, first, second angle.Angle[float64, U, W], tests []angle.Angle[float64, U, W]) *gg.Context {
	S := float64(size)
	dc := gg.NewContext(size, size)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	centre := S / 2
	radius := S * 0.4

	dc.Push()
	// Y up, so positive angles go anti-clockwise on screen.
	dc.InvertY()

	dc.SetRGB(0.7, 0.7, 0.7)
	dc.SetLineWidth(1)
	dc.DrawCircle(centre, centre, radius)
	dc.Stroke()

	start := first.Radians()
	sweep := angle.Inbetween(first, second).Radians()
	dc.SetRGB(0.2, 0.4, 1)
	dc.SetLineWidth(math.Max(2, S/32))
	dc.DrawArc(centre, centre, radius, start, start+sweep)
	dc.Stroke()

	dc.SetLineWidth(math.Max(2, S/64))
	for _, t := range tests {
		if angle.IsInbetween(t, first, second) {
			dc.SetRGB(0, 0.8, 0)
		} else {
			dc.SetRGB(0.9, 0, 0)
		}
		x, y := centre+radius*t.Cos(), centre+radius*t.Sin()
		dc.DrawLine(centre, centre, x, y)
		dc.Stroke()
	}
	dc.Pop()

	dc.SetRGB(0, 0, 0)
	dc.DrawString(fmt.Sprintf("%v -> %v", first, second), 4, 14)
	return dc
}
