package enrollment

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"math"
)

// Pad is the freehand signature surface. Strokes are recorded as an
// append-only list of line segments in surface coordinates, so a
// resize re-renders the same drawing instead of stretching a bitmap.
// The raster image is produced only when a stroke ends.
type Pad struct {
	width  int     // surface size in CSS pixels
	height int
	scale  float64 // device pixel ratio

	// on-screen bounding box origin; pointer events carry client
	// coordinates and both mouse and touch resolve through it
	originX float64
	originY float64

	segments   []segment
	last       Point
	drawing    bool
	hasContent bool
	data       string
}

type Point struct {
	X float64
	Y float64
}

type segment struct {
	from Point
	to   Point
}

// PointerEvent carries the client coordinates of a mouse or touch
// event. Both pointer sources use the same extraction contract.
type PointerEvent struct {
	ClientX float64
	ClientY float64
}

func NewPad(width, height int) *Pad {
	return &Pad{width: width, height: height, scale: 1}
}

// SetOrigin records the surface's on-screen bounding box origin so
// client coordinates can be made surface-relative.
func (p *Pad) SetOrigin(x, y float64) {
	p.originX, p.originY = x, y
}

func (p *Pad) position(ev PointerEvent) Point {
	return Point{X: ev.ClientX - p.originX, Y: ev.ClientY - p.originY}
}

// PointerDown starts a stroke.
func (p *Pad) PointerDown(ev PointerEvent) {
	p.drawing = true
	p.last = p.position(ev)
}

// PointerMove extends the active stroke with a segment from the last
// recorded point to the current one.
func (p *Pad) PointerMove(ev PointerEvent) {
	if !p.drawing {
		return
	}
	pt := p.position(ev)
	p.segments = append(p.segments, segment{from: p.last, to: pt})
	p.last = pt
	p.hasContent = true
}

// PointerUp ends the stroke. If anything was drawn the surface is
// serialized and stored as the signature value.
func (p *Pad) PointerUp() {
	if !p.drawing {
		return
	}
	p.drawing = false
	if p.hasContent {
		p.data = p.render()
	}
}

// PointerLeave ends the stroke the same way leaving the surface does
// in the browser.
func (p *Pad) PointerLeave() {
	p.PointerUp()
}

// Clear wipes the surface and resets the signature value to the empty
// string.
func (p *Pad) Clear() {
	p.segments = nil
	p.drawing = false
	p.hasContent = false
	p.data = ""
}

// Resize re-fits the backing store to a new on-screen size and pixel
// density. The recorded segments are re-rendered so line weight does
// not distort.
func (p *Pad) Resize(width, height int, scale float64) {
	p.width, p.height = width, height
	if scale > 0 {
		p.scale = scale
	}
	if p.hasContent {
		p.data = p.render()
	}
}

// HasContent reports whether at least one segment was drawn since the
// last clear.
func (p *Pad) HasContent() bool {
	return p.hasContent
}

// Data returns the serialized signature, or "" when nothing has been
// captured.
func (p *Pad) Data() string {
	return p.data
}

// render rasterizes the segment list at the current pixel density and
// returns a self-contained PNG data URL.
func (p *Pad) render() string {
	w := int(math.Ceil(float64(p.width) * p.scale))
	h := int(math.Ceil(float64(p.height) * p.scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	ink := color.RGBA{A: 255}
	for _, s := range p.segments {
		drawLine(img,
			s.from.X*p.scale, s.from.Y*p.scale,
			s.to.X*p.scale, s.to.Y*p.scale,
			p.scale, ink)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

// drawLine paints one segment with a pen width of two CSS pixels.
func drawLine(img *image.RGBA, x0, y0, x1, y1, scale float64, ink color.RGBA) {
	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))) + 1
	pen := int(math.Max(scale*2, 1))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(x0 + (x1-x0)*t))
		y := int(math.Round(y0 + (y1-y0)*t))
		for dx := 0; dx < pen; dx++ {
			for dy := 0; dy < pen; dy++ {
				img.SetRGBA(x+dx, y+dy, ink)
			}
		}
	}
}
