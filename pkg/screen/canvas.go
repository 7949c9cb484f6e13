// Package screen draws render output onto an ebiten image.
package screen

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/roadrash/pkg/render"
	"github.com/golangdaddy/roadrash/pkg/road"
)

// Canvas implements render.Canvas on top of an ebiten image.
type Canvas struct {
	dst      *ebiten.Image
	sheets   map[road.Sheet]*ebiten.Image
	whiteImg *ebiten.Image // 1x1 white image for untextured polygons
	vertices []ebiten.Vertex
	indices  []uint16
}

var _ render.Canvas = (*Canvas)(nil)

// NewCanvas returns a canvas that blits from sheets.
func NewCanvas(sheets map[road.Sheet]*ebiten.Image) *Canvas {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &Canvas{
		sheets:   sheets,
		whiteImg: white,
		vertices: make([]ebiten.Vertex, 4),
		indices:  []uint16{0, 1, 2, 0, 2, 3},
	}
}

// Target sets the image the next frame is drawn onto.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// FillQuad draws q as two triangles.
func (c *Canvas) FillQuad(q render.Quad, clr color.Color) {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	for i, p := range q {
		c.vertices[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: float32(n.R) / 255,
			ColorG: float32(n.G) / 255,
			ColorB: float32(n.B) / 255,
			ColorA: float32(n.A) / 255,
		}
	}
	c.dst.DrawTriangles(c.vertices, c.indices, c.whiteImg, &ebiten.DrawTrianglesOptions{})
}

// FillRect stretches the white pixel over r.
func (c *Canvas) FillRect(r render.Rect, clr color.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W, r.H)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(clr)
	c.dst.DrawImage(c.whiteImg, op)
}

// Blit scales a sub-image of sheet into dst.
func (c *Canvas) Blit(sheet road.Sheet, src image.Rectangle, dst render.Rect) {
	img, ok := c.sheets[sheet]
	if !ok || src.Empty() {
		return
	}
	sub := img.SubImage(src).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/float64(src.Dx()), dst.H/float64(src.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(sub, op)
}

// SheetSize reports the pixel size of sheet, or zero if it is not loaded.
func (c *Canvas) SheetSize(sheet road.Sheet) (int, int) {
	img, ok := c.sheets[sheet]
	if !ok {
		return 0, 0
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}
