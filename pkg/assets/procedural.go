package assets

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/golangdaddy/roadrash/pkg/road"
)

// Procedural sheet sizes. Every sprite rectangle in the road package fits
// inside its sheet.
var sheetSizes = map[road.Sheet]image.Point{
	road.SheetBackground: {X: 2048, Y: 768},
	road.SheetBike:       {X: 1024, Y: 700},
	road.SheetObstacles:  {X: 1024, Y: 640},
}

// Painter draws stand-in sprite sheets so the game runs without art.
type Painter struct {
	rng *rand.Rand
}

// NewPainter returns a painter whose scenery is fixed by seed.
func NewPainter(seed int64) *Painter {
	return &Painter{rng: rand.New(rand.NewSource(seed))}
}

// Paint draws the sheet.
func (p *Painter) Paint(sheet road.Sheet) *image.RGBA {
	size := sheetSizes[sheet]
	img := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	switch sheet {
	case road.SheetBackground:
		p.paintBackground(img)
	case road.SheetBike:
		for i, src := range road.BikeSprites {
			// hard left, left, straight, right, hard right
			paintBike(img, src.Rect, float64(i-2)*0.1)
		}
	case road.SheetObstacles:
		paintTrash(img, road.SpriteTrash.Rect)
		paintCar(img, road.SpriteCar.Rect, color.RGBA{200, 30, 30, 255})
		paintPedestrian(img, road.SpritePedestrian.Rect)
	}
	return img
}

// paintBackground draws a sky gradient, rolling hills and a tree line. The
// renderer only shows the left quarter, stretched over the screen.
func (p *Painter) paintBackground(img *image.RGBA) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	horizon := h / 2

	for y := 0; y < horizon; y++ {
		t := float64(y) / float64(horizon)
		c := color.RGBA{
			uint8(60 + 80*t),
			uint8(170 + 60*t),
			uint8(230 + 20*t),
			255,
		}
		fillRect(img, image.Rect(0, y, w, y+1), c)
	}

	// two hill layers whose period divides the quarter width so the wrap is seamless
	period := float64(w / 4)
	for x := 0; x < w; x++ {
		far := float64(horizon) - 60 - 40*math.Sin(2*math.Pi*float64(x)/period)
		near := float64(horizon) - 20 - 30*math.Sin(4*math.Pi*float64(x)/period+1)
		fillRect(img, image.Rect(x, int(far), x+1, h), color.RGBA{70, 120, 90, 255})
		fillRect(img, image.Rect(x, int(near), x+1, h), color.RGBA{40, 110, 40, 255})
	}

	for x := 0; x < w; x += 12 + p.rng.Intn(20) {
		y := horizon + p.rng.Intn(10)
		if p.rng.Float64() < 0.4 {
			p.drawTree(img, x, y)
		} else {
			p.drawBush(img, x, y)
		}
	}
	fillRect(img, image.Rect(0, horizon+8, w, h), color.RGBA{16, 140, 16, 255})
}

// drawTree draws a layered pine.
func (p *Painter) drawTree(img *image.RGBA, x, y int) {
	height := 40 + p.rng.Intn(30)
	width := 20 + p.rng.Intn(15)
	trunkW := 4 + p.rng.Intn(4)
	fillRect(img, image.Rect(x-trunkW/2, y-height/3, x+trunkW/2, y), color.RGBA{60, 40, 20, 255})

	leaves := color.RGBA{
		uint8(20 + p.rng.Intn(30)),
		uint8(80 + p.rng.Intn(60)),
		uint8(20 + p.rng.Intn(30)),
		255,
	}
	for l := 0; l < 3; l++ {
		layerY := y - height/3 - l*height/4
		layerW := max(5, width-l*5)
		for ly := 0; ly < height/3; ly++ {
			rowW := layerW * (height/3 - ly) / (height / 3)
			fillRect(img, image.Rect(x-rowW/2, layerY-ly, x+rowW/2, layerY-ly+1), leaves)
		}
	}
}

// drawBush draws a round bush.
func (p *Painter) drawBush(img *image.RGBA, x, y int) {
	r := 5 + p.rng.Intn(10)
	c := color.RGBA{
		uint8(40 + p.rng.Intn(40)),
		uint8(100 + p.rng.Intn(50)),
		uint8(40 + p.rng.Intn(40)),
		255,
	}
	fillEllipse(img, float64(x), float64(y), float64(r), float64(r), c)
}

// paintBike draws a rider seen from behind, sheared sideways by lean.
// Content stays inside a margin because neighbouring bike cells overlap.
func paintBike(img *image.RGBA, cell image.Rectangle, lean float64) {
	const margin = 25
	cx := float64(cell.Min.X+cell.Max.X) / 2
	bottom := float64(cell.Max.Y)
	shift := func(y float64) float64 { return cx + lean*(bottom-y) }

	tyre := color.RGBA{25, 25, 25, 255}
	body := color.RGBA{230, 120, 20, 255}
	jacket := color.RGBA{40, 40, 120, 255}
	skin := color.RGBA{235, 190, 150, 255}
	helmet := color.RGBA{240, 240, 240, 255}

	clip := image.Rect(cell.Min.X+margin, cell.Min.Y, cell.Max.X-margin, cell.Max.Y)
	sub := img.SubImage(clip).(*image.RGBA)

	fillEllipse(sub, shift(bottom-60), bottom-60, 22, 60, tyre)
	for y := bottom - 200; y < bottom-80; y++ {
		x := shift(y)
		fillRect(sub, image.Rect(int(x-45), int(y), int(x+45), int(y)+1), body)
	}
	for y := bottom - 300; y < bottom-190; y++ {
		x := shift(y)
		fillRect(sub, image.Rect(int(x-50), int(y), int(x+50), int(y)+1), jacket)
	}
	fillRect(sub, image.Rect(int(shift(bottom-210)-80), int(bottom-215), int(shift(bottom-210)-50), int(bottom-200)), skin)
	fillRect(sub, image.Rect(int(shift(bottom-210)+50), int(bottom-215), int(shift(bottom-210)+80), int(bottom-200)), skin)
	fillEllipse(sub, shift(bottom-320), bottom-320, 28, 30, helmet)
}

// paintTrash draws a tied black bag.
func paintTrash(img *image.RGBA, cell image.Rectangle) {
	cx := float64(cell.Min.X+cell.Max.X) / 2
	bottom := float64(cell.Max.Y)
	bag := color.RGBA{20, 20, 25, 255}
	fillEllipse(img, cx, bottom-70, 95, 70, bag)
	fillEllipse(img, cx, bottom-150, 20, 18, bag)
	fillRect(img, image.Rect(int(cx)-30, int(bottom)-170, int(cx)+30, int(bottom)-160), color.RGBA{200, 180, 40, 255})
	fillEllipse(img, cx-40, bottom-95, 18, 10, color.RGBA{70, 70, 80, 255})
}

// paintCar draws the back of a parked car.
func paintCar(img *image.RGBA, cell image.Rectangle, bodyColor color.RGBA) {
	x0, y0, x1, y1 := cell.Min.X, cell.Min.Y, cell.Max.X, cell.Max.Y
	w := x1 - x0
	outline := color.RGBA{20, 20, 20, 255}
	wheel := color.RGBA{30, 30, 30, 255}
	glass := color.RGBA{150, 200, 255, 255}

	fillRect(img, image.Rect(x0+15, y1-40, x0+65, y1), wheel)
	fillRect(img, image.Rect(x1-65, y1-40, x1-15, y1), wheel)
	fillRect(img, image.Rect(x0, y0+80, x1, y1-25), outline)
	fillRect(img, image.Rect(x0+3, y0+83, x1-3, y1-28), bodyColor)
	fillRect(img, image.Rect(x0+40, y0+10, x1-40, y0+85), outline)
	fillRect(img, image.Rect(x0+43, y0+13, x1-43, y0+82), bodyColor)
	fillRect(img, image.Rect(x0+55, y0+22, x1-55, y0+75), glass)
	fillRect(img, image.Rect(x0+15, y0+100, x0+55, y0+120), color.RGBA{255, 40, 40, 255})
	fillRect(img, image.Rect(x1-55, y0+100, x1-15, y0+120), color.RGBA{255, 40, 40, 255})
	fillRect(img, image.Rect(x0+w/2-40, y0+130, x0+w/2+40, y0+150), color.RGBA{240, 240, 240, 255})
}

// paintPedestrian draws a standing figure.
func paintPedestrian(img *image.RGBA, cell image.Rectangle) {
	cx := (cell.Min.X + cell.Max.X) / 2
	y0, y1 := cell.Min.Y, cell.Max.Y
	fillEllipse(img, float64(cx), float64(y0+30), 25, 28, color.RGBA{235, 190, 150, 255})
	fillRect(img, image.Rect(cx-40, y0+60, cx+40, y0+160), color.RGBA{180, 40, 160, 255})
	fillRect(img, image.Rect(cx-55, y0+65, cx-40, y0+150), color.RGBA{235, 190, 150, 255})
	fillRect(img, image.Rect(cx+40, y0+65, cx+55, y0+150), color.RGBA{235, 190, 150, 255})
	fillRect(img, image.Rect(cx-35, y0+160, cx-5, y1), color.RGBA{40, 50, 90, 255})
	fillRect(img, image.Rect(cx+5, y0+160, cx+35, y1), color.RGBA{40, 50, 90, 255})
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func fillEllipse(img *image.RGBA, cx, cy, rx, ry float64, c color.RGBA) {
	bounds := image.Rect(int(cx-rx), int(cy-ry), int(cx+rx)+1, int(cy+ry)+1).Intersect(img.Bounds())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				img.SetRGBA(x, y, c)
			}
		}
	}
}
