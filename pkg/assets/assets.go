// Package assets supplies the three sprite sheets the renderer blits from.
// Sheets are read from image files when present and painted procedurally
// otherwise.
package assets

import (
	"errors"
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/golangdaddy/roadrash/pkg/log"
	"github.com/golangdaddy/roadrash/pkg/road"
)

// Sheets maps each sheet id to its decoded image.
type Sheets map[road.Sheet]*ebiten.Image

var allSheets = []road.Sheet{road.SheetBackground, road.SheetBike, road.SheetObstacles}

var extensions = []string{".png", ".jpg", ".jpeg"}

// Find returns the image file for sheet inside dir, named after the sheet
// (background.png, bike.png, obstacles.png).
func Find(dir string, sheet road.Sheet) (string, bool) {
	if dir == "" {
		return "", false
	}
	for _, ext := range extensions {
		p := filepath.Join(dir, sheet.String()+ext)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

// Load reads every sheet from dir, painting the ones that have no file.
// A file that exists but does not decode is an error.
func Load(dir string, seed int64) (Sheets, error) {
	if dir != "" {
		if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
			log.Warn("asset directory not found, painting sheets", zap.String("dir", dir))
			dir = ""
		}
	}

	painter := NewPainter(seed)
	sheets := make(Sheets, len(allSheets))
	for _, sheet := range allSheets {
		if p, ok := Find(dir, sheet); ok {
			img, _, err := ebitenutil.NewImageFromFile(p)
			if err != nil {
				return nil, fmt.Errorf("load %s sheet: %w", sheet, err)
			}
			if err := checkFits(sheet, img.Bounds().Dx(), img.Bounds().Dy()); err != nil {
				return nil, fmt.Errorf("load %s sheet: %w", sheet, err)
			}
			sheets[sheet] = img
			log.Info("sheet loaded", zap.Stringer("sheet", sheet), zap.String("source", p))
			continue
		}
		if dir != "" {
			log.Warn("sheet not found, painting it", zap.Stringer("sheet", sheet), zap.String("dir", dir))
		}
		sheets[sheet] = ebiten.NewImageFromImage(painter.Paint(sheet))
		log.Info("sheet loaded", zap.Stringer("sheet", sheet), zap.String("source", "procedural"))
	}
	return sheets, nil
}

// checkFits rejects a sheet too small for the sprite rectangles cut from it.
func checkFits(sheet road.Sheet, w, h int) error {
	var sources []road.SpriteSource
	switch sheet {
	case road.SheetBike:
		sources = road.BikeSprites
	case road.SheetObstacles:
		sources = road.ObstacleSprites
	}
	for _, s := range sources {
		if s.Rect.Max.X > w || s.Rect.Max.Y > h {
			return fmt.Errorf("%dx%d image does not contain sprite %s at %v", w, h, s.Name, s.Rect)
		}
	}
	return nil
}
