// Package raster renders game frames to images with gg, for screenshots,
// headless snapshots and the preview server.
package raster

import (
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Canvas is a core.Surface backed by a gg context. One world unit maps to
// scale pixels.
type Canvas struct {
	dc     *gg.Context
	scale  float64
	dx, dy float64
}

// NewCanvas creates a black canvas for a worldW x worldH world.
func NewCanvas(worldW, worldH, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	w := max(1, int(worldW*scale+0.5))
	h := max(1, int(worldH*scale+0.5))

	dc := gg.NewContext(w, h)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	return &Canvas{dc: dc, scale: scale}
}

// SetOffset implements core.Surface.
func (c *Canvas) SetOffset(dx, dy float64) {
	c.dx, c.dy = dx, dy
}

// FillRect implements core.Surface.
func (c *Canvas) FillRect(x, y, w, h float64, col core.Color, alpha float64) {
	if alpha <= 0 || w <= 0 || h <= 0 {
		return
	}
	rgb := col.RGB()
	c.dc.SetRGBA255(int(rgb.R), int(rgb.G), int(rgb.B), int(core.ClampF(alpha, 0, 1)*255+0.5))
	c.dc.DrawRectangle((x+c.dx)*c.scale, (y+c.dy)*c.scale, w*c.scale, h*c.scale)
	c.dc.Fill()
}

// Image returns the rendered frame.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the frame as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// Drawable is anything that can draw itself at a known world size.
type Drawable interface {
	Render(dst core.Surface)
	Viewport() (w, h float64)
}

// Frame renders d onto a fresh canvas.
func Frame(d Drawable, scale float64) *Canvas {
	w, h := d.Viewport()
	c := NewCanvas(w, h, scale)
	d.Render(c)
	return c
}

// Fit scales img up or down to fit within width x height, keeping the
// aspect ratio. Nearest-neighbor keeps the blocky look.
func Fit(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	if width <= 0 || height <= 0 || b.Dx() == 0 || b.Dy() == 0 {
		return img
	}
	s := math.Min(float64(width)/float64(b.Dx()), float64(height)/float64(b.Dy()))
	w := max(1, int(float64(b.Dx())*s))
	h := max(1, int(float64(b.Dy())*s))
	return imaging.Resize(img, w, h, imaging.NearestNeighbor)
}

// SavePNG writes img to path, creating parent directories.
func SavePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("raster: cannot create directory: %w", err)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("raster: cannot save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes any image as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("raster: cannot encode png: %w", err)
	}
	return nil
}
