package dronelbl

// Rendering of label previews.

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// classColors are the box colors, indexed by class id.
var classColors = [NumClasses]color.RGBA{
	{230, 25, 75, 255},
	{60, 180, 75, 255},
	{255, 225, 25, 255},
	{0, 130, 200, 255},
	{245, 130, 48, 255},
	{145, 30, 180, 255},
	{70, 240, 240, 255},
	{240, 50, 230, 255},
	{210, 245, 60, 255},
	{250, 190, 212, 255},
}

// PreviewOptions control RenderPreview.
type PreviewOptions struct {
	LongerSide  int     // Resize so the longer side has this length; zero keeps the size.
	LineWidth   float64 // Box line width in output pixels. Defaults to 2.
	JPEGQuality int     // Defaults to 90.
	HideLabels  bool    // Do not draw class names.
}

// RenderPreview draws the bounding boxes of f onto its image and writes the result to outPath,
// encoded as PNG or JPEG by file extension.
func RenderPreview(f AnnotatedFile, outPath string, opts PreviewOptions) error {
	img, _, err := loadImage(f.FilePath)
	if err != nil {
		return fmt.Errorf("failed to load %q: %w", f.FilePath, err)
	}

	// Work on a copy so that the caller's coordinates are left untouched.
	f.Annotations = append([]Annotation(nil), f.Annotations...)
	if opts.LongerSide > 0 {
		var scaleWidth, scaleHeight float64
		img, scaleWidth, scaleHeight = resizeImage(img, opts.LongerSide, imaging.Box, imaging.Linear)
		f.scaleCoords(scaleWidth, scaleHeight)
	}

	lineWidth := opts.LineWidth
	if lineWidth <= 0 {
		lineWidth = 2
	}
	quality := opts.JPEGQuality
	if quality < 1 || quality > 100 {
		quality = 90
	}

	dc := gg.NewContextForImage(img)
	dc.SetLineWidth(lineWidth)
	for _, a := range f.Annotations {
		c := color.RGBA{255, 255, 255, 255}
		if a.ClassID >= 0 && a.ClassID < NumClasses {
			c = classColors[a.ClassID]
		}
		dc.SetColor(c)
		dc.DrawRectangle(a.Coords[0], a.Coords[1], a.Width(), a.Height())
		dc.Stroke()

		if !opts.HideLabels {
			dc.DrawString(a.Label(), a.Coords[0], a.Coords[1]-2)
		}
	}

	if dir := filepath.Dir(outPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return saveImage(outPath, dc.Image(), quality)
}

// RenderPreviews renders a preview for each file into outDir, using the image file names.
// Failures are logged and skipped. Returns the number of previews written.
func RenderPreviews(data []AnnotatedFile, outDir string, opts PreviewOptions) int {
	count := 0
	for _, f := range data {
		outPath := filepath.Join(outDir, filepath.Base(f.FilePath))
		if err := RenderPreview(f, outPath, opts); err != nil {
			log.Warnf("Failed to render preview for %q: %v", f.FilePath, err)
			continue
		}
		count++
	}
	return count
}
