// Package icon renders the application icon: a blue rounded-square badge crossed by a
// white waveform, finished with a faint white border.
package icon

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
)

const dirPerm = 0o755

var (
	// BackgroundColor fills the badge (#1A76FF).
	BackgroundColor = color.NRGBA{R: 26, G: 118, B: 255, A: 255}
	// WaveformColor strokes the waveform.
	WaveformColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	// OutlineColor strokes the badge border.
	OutlineColor = color.NRGBA{R: 255, G: 255, B: 255, A: 72}
)

// ErrInvalidSize is returned when the requested edge length is not positive.
var ErrInvalidSize = errors.New("icon size must be positive")

// Generate draws an icon of size×size pixels and writes it as a PNG to out.
func Generate(size int, out string) error {
	img, err := Draw(size)
	if err != nil {
		return fmt.Errorf("drawing icon: %w", err)
	}
	if err := Save(img, out); err != nil {
		return fmt.Errorf("saving icon: %w", err)
	}
	return nil
}

// Draw renders the icon onto a new transparent canvas of size×size pixels.
func Draw(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	layout := NewLayout(size)
	slog.Debug("drawing icon", "layout", layout)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := newCanvas(img)

	box := rectOf(layout.Box())
	radius := float64(layout.Radius)
	c.fillRoundRect(BackgroundColor, box, radius)
	c.strokePolyline(WaveformColor, layout.Waveform(), float64(layout.WaveWidth))
	c.replaceRoundRectBorder(OutlineColor, box, radius, float64(layout.OutlineWidth))
	return img, nil
}

// translucent makes image/png keep the alpha channel even when every pixel is opaque.
type translucent struct {
	image.Image
}

func (translucent) Opaque() bool {
	return false
}

// Save encodes img as an RGBA PNG at out, creating missing parent directories and
// replacing any existing file.
func Save(img image.Image, out string) error {
	if err := os.MkdirAll(filepath.Dir(out), dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating PNG file: %w", err)
	}

	var result *multierror.Error
	if err := png.Encode(file, translucent{img}); err != nil {
		result = multierror.Append(result, fmt.Errorf("encoding PNG: %w", err))
	}
	if err := file.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("closing PNG file: %w", err))
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}
	slog.Info("wrote icon", "path", out, "bounds", img.Bounds().String())
	return nil
}
