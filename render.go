// render.go - paint QR codes into image files.
//
// To the extent possible under law, Ivan Markin waived all copyright
// and related or neighboring rights to this module of qrize, using the creative
// commons "cc0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package qrize

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"rsc.io/qr"
)

const (
	backIndex = 0
	fillIndex = 1
)

// MaxSide caps the image side in pixels.
const MaxSide = 1 << 15

type encodeFunc func(io.Writer, image.Image) error

var encoders = map[string]encodeFunc{
	".png":  png.Encode,
	".jpg":  encodeJPEG,
	".jpeg": encodeJPEG,
	".gif": func(w io.Writer, m image.Image) error {
		return gif.Encode(w, m, nil)
	},
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeJPEG(w io.Writer, m image.Image) error {
	return jpeg.Encode(w, m, &jpeg.Options{Quality: 95})
}

func encodeTIFF(w io.Writer, m image.Image) error {
	return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
}

// Encode builds the QR symbol for data and paints it with p's
// geometry and colors.
func Encode(data string, p Parameters) (*image.Paletted, error) {
	if p.BoxSize < 1 {
		return nil, fmt.Errorf("invalid box size %d: must be at least 1", p.BoxSize)
	}
	if p.Border < 0 {
		return nil, fmt.Errorf("invalid border %d: must not be negative", p.Border)
	}
	fill, err := ParseColor(p.FillColor)
	if err != nil {
		return nil, fmt.Errorf("fill color: %w", err)
	}
	back, err := ParseColor(p.BackColor)
	if err != nil {
		return nil, fmt.Errorf("back color: %w", err)
	}
	code, err := qr.Encode(data, p.Level.QR())
	if err != nil {
		return nil, err
	}

	if p.Border > MaxSide || p.BoxSize > MaxSide {
		return nil, fmt.Errorf("image too large: box size %d, border %d", p.BoxSize, p.Border)
	}
	modules := code.Size + 2*p.Border
	if modules > MaxSide/p.BoxSize {
		return nil, fmt.Errorf("image too large: %d modules of %d pixels exceed %d pixels per side",
			modules, p.BoxSize, MaxSide)
	}
	dim := modules * p.BoxSize
	img := image.NewPaletted(image.Rect(0, 0, dim, dim), color.Palette{
		backIndex: back,
		fillIndex: fill,
	})
	// Pix is zeroed, i.e. already background.
	for y := 0; y < code.Size; y++ {
		for x := 0; x < code.Size; x++ {
			if !code.Black(x, y) {
				continue
			}
			x0 := (x + p.Border) * p.BoxSize
			y0 := (y + p.Border) * p.BoxSize
			for dy := 0; dy < p.BoxSize; dy++ {
				row := img.PixOffset(x0, y0+dy)
				for dx := 0; dx < p.BoxSize; dx++ {
					img.Pix[row+dx] = fillIndex
				}
			}
		}
	}
	return img, nil
}

// Render encodes data and saves the image at p.Output. The format is
// picked by the file extension.
func Render(data string, p Parameters) error {
	ext := strings.ToLower(filepath.Ext(p.Output))
	enc, ok := encoders[ext]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	img, err := Encode(data, p)
	if err != nil {
		return err
	}
	return writeImage(p.Output, img, enc)
}

// writeImage writes into a temporary sibling of path and renames it
// into place, so a failed encode never leaves a truncated image behind.
func writeImage(path string, img image.Image, enc encodeFunc) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := enc(f, img); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
