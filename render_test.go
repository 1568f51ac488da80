// render_test.go - test QR rendering.
//
// To the extent possible under law, Ivan Markin waived all copyright
// and related or neighboring rights to this module of qrize, using the creative
// commons "cc0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package qrize

import (
	"errors"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	"rsc.io/qr"
)

func TestEncodeGeometry(t *testing.T) {
	is := is.New(t)
	p := DefaultParameters()
	p.BoxSize = 3
	p.Border = 2
	p.FillColor = "#ff0000"
	p.BackColor = "yellow"

	code, err := qr.Encode("hello", p.Level.QR())
	is.NoErr(err)
	img, err := Encode("hello", p)
	is.NoErr(err)

	side := (code.Size + 2*p.Border) * p.BoxSize
	is.Equal(img.Bounds(), image.Rect(0, 0, side, side))

	red := color.RGBA{R: 0xff, A: 0xff}
	yellow := color.RGBA{R: 0xff, G: 0xff, A: 0xff}
	is.Equal(img.At(0, 0), yellow)
	// Top-left finder pattern corner is always dark.
	o := p.Border * p.BoxSize
	is.Equal(img.At(o, o), red)
	is.Equal(img.At(o+p.BoxSize-1, o+p.BoxSize-1), red)
	is.Equal(img.At(side-1, side-1), yellow)

	for y := 0; y < code.Size; y++ {
		for x := 0; x < code.Size; x++ {
			want := yellow
			if code.Black(x, y) {
				want = red
			}
			is.Equal(img.At((x+p.Border)*p.BoxSize+1, (y+p.Border)*p.BoxSize+2), want)
		}
	}
}

func TestEncodeNoBorder(t *testing.T) {
	is := is.New(t)
	p := DefaultParameters()
	p.Border = 0
	p.BoxSize = 1
	code, err := qr.Encode("x", p.Level.QR())
	is.NoErr(err)
	img, err := Encode("x", p)
	is.NoErr(err)
	is.Equal(img.Bounds().Dx(), code.Size)
	is.Equal(img.At(0, 0), color.RGBA{A: 0xff})
}

func TestEncodeInvalidParameters(t *testing.T) {
	is := is.New(t)
	p := DefaultParameters()
	p.BoxSize = 0
	_, err := Encode("x", p)
	is.True(err != nil)

	p = DefaultParameters()
	p.Border = -1
	_, err = Encode("x", p)
	is.True(err != nil)

	p = DefaultParameters()
	p.FillColor = "notacolor"
	_, err = Encode("x", p)
	is.True(errors.Is(err, ErrUnknownColor))

	p = DefaultParameters()
	p.BackColor = "#12"
	_, err = Encode("x", p)
	is.True(errors.Is(err, ErrUnknownColor))
}

func TestEncodeHugeImage(t *testing.T) {
	is := is.New(t)
	p := DefaultParameters()
	p.BoxSize = 1 << 40
	_, err := Encode("x", p)
	is.True(err != nil)

	p = DefaultParameters()
	p.Border = 1 << 62
	_, err = Encode("x", p)
	is.True(err != nil)

	p = DefaultParameters()
	p.BoxSize = MaxSide / 21
	_, err = Encode("x", p)
	is.True(err != nil)

	p.Border = 0
	p.BoxSize = 1
	_, err = Encode("x", p)
	is.NoErr(err)
}

func TestEncodeTooLong(t *testing.T) {
	is := is.New(t)
	p := DefaultParameters()
	p.Level = H
	_, err := Encode(strings.Repeat("x", 5000), p)
	is.True(err != nil)
}

func TestRenderFormats(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	for _, ext := range []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".TIFF"} {
		p := DefaultParameters()
		p.BoxSize = 2
		p.Output = filepath.Join(dir, "qr"+ext)
		is.NoErr(Render("https://example.com", p))

		f, err := os.Open(p.Output)
		is.NoErr(err)
		img, _, err := image.Decode(f)
		f.Close()
		is.NoErr(err)
		is.Equal(img.Bounds().Dx(), img.Bounds().Dy())
		is.True(img.Bounds().Dx() > 0)
	}
	entries, err := os.ReadDir(dir)
	is.NoErr(err)
	is.Equal(len(entries), 7)
}

func TestRenderUnsupported(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	p := DefaultParameters()
	p.Output = filepath.Join(dir, "qr.txt")
	err := Render("data", p)
	is.True(errors.Is(err, ErrUnsupportedFormat))
	_, err = os.Stat(p.Output)
	is.True(os.IsNotExist(err))
}

func TestRenderFailureLeavesNoFile(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	p := DefaultParameters()
	p.Level = H
	p.Output = filepath.Join(dir, "qr.png")
	is.True(Render(strings.Repeat("x", 5000), p) != nil)
	entries, err := os.ReadDir(dir)
	is.NoErr(err)
	is.Equal(len(entries), 0)
}
