// qrize.go - turn text into QR code images.
//
// To the extent possible under law, Ivan Markin waived all copyright
// and related or neighboring rights to this module of qrize, using the creative
// commons "cc0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package qrize

import (
	"errors"
	"fmt"
)

// Defaults used by DefaultParameters and the CLI.
const (
	DefaultOutput    = "qrcode.png"
	DefaultBoxSize   = 10
	DefaultBorder    = 4
	DefaultFillColor = "black"
	DefaultBackColor = "white"
	DefaultLevel     = M
)

// Errors callers can match with errors.Is.
var (
	ErrNoData            = errors.New("no data provided")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrUnknownColor      = errors.New("unknown color")
	ErrInvalidLevel      = errors.New("invalid error correction level")
)

// Parameters describe how a payload is turned into an image.
type Parameters struct {
	Output    string `yaml:"output"`
	BoxSize   int    `yaml:"box_size"`
	Border    int    `yaml:"border"`
	FillColor string `yaml:"fill_color"`
	BackColor string `yaml:"back_color"`
	Level     Level  `yaml:"error_correction"`
}

// DefaultParameters returns parameters matching the CLI defaults.
func DefaultParameters() Parameters {
	return Parameters{
		Output:    DefaultOutput,
		BoxSize:   DefaultBoxSize,
		Border:    DefaultBorder,
		FillColor: DefaultFillColor,
		BackColor: DefaultBackColor,
		Level:     DefaultLevel,
	}
}

// Qrize normalizes p.Output, renders data into it and returns
// the path the image was saved to.
func Qrize(data string, p Parameters) (string, error) {
	if data == "" {
		return "", ErrNoData
	}
	output, err := NormalizeOutput(p.Output)
	if err != nil {
		return "", err
	}
	p.Output = output
	if err := Render(data, p); err != nil {
		return "", fmt.Errorf("unable to render %s: %w", output, err)
	}
	return output, nil
}
