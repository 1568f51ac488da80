// color.go - parse color names and hex triplets.
//
// To the extent possible under law, Ivan Markin waived all copyright
// and related or neighboring rights to this module of qrize, using the creative
// commons "cc0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package qrize

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor accepts SVG 1.1 color names ("black", "DarkRed") and
// hex triplets in #rgb or #rrggbb form.
func ParseColor(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") {
		c, err := colorful.Hex(name)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: %q: %v", ErrUnknownColor, s, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}
