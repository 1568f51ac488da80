// level.go - error correction levels.
//
// To the extent possible under law, Ivan Markin waived all copyright
// and related or neighboring rights to this module of qrize, using the creative
// commons "cc0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package qrize

import (
	"fmt"

	"rsc.io/qr"
)

// Level is a QR error correction level. Higher levels are more
// redundant and hold less data.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

var levelNames = [...]string{L: "L", M: "M", Q: "Q", H: "H"}

// ParseLevel parses one of L, M, Q or H.
func ParseLevel(s string) (Level, error) {
	for l, name := range levelNames {
		if s == name {
			return Level(l), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (choose from L, M, Q, H)", ErrInvalidLevel, s)
}

func (l Level) String() string {
	if l < L || l > H {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// Set implements flag.Value.
func (l *Level) Set(s string) error {
	v, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// UnmarshalText lets config files and environment carry levels by name.
func (l *Level) UnmarshalText(b []byte) error {
	return l.Set(string(b))
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// QR returns the matching rsc.io/qr level.
func (l Level) QR() qr.Level {
	return qr.Level(l)
}
