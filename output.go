// output.go - normalize output paths.
//
// To the extent possible under law, Ivan Markin waived all copyright
// and related or neighboring rights to this module of qrize, using the creative
// commons "cc0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package qrize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Applied by NormalizeOutput.
const (
	DefaultExt = ".png"
	DefaultDir = "generated_png"
)

// EnsureExtension appends ext to name if name has no extension.
// Leading dots of the base name do not start an extension.
func EnsureExtension(name, ext string) string {
	base := strings.TrimLeft(filepath.Base(name), ".")
	if filepath.Ext(base) == "" {
		return name + ext
	}
	return name
}

// NormalizeOutput gives name an extension, places bare file names
// under DefaultDir and makes sure the target directory exists.
func NormalizeOutput(name string) (string, error) {
	output := EnsureExtension(name, DefaultExt)
	dir, _ := filepath.Split(output)
	if dir == "" {
		dir = DefaultDir
		output = filepath.Join(dir, output)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("unable to create output directory: %w", err)
	}
	return output, nil
}
