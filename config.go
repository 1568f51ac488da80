// config.go - layer config files and environment over defaults.
//
// To the extent possible under law, Ivan Markin waived all copyright
// and related or neighboring rights to this module of qrize, using the creative
// commons "cc0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package qrize

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// EnvPrefix starts the names of environment overrides.
const EnvPrefix = "QRIZE_"

// LoadFile overlays the YAML file at path onto p. Keys absent from
// the file leave p untouched.
func (p *Parameters) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return fmt.Errorf("unable to parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays QRIZE_* variables onto p. lookup is usually
// os.LookupEnv.
func (p *Parameters) ApplyEnv(lookup func(string) (string, bool)) error {
	str := map[string]*string{
		"OUTPUT":     &p.Output,
		"FILL_COLOR": &p.FillColor,
		"BACK_COLOR": &p.BackColor,
	}
	for k, dst := range str {
		if v, ok := lookup(EnvPrefix + k); ok && v != "" {
			*dst = v
		}
	}
	ints := map[string]*int{
		"BOX_SIZE": &p.BoxSize,
		"BORDER":   &p.Border,
	}
	for k, dst := range ints {
		v, ok := lookup(EnvPrefix + k)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, k, err)
		}
		*dst = n
	}
	if v, ok := lookup(EnvPrefix + "ERROR_CORRECTION"); ok && v != "" {
		if err := p.Level.Set(v); err != nil {
			return fmt.Errorf("%sERROR_CORRECTION: %w", EnvPrefix, err)
		}
	}
	return nil
}
