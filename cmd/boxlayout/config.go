// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"os"

	"gopkg.in/yaml.v3"

	"boxlayout.org/layout"
	"boxlayout.org/unit"
)

// styleConfig is the YAML form of a layout style. Lengths are unit
// values such as 8dp or 4px.
type styleConfig struct {
	Margins string `yaml:"margins"`
	Spacing string `yaml:"spacing"`
	Align   string `yaml:"align"`
}

// loadStyle returns the default style for m, overridden by the YAML
// file at path if path is not empty.
func loadStyle(path string, m unit.Metric) (layout.Style, error) {
	st := layout.DefaultStyle(m)
	if path == "" {
		return st, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return layout.Style{}, err
	}
	return parseStyle(data, st, m)
}

func parseStyle(data []byte, st layout.Style, m unit.Metric) (layout.Style, error) {
	var cfg styleConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return layout.Style{}, fmt.Errorf("style: %w", err)
	}
	if cfg.Margins != "" {
		v, err := unit.Parse(cfg.Margins)
		if err != nil {
			return layout.Style{}, fmt.Errorf("style: margins: %w", err)
		}
		st.Margins = layout.UniformMargins(m.Px(v))
	}
	if cfg.Spacing != "" {
		v, err := unit.Parse(cfg.Spacing)
		if err != nil {
			return layout.Style{}, fmt.Errorf("style: spacing: %w", err)
		}
		px := m.Px(v)
		st.Spacing = image.Point{X: px, Y: px}
	}
	switch cfg.Align {
	case "":
	case "start":
		st.Align = layout.Start
	case "middle":
		st.Align = layout.Middle
	case "end":
		st.Align = layout.End
	default:
		return layout.Style{}, fmt.Errorf("style: invalid align %q", cfg.Align)
	}
	return st, nil
}
