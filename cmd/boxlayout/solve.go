// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"boxlayout.org/layout"
	"boxlayout.org/unit"
	"boxlayout.org/widget"
)

type solveOptions struct {
	size   string
	items  []string
	config string
	dp     float32
	plain  bool
}

const solveExample = `  boxlayout solve 'vbox(_, space, _)' --size 200x100 \
      --item min=50x20 --item min=50x20,policy=expanding
  boxlayout solve 'inset(8dp, grid(2, _, _, _, _))' --config style.yaml`

func newSolveCmd() *cobra.Command {
	var o solveOptions
	cmd := &cobra.Command{
		Use:     "solve FORMAT",
		Short:   "Lay out the widgets of FORMAT and print their rectangles",
		Example: solveExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.OutOrStdout(), args[0], o)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.size, "size", "640x480", "size of the root, WxH in pixels")
	f.StringArrayVar(&o.items, "item", nil, "geometry of the next _ widget: min=WxH,max=WxH,policy=P,hpolicy=P,vpolicy=P,weight=N,margin=N,hidden")
	f.StringVar(&o.config, "config", "", "YAML file with the layout style")
	f.Float32Var(&o.dp, "dp", 1, "pixels per dp")
	f.BoolVar(&o.plain, "plain", false, "print tab separated values instead of a table")
	return cmd
}

func runSolve(w io.Writer, format string, o solveOptions) error {
	m := unit.Metric{PxPerDp: o.dp, PxPerSp: o.dp}
	st, err := loadStyle(o.config, m)
	if err != nil {
		return err
	}
	size, err := parseSize(o.size)
	if err != nil {
		return fmt.Errorf("--size: %w", err)
	}
	n := strings.Count(format, "_")
	if len(o.items) > n {
		return fmt.Errorf("%d --item flags for %d widgets", len(o.items), n)
	}
	boxes := make([]*widget.Box, n)
	widgets := make([]layout.Widget, n)
	for i := range boxes {
		b := widget.NewBox(fmt.Sprintf("w%d", i))
		if i < len(o.items) {
			if err := applyItem(b, o.items[i]); err != nil {
				return fmt.Errorf("--item %q: %w", o.items[i], err)
			}
		}
		boxes[i], widgets[i] = b, b
	}
	l, err := layout.Parse(format, m, st, widgets...)
	if err != nil {
		return err
	}
	root := widget.NewBox("root")
	root.SetLayout(l)
	widget.NewHost(root).Resize(size)
	return printBoxes(w, boxes, o.plain)
}

func printBoxes(w io.Writer, boxes []*widget.Box, plain bool) error {
	rows := make([][]string, len(boxes))
	for i, b := range boxes {
		r := b.Bounds()
		rows[i] = []string{
			b.Name,
			strconv.Itoa(r.Min.X),
			strconv.Itoa(r.Min.Y),
			strconv.Itoa(r.Dx()),
			strconv.Itoa(r.Dy()),
			strconv.FormatBool(b.Visible()),
		}
	}
	headers := []string{"WIDGET", "X", "Y", "W", "H", "VISIBLE"}
	if plain {
		if _, err := fmt.Fprintln(w, strings.Join(headers, "\t")); err != nil {
			return err
		}
		for _, r := range rows {
			if _, err := fmt.Fprintln(w, strings.Join(r, "\t")); err != nil {
				return err
			}
		}
		return nil
	}
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// applyItem configures b from a comma separated list of key=value
// settings.
func applyItem(b *widget.Box, settings string) error {
	for _, kv := range strings.Split(settings, ",") {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}
		key, val, _ := strings.Cut(kv, "=")
		switch key {
		case "min":
			sz, err := parseSize(val)
			if err != nil {
				return err
			}
			b.SetMinSize(sz)
		case "max":
			sz, err := parseSize(val)
			if err != nil {
				return err
			}
			b.SetMaxSize(sz)
		case "fixed":
			sz, err := parseSize(val)
			if err != nil {
				return err
			}
			b.SetFixedSize(sz)
		case "policy", "hpolicy", "vpolicy":
			p, err := parsePolicy(val)
			if err != nil {
				return err
			}
			sp := b.SizePolicy()
			if key != "vpolicy" {
				sp.Horizontal = p
			}
			if key != "hpolicy" {
				sp.Vertical = p
			}
			b.SetSizePolicy(sp)
		case "weight":
			v, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid weight %q", val)
			}
			b.SetWeight(layout.Weight{X: v, Y: v})
		case "margin":
			v, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid margin %q", val)
			}
			b.SetMargins(layout.UniformMargins(v))
		case "hidden":
			b.SetVisible(false)
		default:
			return fmt.Errorf("unknown setting %q", key)
		}
	}
	return nil
}

// parseSize parses WxH, where either component may be inf.
func parseSize(s string) (image.Point, error) {
	if s == "inf" {
		return layout.Unbounded, nil
	}
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return image.Point{}, fmt.Errorf("invalid size %q", s)
	}
	w, err := parseLength(ws)
	if err != nil {
		return image.Point{}, err
	}
	h, err := parseLength(hs)
	if err != nil {
		return image.Point{}, err
	}
	return image.Point{X: w, Y: h}, nil
}

func parseLength(s string) (int, error) {
	if s == "inf" {
		return layout.Inf, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid length %q", s)
	}
	return v, nil
}

func parsePolicy(s string) (layout.Policy, error) {
	switch s {
	case "fixed":
		return layout.Fixed, nil
	case "minimum":
		return layout.Minimum, nil
	case "maximum":
		return layout.Maximum, nil
	case "expanding":
		return layout.Expanding, nil
	case "manual":
		return layout.Manual, nil
	default:
		return 0, fmt.Errorf("invalid policy %q", s)
	}
}
