// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"fmt"
	"image"

	"boxlayout.org/layout"
	"boxlayout.org/unit"
	"boxlayout.org/widget"
)

func ExampleHost() {
	header := widget.NewBox("header")
	header.SetFixedSize(image.Point{X: 100, Y: 20})
	body := widget.NewBox("body")
	body.SetSizePolicy(layout.Policies(layout.Expanding))

	l, err := layout.Parse("vbox(_, _)", unit.Metric{}, layout.Style{}, header, body)
	if err != nil {
		panic(err)
	}
	root := widget.NewBox("root")
	root.SetLayout(l)

	h := widget.NewHost(root)
	h.Resize(image.Point{X: 200, Y: 120})
	fmt.Println(header.Bounds(), body.Bounds())

	// Output:
	// (0,0)-(100,20) (0,20)-(200,120)
}
