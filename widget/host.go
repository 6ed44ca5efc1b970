// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"k8s.io/klog/v2"

	"boxlayout.org/layout"
)

// Host is the root of a widget tree. Every layout pass in the tree
// runs through the host queue, so a pass triggered while another runs
// is deferred until it completes.
type Host struct {
	root  *Box
	queue layout.Queue
}

// NewHost makes root the root of a new tree.
func NewHost(root *Box) *Host {
	h := &Host{root: root}
	root.host = h
	return h
}

// Root returns the root box.
func (h *Host) Root() *Box {
	return h.root
}

// Queue returns the layout queue of the tree.
func (h *Host) Queue() *layout.Queue {
	return &h.queue
}

// Resize lays out the tree for a root of the given size.
func (h *Host) Resize(size image.Point) {
	klog.V(3).InfoS("Resizing host", "root", h.root.Name, "size", size)
	h.root.Place(image.Rectangle{Max: size})
}

func (h *Host) relayout() {
	h.root.dirty = true
	h.root.Place(h.root.bounds)
}
