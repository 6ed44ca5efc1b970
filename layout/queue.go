// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"k8s.io/klog/v2"
)

// Queue serializes layout passes. A request made while a pass is
// running, typically by a widget resized during placement, is deferred
// until the running pass and every request queued before it complete.
// The zero value is ready to use.
type Queue struct {
	running bool
	pending []request
}

type request struct {
	layout Layout
	rect   image.Rectangle
}

// Request lays out l within r, or queues the pass if one is running.
// A layout queued more than once is laid out once, within the most
// recently requested rectangle.
func (q *Queue) Request(l Layout, r image.Rectangle) {
	q.enqueue(l, r)
	if q.running {
		klog.V(3).InfoS("Deferred layout pass", "rect", r, "pending", len(q.pending))
		return
	}
	q.running = true
	defer func() { q.running = false }()
	for len(q.pending) > 0 {
		req := q.pending[0]
		q.pending = append(q.pending[:0], q.pending[1:]...)
		req.layout.LayoutItems(req.rect.Min, req.rect.Size())
	}
}

func (q *Queue) enqueue(l Layout, r image.Rectangle) {
	for i := range q.pending {
		if q.pending[i].layout == l {
			q.pending[i].rect = r
			return
		}
	}
	q.pending = append(q.pending, request{layout: l, rect: r})
}

// Running reports whether a layout pass is in progress.
func (q *Queue) Running() bool {
	return q.running
}

// Pending returns the number of deferred passes.
func (q *Queue) Pending() int {
	return len(q.pending)
}
