// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the widgets layouts are installed on. A
// Box is a plain rectangle with size bounds that may carry a layout for
// its children; a Host owns the root Box and the queue every layout
// pass of the tree goes through.
package widget
