// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "image"

// Monitor describes a physical display.
type Monitor struct {

	// Name is the platform name of the monitor.
	Name string

	// Position is the top-left corner of the monitor in the virtual
	// desktop, in screen coordinates.
	Position image.Point

	// Size is the resolution of the monitor's current video mode.
	Size image.Point
}

// Position is a window position in screen coordinates. On most
// platforms these are physical pixels; on macOS they are points.
type Position struct {
	X, Y float64
}

// CenterPosition returns the outer position that centers a window of
// the given outer size on the monitor. A window larger than the monitor
// in either dimension is placed at the monitor origin in that dimension.
func CenterPosition(mon *Monitor, outer image.Point) Position {
	return Position{
		X: float64(saturatingSub(mon.Size.X, outer.X)/2) + float64(mon.Position.X),
		Y: float64(saturatingSub(mon.Size.Y, outer.Y)/2) + float64(mon.Position.Y),
	}
}

// Center moves the window to the center of its current monitor.
// It returns false, leaving the window where it is, if the platform
// does not report a monitor for it.
func Center(w Window) bool {
	mon, ok := w.CurrentMonitor()
	if !ok || mon == nil {
		return false
	}
	w.SetOuterPosition(CenterPosition(mon, w.OuterSize()))
	return true
}

func saturatingSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}
