// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// PresentModes are the presentation policies a [Renderer] can ask for.
// The Auto modes pick the best mode the surface supports; the others
// name a WebGPU mode and fall back on Fifo, which every surface supports.
type PresentModes int32

const (
	// AutoNoVsync presents without waiting for vertical blank when
	// possible: Immediate, then Mailbox, then Fifo.
	AutoNoVsync PresentModes = iota

	// AutoVsync waits for vertical blank: FifoRelaxed, then Fifo.
	AutoVsync

	// Immediate presents as soon as possible, possibly tearing.
	Immediate

	// Mailbox replaces the queued frame, without tearing.
	Mailbox

	// Fifo queues frames for vertical blank.
	Fifo
)

var presentModeNames = []string{"auto-no-vsync", "auto-vsync", "immediate", "mailbox", "fifo"}

func (pm PresentModes) String() string {
	if pm < 0 || int(pm) >= len(presentModeNames) {
		return fmt.Sprintf("PresentModes(%d)", int32(pm))
	}
	return presentModeNames[pm]
}

// ParsePresentMode returns the PresentModes with the given name,
// as returned by [PresentModes.String]. Case is ignored.
func ParsePresentMode(name string) (PresentModes, error) {
	i := slices.Index(presentModeNames, strings.ToLower(name))
	if i < 0 {
		return AutoNoVsync, fmt.Errorf("gpu: unknown present mode %q (want one of %s)", name, strings.Join(presentModeNames, ", "))
	}
	return PresentModes(i), nil
}

// candidates returns the WebGPU modes to try, in order.
func (pm PresentModes) candidates() []wgpu.PresentMode {
	switch pm {
	case AutoVsync:
		return []wgpu.PresentMode{wgpu.PresentModeFifoRelaxed, wgpu.PresentModeFifo}
	case Immediate:
		return []wgpu.PresentMode{wgpu.PresentModeImmediate}
	case Mailbox:
		return []wgpu.PresentMode{wgpu.PresentModeMailbox}
	case Fifo:
		return []wgpu.PresentMode{wgpu.PresentModeFifo}
	}
	return []wgpu.PresentMode{wgpu.PresentModeImmediate, wgpu.PresentModeMailbox, wgpu.PresentModeFifo}
}

// Select returns the first candidate mode of pm that is in supported,
// or Fifo if none is.
func (pm PresentModes) Select(supported []wgpu.PresentMode) wgpu.PresentMode {
	for _, m := range pm.candidates() {
		if slices.Contains(supported, m) {
			return m
		}
	}
	return wgpu.PresentModeFifo
}
