// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// FrameStatus is why a surface did not yield a frame.
type FrameStatus int32

const (
	// FrameUnknown is any failure not listed below. It is transient.
	FrameUnknown FrameStatus = iota

	// FrameTimeout means no frame became available in time.
	FrameTimeout

	// FrameOutdated means the surface no longer matches the window,
	// typically because a resize raced with rendering.
	FrameOutdated

	// FrameLost means the surface was lost and must be reconfigured.
	FrameLost

	// FrameOutOfMemory means the device ran out of memory. It is fatal.
	FrameOutOfMemory

	// FrameDeviceLost means the logical device is gone. It is fatal.
	FrameDeviceLost
)

var frameStatusNames = []string{"Unknown", "Timeout", "Outdated", "Lost", "OutOfMemory", "DeviceLost"}

func (fs FrameStatus) String() string {
	if fs < 0 || int(fs) >= len(frameStatusNames) {
		return fmt.Sprintf("FrameStatus(%d)", int32(fs))
	}
	return frameStatusNames[fs]
}

// Fatal returns true for the statuses no frame skipping can recover from.
func (fs FrameStatus) Fatal() bool {
	return fs == FrameOutOfMemory || fs == FrameDeviceLost
}

// FrameError is a failure to acquire a frame from a surface.
type FrameError struct {
	Status FrameStatus
	Err    error
}

func (e *FrameError) Error() string {
	if e.Err == nil {
		return "gpu: acquire frame: " + e.Status.String()
	}
	return fmt.Sprintf("gpu: acquire frame: %s: %v", e.Status, e.Err)
}

func (e *FrameError) Unwrap() error { return e.Err }

// IsFatal returns true if err is a [FrameError] with a fatal status.
func IsFatal(err error) bool {
	var fe *FrameError
	if errors.As(err, &fe) {
		return fe.Status.Fatal()
	}
	return false
}

// frameStatusKeywords are matched in order against binding errors,
// which only carry the native status in their message.
var frameStatusKeywords = []struct {
	keyword string
	status  FrameStatus
}{
	{"outofmemory", FrameOutOfMemory},
	{"devicelost", FrameDeviceLost},
	{"timeout", FrameTimeout},
	{"outdated", FrameOutdated},
	{"lost", FrameLost},
}

// NewFrameError classifies an error returned when acquiring a surface
// texture. Errors that already are a [FrameError] are returned as is.
func NewFrameError(err error) *FrameError {
	var fe *FrameError
	if errors.As(err, &fe) {
		return fe
	}
	var we *wgpu.Error
	if errors.As(err, &we) && we.Type == wgpu.ErrorTypeOutOfMemory {
		return &FrameError{Status: FrameOutOfMemory, Err: err}
	}
	msg := ""
	if err != nil {
		msg = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(err.Error()))
	}
	for _, kw := range frameStatusKeywords {
		if strings.Contains(msg, kw.keyword) {
			return &FrameError{Status: kw.status, Err: err}
		}
	}
	return &FrameError{Status: FrameUnknown, Err: err}
}
