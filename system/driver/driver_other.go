// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(!offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd))

package driver

import (
	"fmt"
	"runtime"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/hellotri/system"
)

// ErrUnsupported is returned by [Run] on platforms without a driver.
var ErrUnsupported = errors.New("driver: no windowing driver for this platform")

func Run(h system.Handler) error {
	return fmt.Errorf("%w: %s/%s", ErrUnsupported, runtime.GOOS, runtime.GOARCH)
}
