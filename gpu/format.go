// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"errors"

	"github.com/cogentcore/webgpu/wgpu"
)

// ErrNoFormats is returned by [SelectFormat] when a surface reports no
// supported formats, which only happens with a broken driver.
var ErrNoFormats = errors.New("gpu: surface reports no supported texture formats")

// SRGBFormats are the color formats that a surface can present with
// gamma-corrected (sRGB) encoding.
var SRGBFormats = []wgpu.TextureFormat{
	wgpu.TextureFormatRGBA8UnormSrgb,
	wgpu.TextureFormatBGRA8UnormSrgb,
}

// IsSRGB returns true if the format is one of [SRGBFormats].
func IsSRGB(format wgpu.TextureFormat) bool {
	for _, f := range SRGBFormats {
		if f == format {
			return true
		}
	}
	return false
}

// SelectFormat returns the presentation format to use, given the
// formats a surface supports in order of preference: the first sRGB
// format if there is one, otherwise the first format.
func SelectFormat(formats []wgpu.TextureFormat) (wgpu.TextureFormat, error) {
	if len(formats) == 0 {
		return wgpu.TextureFormatUndefined, ErrNoFormats
	}
	for _, f := range formats {
		if IsSRGB(f) {
			return f, nil
		}
	}
	return formats[0], nil
}
