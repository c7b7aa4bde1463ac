// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	_ "embed"
	"strings"
)

// TriangleShader is the WGSL source of the triangle pipeline.
// Its vertex stage emits three vertices from the vertex index.
//
//go:embed shaders/triangle.wgsl
var TriangleShader string

// TriangleVertices is the number of vertices drawn by [TriangleShader].
const TriangleVertices = 3

// hasEntry returns true if the WGSL code declares a function
// with the given name.
func hasEntry(code, name string) bool {
	return strings.Contains(code, "fn "+name+"(")
}
