// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loader

import (
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// Formats are the supported model file formats.
type Formats int32

const (
	Unknown Formats = iota

	// OBJ is Wavefront OBJ text.
	OBJ

	// GLB is binary glTF.
	GLB

	// GLTF is JSON glTF with external or embedded buffers.
	GLTF
)

func (f Formats) String() string {
	switch f {
	case OBJ:
		return "obj"
	case GLB:
		return "glb"
	case GLTF:
		return "gltf"
	}
	return "unknown"
}

var glbType = filetype.NewType("glb", "model/gltf-binary")

func init() {
	filetype.AddMatcher(glbType, func(buf []byte) bool {
		return len(buf) >= 4 && string(buf[:4]) == "glTF"
	})
}

// Detect returns the model format, sniffing the file header first and
// falling back on the filename extension for text formats.
func Detect(head []byte, path string) Formats {
	if kind, err := filetype.Match(head); err == nil && kind.Extension == glbType.Extension {
		return GLB
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return OBJ
	case ".gltf":
		return GLTF
	case ".glb":
		return GLB
	}
	return Unknown
}

// modelName returns the file base name without extension.
func modelName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
