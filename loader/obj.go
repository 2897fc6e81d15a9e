// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"
	"cogentcore.org/solarsys/scene"
)

// objPart is one "o" or "g" section of an OBJ file.
type objPart struct {
	name  string
	index []int
	faces int
}

// ReadOBJ reads Wavefront OBJ geometry into a detached group named name,
// with one [scene.Solid] per object or group that has faces. Only vertex
// positions and faces are used; normals, texture coordinates and
// material libraries are ignored.
func ReadOBJ(r io.Reader, name string) (*scene.Group, error) {
	var verts []math32.Vector3
	var parts []*objPart
	cur := &objPart{name: name}
	parts = append(parts, cur)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj line %d: vertex needs 3 coordinates", ln)
			}
			var xyz [3]float32
			for i := range xyz {
				v, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", ln, err)
				}
				xyz[i] = float32(v)
			}
			verts = append(verts, math32.Vec3(xyz[0], xyz[1], xyz[2]))
		case "o", "g":
			nm := name
			if len(fields) > 1 {
				nm = fields[1]
			}
			cur = &objPart{name: nm}
			parts = append(parts, cur)
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj line %d: face needs at least 3 vertices", ln)
			}
			for _, tok := range fields[1:] {
				idx, err := objIndex(tok, len(verts))
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", ln, err)
				}
				cur.index = append(cur.index, idx)
			}
			cur.faces++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	gp := scene.NewGroup(nil, name)
	for _, pt := range parts {
		if pt.faces == 0 {
			continue
		}
		pv := make([]math32.Vector3, len(pt.index))
		for i, idx := range pt.index {
			pv[i] = verts[idx]
		}
		scene.NewSolid(gp, pt.name, scene.NewModel(pt.name, pv, pt.faces))
	}
	if len(gp.Children()) == 0 {
		return nil, fmt.Errorf("obj %s: no faces", name)
	}
	return gp, nil
}

// objIndex converts a face vertex token (v, v/vt, v//vn, v/vt/vn) to a
// zero-based vertex index; negative indexes count back from the end.
func objIndex(tok string, nverts int) (int, error) {
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		tok = tok[:i]
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, err
	}
	switch {
	case v > 0 && v <= nverts:
		return v - 1, nil
	case v < 0 && -v <= nverts:
		return nverts + v, nil
	}
	return 0, fmt.Errorf("vertex index %d out of range", v)
}
