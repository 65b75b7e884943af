// Package objfile exports mesh buffers as Wavefront OBJ for inspection
// in external modeling tools. Skin weights have no OBJ representation
// and are dropped.
package objfile

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"creature-forge/internal/meshbuf"
)

// Write streams the buffer as an OBJ object with positions, texture
// coordinates, and normals. OBJ indices are 1-based.
func Write(w io.Writer, b *meshbuf.Buffer, name string) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("objfile: %w", err)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "o %s\n", name)

	n := b.VertexCount()
	for i := 0; i < n; i++ {
		fmt.Fprintf(bw, "v %g %g %g\n", b.Positions[i*3], b.Positions[i*3+1], b.Positions[i*3+2])
	}
	hasUV := len(b.UVs) == n*2
	if hasUV {
		for i := 0; i < n; i++ {
			fmt.Fprintf(bw, "vt %g %g\n", b.UVs[i*2], b.UVs[i*2+1])
		}
	}
	hasNormals := len(b.Normals) == n*3
	if hasNormals {
		for i := 0; i < n; i++ {
			fmt.Fprintf(bw, "vn %g %g %g\n", b.Normals[i*3], b.Normals[i*3+1], b.Normals[i*3+2])
		}
	}

	for i := 0; i+2 < len(b.Indices); i += 3 {
		a, bb, c := b.Indices[i]+1, b.Indices[i+1]+1, b.Indices[i+2]+1
		switch {
		case hasUV && hasNormals:
			fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, bb, bb, bb, c, c, c)
		case hasUV:
			fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n", a, a, bb, bb, c, c)
		case hasNormals:
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, bb, bb, c, c)
		default:
			fmt.Fprintf(bw, "f %d %d %d\n", a, bb, c)
		}
	}
	return bw.Flush()
}

// WriteFile writes the buffer as an OBJ file.
func WriteFile(path string, b *meshbuf.Buffer, name string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("objfile: create %s: %w", path, err)
	}
	defer f.Close()
	return Write(f, b, name)
}
