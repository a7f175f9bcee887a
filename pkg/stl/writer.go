package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/encase/pkg/geometry"
)

// Write writes a model to a file in binary STL format, replacing any
// existing file at the path. Identical models always produce identical
// bytes.
func Write(model *Model, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	writer := bufio.NewWriter(file)
	if err := WriteBinary(writer, model); err != nil {
		file.Close()
		return err
	}
	if err := writer.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to flush STL data: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}

// WriteBinary writes a model in binary STL format: an 80-byte name header, a
// little-endian uint32 triangle count, then one 50-byte record per facet
func WriteBinary(w io.Writer, model *Model) error {
	header := make([]byte, 80)
	copy(header, model.Name)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	count := uint32(len(model.Triangles))
	if err := binary.Write(w, binary.LittleEndian, count); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	for i, triangle := range model.Triangles {
		record := [12]float32{}
		putVector(record[0:3], triangle.Normal)
		putVector(record[3:6], triangle.V1)
		putVector(record[6:9], triangle.V2)
		putVector(record[9:12], triangle.V3)

		if err := binary.Write(w, binary.LittleEndian, record); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
		// Attribute byte count, always zero
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return fmt.Errorf("failed to write attribute for triangle %d: %w", i, err)
		}
	}

	return nil
}

// WriteASCII writes a model in ASCII STL format
func WriteASCII(w io.Writer, model *Model) error {
	name := model.Name
	if name == "" {
		name = "model"
	}

	if _, err := fmt.Fprintf(w, "solid %s\n", name); err != nil {
		return fmt.Errorf("failed to write solid header: %w", err)
	}

	for i, triangle := range model.Triangles {
		_, err := fmt.Fprintf(w,
			"  facet normal %e %e %e\n"+
				"    outer loop\n"+
				"      vertex %e %e %e\n"+
				"      vertex %e %e %e\n"+
				"      vertex %e %e %e\n"+
				"    endloop\n"+
				"  endfacet\n",
			triangle.Normal.X, triangle.Normal.Y, triangle.Normal.Z,
			triangle.V1.X, triangle.V1.Y, triangle.V1.Z,
			triangle.V2.X, triangle.V2.Y, triangle.V2.Z,
			triangle.V3.X, triangle.V3.Y, triangle.V3.Z,
		)
		if err != nil {
			return fmt.Errorf("failed to write facet %d: %w", i, err)
		}
	}

	if _, err := fmt.Fprintf(w, "endsolid %s\n", name); err != nil {
		return fmt.Errorf("failed to write solid footer: %w", err)
	}
	return nil
}

// putVector folds a float64 vector into three little-endian float32 slots
func putVector(dst []float32, v geometry.Vector3) {
	dst[0] = float32(v.X)
	dst[1] = float32(v.Y)
	dst[2] = float32(v.Z)
}
