// Package export writes grid results to disk as NumPy arrays or HTML tables.
package export

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

var ErrShape = errors.New("export: unsupported or ragged array")

var npyMagic = []byte{0x93, 'N', 'U', 'M', 'P', 'Y', 1, 0}

// npyAlignment is the multiple the full preamble (magic, length, header) is
// padded to.
const npyAlignment = 64

// WriteNPY writes data in the .npy v1.0 format. Supported are []float64,
// [][]float64, []complex128 and [][]complex128; two-dimensional data must
// be rectangular and is written in C order.
func WriteNPY(w io.Writer, data any) error {
	descr, shape, err := describe(data)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if err := writeHeader(bw, descr, shape); err != nil {
		return err
	}

	switch v := data.(type) {
	case []float64:
		err = writeFloats(bw, v)
	case []complex128:
		err = writeComplex(bw, v)
	case [][]float64:
		for _, row := range v {
			if err = writeFloats(bw, row); err != nil {
				break
			}
		}
	case [][]complex128:
		for _, row := range v {
			if err = writeComplex(bw, row); err != nil {
				break
			}
		}
	}
	if err != nil {
		return err
	}
	return bw.Flush()
}

// SaveNPY writes data to path with the .npy extension appended.
func SaveNPY(path string, data any) (err error) {
	file, err := os.Create(path + ".npy")
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	return WriteNPY(file, data)
}

func describe(data any) (descr string, shape []int, err error) {
	switch v := data.(type) {
	case []float64:
		return "<f8", []int{len(v)}, nil
	case []complex128:
		return "<c16", []int{len(v)}, nil
	case [][]float64:
		shape, err = rectangular(len(v), func(i int) int { return len(v[i]) })
		return "<f8", shape, err
	case [][]complex128:
		shape, err = rectangular(len(v), func(i int) int { return len(v[i]) })
		return "<c16", shape, err
	}
	return "", nil, fmt.Errorf("%w: %T", ErrShape, data)
}

func rectangular(rows int, cols func(int) int) ([]int, error) {
	if rows == 0 {
		return []int{0, 0}, nil
	}
	n := cols(0)
	for i := 1; i < rows; i++ {
		if cols(i) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrShape, i, cols(i), n)
		}
	}
	return []int{rows, n}, nil
}

func writeHeader(w io.Writer, descr string, shape []int) error {
	dims := make([]string, len(shape))
	for i, s := range shape {
		dims[i] = fmt.Sprint(s)
	}
	tuple := strings.Join(dims, ", ")
	if len(shape) == 1 {
		tuple += ","
	}

	header := fmt.Sprintf("{'descr': '%s', 'fortran_order': False, 'shape': (%s), }", descr, tuple)
	// magic + 2 length bytes + header + '\n'
	total := len(npyMagic) + 2 + len(header) + 1
	if pad := (npyAlignment - total%npyAlignment) % npyAlignment; pad > 0 {
		header += strings.Repeat(" ", pad)
	}
	header += "\n"

	if _, err := w.Write(npyMagic); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(len(header))); err != nil {
		return err
	}
	_, err := io.WriteString(w, header)
	return err
}

func writeFloats(w io.Writer, v []float64) error {
	buf := make([]byte, 8*len(v))
	for i, x := range v {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(x))
	}
	_, err := w.Write(buf)
	return err
}

func writeComplex(w io.Writer, v []complex128) error {
	buf := make([]byte, 16*len(v))
	for i, z := range v {
		binary.LittleEndian.PutUint64(buf[16*i:], math.Float64bits(real(z)))
		binary.LittleEndian.PutUint64(buf[16*i+8:], math.Float64bits(imag(z)))
	}
	_, err := w.Write(buf)
	return err
}
