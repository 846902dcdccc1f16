// Package record parses the line-oriented point format shared by the viewer
// and the plotter: one record per line, fields separated by arbitrary
// whitespace, every field a finite floating-point number.
package record

import (
	"math"
	"strconv"
	"strings"
)

// Parse splits line on whitespace and parses exactly len(dst) finite floats
// into dst. It reports false when the field count differs or any field is
// not a finite number.
func Parse(line string, dst []float64) bool {
	fields := strings.Fields(line)
	if len(fields) != len(dst) {
		return false
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
		dst[i] = v
	}
	return true
}

// ParseXY parses a two-field "x y" record.
func ParseXY(line string) (x, y float64, ok bool) {
	var v [2]float64
	if !Parse(line, v[:]) {
		return 0, 0, false
	}
	return v[0], v[1], true
}

// ParseXYZ parses a three-field "x y z" record.
func ParseXYZ(line string) (x, y, z float64, ok bool) {
	var v [3]float64
	if !Parse(line, v[:]) {
		return 0, 0, 0, false
	}
	return v[0], v[1], v[2], true
}
