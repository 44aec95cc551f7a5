package qasm

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// anglePattern matches one angle argument: plain numbers or pi
// expressions such as "pi", "pi/2", "3*pi/4", "-2pi".
const anglePattern = `-?(?:\d*\.?\d*\*?pi(?:/\d+\.?\d*)?|\d+\.?\d*(?:[eE][+\-]?\d+)?)`

// piExprRegex matches pi expressions: pi, 2pi, 2*pi, pi/2, -3*pi/4, ...
var piExprRegex = regexp.MustCompile(`^(-?)(\d*\.?\d*)\s*\*?\s*pi(?:\s*/\s*(\d+\.?\d*))?$`)

// parseAngle parses one angle argument in radians, accepting plain
// numbers and pi expressions.
func parseAngle(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, false
	}
	if val, err := strconv.ParseFloat(s, 64); err == nil {
		return val, true
	}

	matches := piExprRegex.FindStringSubmatch(s)
	if matches == nil {
		return 0, false
	}
	coeff := 1.0
	if matches[2] != "" {
		var err error
		if coeff, err = strconv.ParseFloat(matches[2], 64); err != nil {
			return 0, false
		}
	}
	val := coeff * math.Pi
	if matches[3] != "" {
		denom, err := strconv.ParseFloat(matches[3], 64)
		if err != nil || denom == 0 {
			return 0, false
		}
		val /= denom
	}
	if matches[1] == "-" {
		val = -val
	}
	return val, true
}

// piFractions are the angle values formatAngle prints symbolically.
var piFractions = []struct {
	value   float64
	display string
}{
	{2 * math.Pi, "2*pi"},
	{3 * math.Pi / 2, "3*pi/2"},
	{math.Pi, "pi"},
	{3 * math.Pi / 4, "3*pi/4"},
	{2 * math.Pi / 3, "2*pi/3"},
	{math.Pi / 2, "pi/2"},
	{math.Pi / 3, "pi/3"},
	{math.Pi / 4, "pi/4"},
	{math.Pi / 6, "pi/6"},
	{math.Pi / 8, "pi/8"},
}

// formatAngle formats an angle in radians, using pi notation for the
// common fractions.
func formatAngle(val float64) string {
	for _, pf := range piFractions {
		if math.Abs(val-pf.value) < 1e-10 {
			return pf.display
		}
		if math.Abs(val+pf.value) < 1e-10 {
			return "-" + pf.display
		}
	}
	return fmt.Sprintf("%g", val)
}

// formatAngles joins formatted angles with commas.
func formatAngles(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = formatAngle(v)
	}
	return strings.Join(parts, ", ")
}
