package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

var numberPattern = regexp.MustCompile(`[\d,]+\.?\d*`)

// ExtractNumber pulls the first decimal number out of an annotated string
// such as "BWP 2,215,000", stripping thousands separators. A string with
// no usable number yields 0. Downstream premium comparisons depend on this
// exact policy (first match wins, never an error).
func ExtractNumber(text string) float64 {
	match := numberPattern.FindString(text)
	if match == "" {
		return 0
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return 0
	}
	return n
}
