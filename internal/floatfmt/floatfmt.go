// Package floatfmt formats coordinates with a fixed number of decimals.
// Fixed-width decimal output is what keeps emitted markup byte-stable
// across runs and platforms: no scientific notation, no negative zero,
// no shortest-representation jitter.
package floatfmt

import (
	"math"
	"strconv"
	"strings"
)

// Format renders v with exactly prec digits after the decimal point.
// Values that round to zero are normalized to positive zero, so
// "-0.00" never appears in output.
func Format(v float64, prec int) string {
	if prec < 0 {
		prec = 0
	}
	if math.Signbit(v) {
		// Round first so that -0.004 at two decimals prints "0.00",
		// not "-0.00".
		shift := math.Pow(10, float64(prec))
		if math.Round(v*shift) == 0 {
			v = 0
		}
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// Pair renders two coordinates separated by sep.
func Pair(x, y float64, prec int, sep string) string {
	var b strings.Builder
	b.WriteString(Format(x, prec))
	b.WriteString(sep)
	b.WriteString(Format(y, prec))
	return b.String()
}
