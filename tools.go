package tools

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatSequence returns a printable form of a sequence, [ 1, 2, 3 ].
func FormatSequence(xs []float64) string {
	var s strings.Builder
	s.WriteString("[ ")
	for i, x := range xs {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	if len(xs) > 0 {
		s.WriteString(" ")
	}
	s.WriteString("]")

	return s.String()
}

// ParseSequence parses numbers given as separate arguments, comma separated lists, or a mix of both.
func ParseSequence(args ...string) ([]float64, error) {
	xs := make([]float64, 0, len(args))
	for _, arg := range args {
		for _, f := range strings.Split(arg, ",") {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q: %w", f, err)
			}
			xs = append(xs, x)
		}
	}
	return xs, nil
}
