package terrain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrUnknownStyle indicates ParseStyle was given an unsupported name.
var ErrUnknownStyle = errors.New("terrain: unknown render style")

// shades maps height/10 to a character, low to high.
const shades = " .-:=+*#%@"

// traversedCell is printed in place of a plotted cell.
const traversedCell = "()"

// Style selects how a HeightField is printed.
type Style string

const (
	// StyleASCII prints two shade characters per cell.
	StyleASCII Style = "ascii"
	// StyleNumeric prints each height as a two-digit number.
	StyleNumeric Style = "numeric"
)

// ParseStyle validates a style name.
func ParseStyle(s string) (Style, error) {
	switch st := Style(s); st {
	case StyleASCII, StyleNumeric:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, s)
	}
}

// Render writes hf to w in the given style.
func (hf *HeightField) Render(w io.Writer, style Style) error {
	switch style {
	case StyleASCII:
		return hf.RenderASCII(w)
	case StyleNumeric:
		return hf.RenderNumeric(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStyle, string(style))
	}
}

// RenderASCII writes one line per row, each cell as a doubled shade
// character and each traversed cell as "()".
func (hf *HeightField) RenderASCII(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, row := range hf.cells {
		for _, v := range row {
			if v < 0 {
				bw.WriteString(traversedCell)
				continue
			}
			s := shades[shadeIndex(v)]
			bw.WriteByte(s)
			bw.WriteByte(s)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// RenderNumeric writes each height as "%2d " and each traversed cell as "() ".
func (hf *HeightField) RenderNumeric(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, row := range hf.cells {
		for _, v := range row {
			if v < 0 {
				bw.WriteString(traversedCell + " ")
				continue
			}
			fmt.Fprintf(bw, "%2d ", v)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func shadeIndex(v int) int {
	i := v * 10 / 100
	if i >= len(shades) {
		return len(shades) - 1
	}

	return i
}
