package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/flowsat/numberlink/decode"
	"github.com/flowsat/numberlink/grid"
)

// ErrNoGlyph indicates a free cell's direction type has no assigned
// box-drawing glyph. The decoder should never produce such a direction
// type; its occurrence indicates a bug upstream of rendering.
var ErrNoGlyph = errors.New("render: free cell has no glyph for its direction type")

// Option configures Grid's output.
type Option func(*options)

type options struct {
	color bool
}

// WithColor wraps each cell in an ANSI background color keyed by its
// label, for terminal output. Has no effect on the characters written,
// only the escape codes surrounding them.
func WithColor() Option {
	return func(o *options) { o.color = true }
}

// Grid writes solved's solution one row per line to w: endpoint cells
// print labels.Char(cell.Label), free cells print the box-drawing glyph
// for their direction type. Cells within a row are separated by a single
// space.
func Grid(w io.Writer, solved *decode.Grid, labels *grid.Alphabet, opts ...Option) error {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	var sb strings.Builder
	for row := 0; row < solved.Height; row++ {
		for col := 0; col < solved.Width; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}

			cellStr, err := cellString(solved.At(row, col), labels)
			if err != nil {
				return err
			}
			if o.color {
				cellStr = colorize(solved.At(row, col).Label, cellStr)
			}
			sb.WriteString(cellStr)
		}
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("render: writing output: %w", err)
	}

	return nil
}

func cellString(cell decode.Cell, labels *grid.Alphabet) (string, error) {
	if !cell.Free {
		ch, err := labels.Char(cell.Label)
		if err != nil {
			return "", fmt.Errorf("render: %w", err)
		}

		return string(ch), nil
	}

	g, ok := glyph[cell.DirType]
	if !ok {
		return "", fmt.Errorf("%w: direction type %v", ErrNoGlyph, cell.DirType)
	}

	return string(g), nil
}
