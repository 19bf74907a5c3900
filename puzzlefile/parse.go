package puzzlefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/flowsat/numberlink/grid"
)

// ErrEmptyPuzzle indicates the input had no non-blank lines.
var ErrEmptyPuzzle = errors.New("puzzlefile: input has no rows")

// Parse reads a puzzle from r and builds a grid.Grid from it. Blank lines
// are skipped entirely rather than counted as rows, so trailing newlines
// in a puzzle file don't change its height.
func Parse(r io.Reader) (*grid.Grid, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("puzzlefile: reading input: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyPuzzle
	}

	rows := make([][]string, len(lines))
	width := -1
	for i, line := range lines {
		tokens := tokenize(line)
		rows[i] = tokens
		if width == -1 || len(tokens) < width {
			width = len(tokens)
		}
	}

	labels := grid.NewAlphabet()
	cells := make([][]grid.Cell, len(lines))
	for i, tokens := range rows {
		cells[i] = make([]grid.Cell, width)
		for j := 0; j < width; j++ {
			cells[i][j] = cellFor(tokens[j], labels)
		}
	}

	g, err := grid.New(cells, labels)
	if err != nil {
		return nil, fmt.Errorf("puzzlefile: %w", err)
	}

	return g, nil
}

// tokenize splits a single line into per-cell tokens: space-separated
// fields if the line contains whitespace, one rune per cell otherwise.
func tokenize(line string) []string {
	if strings.ContainsAny(line, " \t") {
		return strings.Fields(line)
	}

	runes := []rune(line)
	tokens := make([]string, len(runes))
	for i, r := range runes {
		tokens[i] = string(r)
	}

	return tokens
}

// cellFor classifies a single token: alphanumeric denotes an endpoint,
// interned into labels by its leading rune; anything else is free.
func cellFor(token string, labels *grid.Alphabet) grid.Cell {
	runes := []rune(token)
	ch := runes[0]
	if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) {
		return grid.Cell{}
	}

	return grid.Cell{IsEndpoint: true, Label: labels.Intern(ch)}
}
