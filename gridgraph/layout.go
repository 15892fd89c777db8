// SPDX-License-Identifier: MIT

package gridgraph

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ASCII map glyphs understood by ParseLayout and produced by Layout.String.
const (
	GlyphOpen  = '.'
	GlyphWall  = '#'
	GlyphStart = 'S'
	GlyphEnd   = 'E'
)

// Layout is the input record a caller hands to NewGrid.
//
// In YAML either the explicit fields or a map block may be used:
//
//	rows: 3
//	cols: 3
//	start: {row: 0, col: 0}
//	end:   {row: 2, col: 2}
//	walls:
//	  - {row: 1, col: 1}
//
//	map: |
//	  S..
//	  .#.
//	  ..E
type Layout struct {
	Rows  int        `yaml:"rows"`
	Cols  int        `yaml:"cols"`
	Start Position   `yaml:"start"`
	End   Position   `yaml:"end"`
	Walls []Position `yaml:"walls,omitempty"`
	Map   string     `yaml:"map,omitempty"`
}

// DecodeLayout reads one YAML document. Unknown keys are rejected. When the
// document carries a map block it replaces the explicit fields.
func DecodeLayout(r io.Reader) (*Layout, error) {
	l := &Layout{}
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(l); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty layout document", ErrEmptyGrid)
		}
		return nil, fmt.Errorf("gridgraph: decode layout: %w", err)
	}
	if strings.TrimSpace(l.Map) == "" {
		return l, nil
	}

	return ParseLayout(l.Map)
}

// ParseLayout reads an ASCII map: '.' open, '#' wall, 'S' start, 'E' end.
// Blank lines around the map are ignored. A missing S or E leaves that
// position at (-1,-1), which NewGrid resolves to NoNode.
func ParseLayout(s string) (*Layout, error) {
	lines := strings.Split(strings.Trim(s, "\r\n"), "\n")
	l := &Layout{
		Rows:  len(lines),
		Start: Position{Row: -1, Col: -1},
		End:   Position{Row: -1, Col: -1},
	}
	var sawStart, sawEnd bool
	for r, line := range lines {
		line = strings.TrimRight(line, "\r \t")
		if r == 0 {
			l.Cols = len(line)
		} else if len(line) != l.Cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(line), l.Cols)
		}
		for c, glyph := range []byte(line) {
			p := Position{Row: r, Col: c}
			switch glyph {
			case GlyphOpen:
			case GlyphWall:
				l.Walls = append(l.Walls, p)
			case GlyphStart:
				if sawStart {
					return nil, fmt.Errorf("%w: second start at %s", ErrBadMap, p)
				}
				sawStart, l.Start = true, p
			case GlyphEnd:
				if sawEnd {
					return nil, fmt.Errorf("%w: second end at %s", ErrBadMap, p)
				}
				sawEnd, l.End = true, p
			default:
				return nil, fmt.Errorf("%w: glyph %q at %s", ErrBadMap, glyph, p)
			}
		}
	}
	if l.Cols == 0 {
		return nil, ErrEmptyGrid
	}

	return l, nil
}

// Validate checks what a caller should check before searching: positive
// dimensions, every position on the board, and neither start nor end walled.
func (l *Layout) Validate() error {
	if l.Rows < 1 || l.Cols < 1 {
		return fmt.Errorf("%w: %d×%d", ErrEmptyGrid, l.Rows, l.Cols)
	}
	in := func(p Position) bool {
		return p.Row >= 0 && p.Row < l.Rows && p.Col >= 0 && p.Col < l.Cols
	}
	if !in(l.Start) {
		return fmt.Errorf("%w: start %s", ErrOutOfBounds, l.Start)
	}
	if !in(l.End) {
		return fmt.Errorf("%w: end %s", ErrOutOfBounds, l.End)
	}
	for _, w := range l.Walls {
		switch {
		case !in(w):
			return fmt.Errorf("%w: wall %s", ErrOutOfBounds, w)
		case w == l.Start:
			return ErrStartIsWall
		case w == l.End:
			return ErrEndIsWall
		}
	}

	return nil
}

// Build runs NewGrid on the layout without validating it first.
func (l *Layout) Build() (*GridData, error) {
	return NewGrid(l.Rows, l.Cols, l.Start, l.End, l.Walls)
}

// String renders the layout as an ASCII map. A start that coincides with the
// end is drawn as S.
func (l *Layout) String() string {
	if l.Rows < 1 || l.Cols < 1 {
		return ""
	}
	cells := make([][]byte, l.Rows)
	for r := range cells {
		cells[r] = []byte(strings.Repeat(string(GlyphOpen), l.Cols))
	}
	put := func(p Position, glyph byte) {
		if p.Row >= 0 && p.Row < l.Rows && p.Col >= 0 && p.Col < l.Cols {
			cells[p.Row][p.Col] = glyph
		}
	}
	for _, w := range l.Walls {
		put(w, GlyphWall)
	}
	put(l.End, GlyphEnd)
	put(l.Start, GlyphStart)

	var b strings.Builder
	for _, row := range cells {
		b.Write(row)
		b.WriteByte('\n')
	}

	return b.String()
}

// MarshalYAML encodes the explicit fields; the map block is never emitted.
func (l Layout) MarshalYAML() (interface{}, error) {
	type plain struct {
		Rows  int        `yaml:"rows"`
		Cols  int        `yaml:"cols"`
		Start Position   `yaml:"start"`
		End   Position   `yaml:"end"`
		Walls []Position `yaml:"walls,omitempty"`
	}

	return plain{Rows: l.Rows, Cols: l.Cols, Start: l.Start, End: l.End, Walls: l.Walls}, nil
}
