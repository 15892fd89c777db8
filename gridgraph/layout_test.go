package gridgraph_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathfinder/gridgraph"
)

const maze = `
S.#
.##
..E
`

func TestParseLayout(t *testing.T) {
	l, err := gridgraph.ParseLayout(maze)
	require.NoError(t, err)

	assert.Equal(t, 3, l.Rows)
	assert.Equal(t, 3, l.Cols)
	assert.Equal(t, pos(0, 0), l.Start)
	assert.Equal(t, pos(2, 2), l.End)
	assert.Equal(t, []gridgraph.Position{pos(0, 2), pos(1, 1), pos(1, 2)}, l.Walls)
	assert.Equal(t, strings.TrimLeft(maze, "\n"), l.String())
	assert.NoError(t, l.Validate())
}

func TestParseLayout_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Ragged", "S..\n.E", gridgraph.ErrNonRectangular},
		{"Glyph", "S.x\n..E", gridgraph.ErrBadMap},
		{"TwoStarts", "S.S\n..E", gridgraph.ErrBadMap},
		{"TwoEnds", "SEE", gridgraph.ErrBadMap},
		{"Empty", "\n\n", gridgraph.ErrEmptyGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.ParseLayout(tc.in)
			if !errors.Is(err, tc.err) {
				t.Errorf("ParseLayout(%q) error = %v; want %v", tc.in, err, tc.err)
			}
		})
	}
}

func TestParseLayout_MissingMarkers(t *testing.T) {
	l, err := gridgraph.ParseLayout("...\n...")
	require.NoError(t, err)
	assert.ErrorIs(t, l.Validate(), gridgraph.ErrOutOfBounds)

	data, err := l.Build()
	require.NoError(t, err)
	assert.Equal(t, gridgraph.NoNode, data.Start)
	assert.Equal(t, gridgraph.NoNode, data.End)
}

func TestDecodeLayout(t *testing.T) {
	explicit := `
rows: 3
cols: 4
start: {row: 0, col: 0}
end: {row: 2, col: 3}
walls:
  - {row: 1, col: 1}
  - {row: 1, col: 2}
`
	l, err := gridgraph.DecodeLayout(strings.NewReader(explicit))
	require.NoError(t, err)
	assert.Equal(t, &gridgraph.Layout{
		Rows:  3,
		Cols:  4,
		Start: pos(0, 0),
		End:   pos(2, 3),
		Walls: []gridgraph.Position{pos(1, 1), pos(1, 2)},
	}, l)

	fromMap := "map: |\n  S.#\n  .##\n  ..E\n"
	l, err = gridgraph.DecodeLayout(strings.NewReader(fromMap))
	require.NoError(t, err)
	assert.Equal(t, 3, l.Rows)
	assert.Equal(t, pos(2, 2), l.End)
	assert.Len(t, l.Walls, 3)
}

func TestDecodeLayout_Errors(t *testing.T) {
	_, err := gridgraph.DecodeLayout(strings.NewReader("rows: 2\ncolumns: 3\n"))
	assert.Error(t, err, "unknown keys must be rejected")

	_, err = gridgraph.DecodeLayout(strings.NewReader(""))
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.DecodeLayout(strings.NewReader("map: |\n  S.\n  .\n"))
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)
}

func TestLayout_MarshalRoundTrip(t *testing.T) {
	in := gridgraph.Layout{Rows: 2, Cols: 2, Start: pos(0, 0), End: pos(1, 1), Walls: []gridgraph.Position{pos(0, 1)}, Map: "ignored"}
	out, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "map")

	back, err := gridgraph.DecodeLayout(strings.NewReader(string(out)))
	require.NoError(t, err)
	in.Map = ""
	assert.Equal(t, &in, back)
}

func TestLayout_Validate(t *testing.T) {
	base := func() gridgraph.Layout {
		return gridgraph.Layout{Rows: 3, Cols: 3, Start: pos(0, 0), End: pos(2, 2)}
	}
	cases := []struct {
		name   string
		mutate func(*gridgraph.Layout)
		err    error
	}{
		{"OK", func(*gridgraph.Layout) {}, nil},
		{"NoRows", func(l *gridgraph.Layout) { l.Rows = 0 }, gridgraph.ErrEmptyGrid},
		{"StartOutside", func(l *gridgraph.Layout) { l.Start = pos(3, 0) }, gridgraph.ErrOutOfBounds},
		{"EndOutside", func(l *gridgraph.Layout) { l.End = pos(0, -1) }, gridgraph.ErrOutOfBounds},
		{"WallOutside", func(l *gridgraph.Layout) { l.Walls = []gridgraph.Position{pos(9, 9)} }, gridgraph.ErrOutOfBounds},
		{"StartWalled", func(l *gridgraph.Layout) { l.Walls = []gridgraph.Position{pos(0, 0)} }, gridgraph.ErrStartIsWall},
		{"EndWalled", func(l *gridgraph.Layout) { l.Walls = []gridgraph.Position{pos(2, 2)} }, gridgraph.ErrEndIsWall},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := base()
			tc.mutate(&l)
			err := l.Validate()
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestLayout_Build(t *testing.T) {
	l, err := gridgraph.ParseLayout(maze)
	require.NoError(t, err)
	data, err := l.Build()
	require.NoError(t, err)

	if got := data.Grid.Walls(); !reflect.DeepEqual(got, []gridgraph.NodeID{2, 4, 5}) {
		t.Errorf("walls = %v; want [2 4 5]", got)
	}
	assert.Equal(t, gridgraph.NodeID(0), data.Start)
	assert.Equal(t, gridgraph.NodeID(8), data.End)
}
