package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adaptive-life/internal/board"
)

var gliderCells = []board.Coord{
	{Col: 1, Row: 0}, {Col: 2, Row: 1}, {Col: 0, Row: 2}, {Col: 1, Row: 2}, {Col: 2, Row: 2},
}

func TestParseGlider(t *testing.T) {
	for name, src := range map[string]string{
		"compact":     "x=3,y=0\nbo$2bo$3o!",
		"split token": "x =  3, y = 0\nbo$2b\no$3o!",
		"with rule":   "#N Glider\n#C a comment\nx = 3, y = 3, rule = B3/S23\nbo$2bo$3o!\n",
	} {
		t.Run(name, func(t *testing.T) {
			p, err := ParseString(src)
			require.NoError(t, err)
			assert.Equal(t, gliderCells, p.Cells)
			assert.Equal(t, 3, p.Width)
		})
	}
}

func TestParseGosperGun(t *testing.T) {
	src := "x= 20, y=100\n24bo$22bobo$12b2o6b2o12b2o$11bo3bo4b2o12b2\n" +
		"o$2o8bo5bo3b2o$2o8bo3bob2o4bobo$10bo5bo7bo$11bo3bo$12b2o!"
	p, err := ParseString(src)
	require.NoError(t, err)

	want := []board.Coord{
		{Col: 24, Row: 0}, {Col: 22, Row: 1}, {Col: 24, Row: 1},
		{Col: 12, Row: 2}, {Col: 13, Row: 2}, {Col: 20, Row: 2},
		{Col: 21, Row: 2}, {Col: 34, Row: 2}, {Col: 35, Row: 2},
		{Col: 11, Row: 3}, {Col: 15, Row: 3}, {Col: 20, Row: 3},
		{Col: 21, Row: 3}, {Col: 34, Row: 3}, {Col: 35, Row: 3},
		{Col: 0, Row: 4}, {Col: 1, Row: 4}, {Col: 10, Row: 4},
		{Col: 16, Row: 4}, {Col: 20, Row: 4}, {Col: 21, Row: 4},
		{Col: 0, Row: 5}, {Col: 1, Row: 5}, {Col: 10, Row: 5},
		{Col: 14, Row: 5}, {Col: 16, Row: 5}, {Col: 17, Row: 5},
		{Col: 22, Row: 5}, {Col: 24, Row: 5}, {Col: 10, Row: 6},
		{Col: 16, Row: 6}, {Col: 24, Row: 6}, {Col: 11, Row: 7},
		{Col: 15, Row: 7}, {Col: 12, Row: 8}, {Col: 13, Row: 8},
	}
	assert.Equal(t, want, p.Cells)
}

func TestParseRowRuns(t *testing.T) {
	p, err := ParseString("x = 1, y = 4\no3$o!ignored o")
	require.NoError(t, err)
	assert.Equal(t, []board.Coord{{Col: 0, Row: 0}, {Col: 0, Row: 3}}, p.Cells)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"not a number", "x =  a25, y = 30\no!", ErrNotANumber},
		{"missing value", "x =  \no!", ErrInputExhausted},
		{"empty name", "=  25\no!", ErrEmptyName},
		{"wrong name", "x1 = 3\no!", ErrWrongName},
		{"unknown param", "z = 3\no!", ErrUnknownParam},
		{"other rule", "x = 1, y = 1, rule = B36/S23\no!", ErrUnsupportedRule},
		{"no header", "bo$2bo$3o!", ErrMissingHeader},
		{"empty input", "#C only comments\n", ErrMissingHeader},
		{"run overflow", "x = 3, y = 1\n99999999999999999999bo!", ErrNotANumber},
		{"run too long", "x = 3, y = 1\n2000000000o!", ErrNotANumber},
		{"row skip too long", "x = 1, y = 1\no5000000$o!", ErrNotANumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.src)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseLongRun(t *testing.T) {
	p, err := ParseString("x = 1000, y = 1\n1000o!")
	require.NoError(t, err)
	assert.Len(t, p.Cells, 1000)
	assert.Equal(t, board.Coord{Col: 999, Row: 0}, p.Cells[999])
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glider.rle")
	require.NoError(t, os.WriteFile(path, []byte("x = 3, y = 3\nbo$2bo$3o!\n"), 0o644))

	p, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, gliderCells, p.Cells)

	_, err = ParseFile(filepath.Join(t.TempDir(), "nope.rle"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCentered(t *testing.T) {
	p := &Pattern{Cells: gliderCells}
	got := p.Centered()
	want := []board.Coord{
		{Col: 0, Row: -1}, {Col: 1, Row: 0}, {Col: -1, Row: 1}, {Col: 0, Row: 1}, {Col: 1, Row: 1},
	}
	assert.Equal(t, want, got)
	assert.Nil(t, (&Pattern{}).Centered())
}
