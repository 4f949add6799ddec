// Package loader decodes run-length encoded Life patterns into seed
// coordinates.
//
// Accepted format (https://conwaylife.com/wiki/Run_Length_Encoded):
//
//	#N Glider
//	x = 3, y = 3, rule = B3/S23
//	bo$2bo$3o!
//
// The x and y header values are advisory; the decoder never clips to them.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"adaptive-life/internal/board"
)

var (
	ErrNotANumber      = errors.New("not a number")
	ErrInputExhausted  = errors.New("input exhausted")
	ErrEmptyName       = errors.New("parameter name can't be empty")
	ErrWrongName       = errors.New("wrong parameter name")
	ErrUnknownParam    = errors.New("unknown parameter")
	ErrUnsupportedRule = errors.New("unsupported rule")
	ErrMissingHeader   = errors.New("missing header line")
)

// Pattern is a decoded RLE file.
type Pattern struct {
	Width  int
	Height int
	Cells  []board.Coord
}

// Centered returns the cells translated so the pattern's bounding box is
// centred on the origin.
func (p *Pattern) Centered() []board.Coord {
	if len(p.Cells) == 0 {
		return nil
	}
	minC, maxC := p.Cells[0].Col, p.Cells[0].Col
	minR, maxR := p.Cells[0].Row, p.Cells[0].Row
	for _, c := range p.Cells[1:] {
		minC, maxC = min(minC, c.Col), max(maxC, c.Col)
		minR, maxR = min(minR, c.Row), max(maxR, c.Row)
	}
	dc := minC + (maxC-minC+1)/2
	dr := minR + (maxR-minR+1)/2
	out := make([]board.Coord, len(p.Cells))
	for i, c := range p.Cells {
		out[i] = board.Coord{Col: c.Col - dc, Row: c.Row - dr}
	}
	return out
}

// ParseFile decodes the pattern stored at path.
func ParseFile(path string) (*Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pattern: %w", err)
	}
	defer f.Close()
	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ParseString decodes a pattern held in memory.
func ParseString(s string) (*Pattern, error) {
	return Parse(strings.NewReader(s))
}

// Parse decodes a pattern from r.
func Parse(r io.Reader) (*Pattern, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	p := &Pattern{}

	header := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		params, err := lexHeader(line)
		if err != nil {
			return nil, fmt.Errorf("header: %w", err)
		}
		if err := p.applyHeader(params); err != nil {
			return nil, fmt.Errorf("header: %w", err)
		}
		header = true
		break
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}
	if !header {
		return nil, ErrMissingHeader
	}

	d := decoder{}
	for !d.done && sc.Scan() {
		if err := d.feed(sc.Text()); err != nil {
			return nil, fmt.Errorf("body: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}
	p.Cells = d.cells
	return p, nil
}

type param struct {
	name  string
	value string
}

// lexHeader splits "x = 3, y = 3, rule = B3/S23" into name/value pairs.
// Names must be non-empty and alphabetic; x and y must be numeric.
func lexHeader(line string) ([]param, error) {
	var out []param
	for _, field := range strings.Split(line, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		name, value, ok := strings.Cut(field, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingHeader, line)
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" {
			return nil, ErrEmptyName
		}
		if strings.IndexFunc(name, func(r rune) bool { return !unicode.IsLetter(r) }) >= 0 {
			return nil, fmt.Errorf("%w: %q", ErrWrongName, name)
		}
		if value == "" {
			return nil, fmt.Errorf("%w: value for %q", ErrInputExhausted, name)
		}
		out = append(out, param{name: strings.ToLower(name), value: value})
	}
	return out, nil
}

func (p *Pattern) applyHeader(params []param) error {
	for _, kv := range params {
		switch kv.name {
		case "x", "y":
			n, err := strconv.Atoi(kv.value)
			if err != nil || n < 0 {
				return fmt.Errorf("%w: %s = %q", ErrNotANumber, kv.name, kv.value)
			}
			if kv.name == "x" {
				p.Width = n
			} else {
				p.Height = n
			}
		case "rule":
			if !isLifeRule(kv.value) {
				return fmt.Errorf("%w: %s", ErrUnsupportedRule, kv.value)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownParam, kv.name)
		}
	}
	return nil
}

func isLifeRule(s string) bool {
	switch strings.ToUpper(strings.ReplaceAll(s, " ", "")) {
	case "B3/S23", "23/3", "S23/B3":
		return true
	}
	return false
}

// maxRun bounds a single run count in the body.
const maxRun = 1 << 20

// decoder consumes body text that may be split across lines at any point.
type decoder struct {
	run   int
	col   int
	row   int
	cells []board.Coord
	done  bool
}

func (d *decoder) count() int {
	n := d.run
	d.run = 0
	if n == 0 {
		return 1
	}
	return n
}

func (d *decoder) feed(line string) error {
	for _, ch := range line {
		if d.done {
			return nil
		}
		switch {
		case ch >= '0' && ch <= '9':
			d.run = d.run*10 + int(ch-'0')
			if d.run > maxRun {
				return fmt.Errorf("run count exceeds %d: %w", maxRun, ErrNotANumber)
			}
		case ch == 'o':
			for i := d.count(); i > 0; i-- {
				d.cells = append(d.cells, board.Coord{Col: d.col, Row: d.row})
				d.col++
			}
		case ch == '$':
			d.row += d.count()
			d.col = 0
		case ch == '!':
			d.done = true
		case unicode.IsSpace(ch):
		case unicode.IsLetter(ch) || ch == '.':
			// b and any other state letter are dead in two-state Life.
			d.col += d.count()
		default:
			d.run = 0
		}
	}
	return nil
}
