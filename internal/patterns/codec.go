package patterns

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/san-kum/lifesim/internal/life"
)

// ErrMalformed indicates a pattern file that could not be parsed.
var ErrMalformed = errors.New("patterns: malformed pattern")

// Load reads a pattern file, picking the format from the extension:
// ".rle" for run length encoded, anything else as plaintext.
func Load(path string) (Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return Pattern{}, err
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var p Pattern
	if strings.EqualFold(filepath.Ext(path), ".rle") {
		p, err = ParseRLE(f)
	} else {
		p, err = ParsePlaintext(f)
	}
	if err != nil {
		return Pattern{}, fmt.Errorf("%s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = name
	}
	return p, nil
}

// ParsePlaintext reads the .cells format: lines starting with '!' are
// comments, 'O' or '*' is alive and any other rune is dead. Columns count
// runes, not bytes.
func ParsePlaintext(r io.Reader) (Pattern, error) {
	var p Pattern
	sc := bufio.NewScanner(r)
	row := 0
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(line, "!") {
			if name, ok := strings.CutPrefix(line, "!Name:"); ok {
				p.Name = strings.TrimSpace(name)
			} else if p.Description == "" && len(line) > 1 {
				p.Description = strings.TrimSpace(line[1:])
			}
			continue
		}
		col := 0
		for _, ch := range line {
			if ch == 'O' || ch == '*' {
				p.Cells = append(p.Cells, life.Coord{Row: row, Col: col})
			}
			col++
		}
		if col > p.Width {
			p.Width = col
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, err
	}
	p.Height = row
	return p, nil
}

// ParseRLE reads the run length encoded format used by most pattern
// collections. Only the B3/S23 rule is accepted.
func ParseRLE(r io.Reader) (Pattern, error) {
	var p Pattern
	sc := bufio.NewScanner(r)
	headerSeen := false
	row, col, count := 0, 0, 0
	done := false

	for sc.Scan() && !done {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			switch {
			case strings.HasPrefix(line, "#N"):
				p.Name = strings.TrimSpace(line[2:])
			case strings.HasPrefix(line, "#C"), strings.HasPrefix(line, "#c"):
				if p.Description == "" {
					p.Description = strings.TrimSpace(line[2:])
				}
			}
			continue
		}
		if !headerSeen {
			if err := parseRLEHeader(line, &p); err != nil {
				return Pattern{}, err
			}
			headerSeen = true
			continue
		}

		for _, ch := range line {
			switch {
			case ch >= '0' && ch <= '9':
				count = count*10 + int(ch-'0')
			case ch == 'b' || ch == '.':
				col += runLength(count)
				count = 0
			case ch == 'o':
				n := runLength(count)
				for i := 0; i < n; i++ {
					p.Cells = append(p.Cells, life.Coord{Row: row, Col: col + i})
				}
				col += n
				count = 0
			case ch == '$':
				row += runLength(count)
				col = 0
				count = 0
			case ch == '!':
				done = true
			case ch == ' ' || ch == '\t':
			default:
				return Pattern{}, fmt.Errorf("%w: unexpected %q in RLE body", ErrMalformed, ch)
			}
			if done {
				break
			}
		}
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, err
	}
	if !headerSeen {
		return Pattern{}, fmt.Errorf("%w: missing RLE header", ErrMalformed)
	}
	for _, c := range p.Cells {
		if c.Row >= p.Height || c.Col >= p.Width {
			return Pattern{}, fmt.Errorf("%w: cell (%d,%d) outside %dx%d header", ErrMalformed, c.Row, c.Col, p.Width, p.Height)
		}
	}
	return p, nil
}

func runLength(n int) int {
	if n == 0 {
		return 1
	}
	return n
}

func parseRLEHeader(line string, p *Pattern) error {
	for _, part := range strings.Split(line, ",") {
		key, val, ok := strings.Cut(part, "=")
		if !ok {
			return fmt.Errorf("%w: bad header field %q", ErrMalformed, part)
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		switch key {
		case "x", "y":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return fmt.Errorf("%w: bad %s dimension %q", ErrMalformed, key, val)
			}
			if key == "x" {
				p.Width = n
			} else {
				p.Height = n
			}
		case "rule":
			rule := strings.ToUpper(strings.ReplaceAll(val, " ", ""))
			if rule != "B3/S23" && rule != "23/3" {
				return fmt.Errorf("%w: unsupported rule %q", ErrMalformed, val)
			}
		}
	}
	return nil
}

// EncodeRLE writes the live cells of a row-major buffer in RLE form.
func EncodeRLE(w io.Writer, width, height int, cells []life.Cell) error {
	if len(cells) != width*height {
		return fmt.Errorf("%w: %d cells for %dx%d", ErrMalformed, len(cells), width, height)
	}

	var tokens []string
	emit := func(n int, t byte) {
		if n == 0 {
			return
		}
		if n == 1 {
			tokens = append(tokens, string(t))
			return
		}
		tokens = append(tokens, strconv.Itoa(n)+string(t))
	}

	first, blank := true, 0
	for row := 0; row < height; row++ {
		line := cells[row*width : (row+1)*width]
		last := -1
		for i, c := range line {
			if c.Alive() {
				last = i
			}
		}
		if last < 0 {
			blank++
			continue
		}
		if first {
			emit(blank, '$')
		} else {
			emit(blank+1, '$')
		}
		first, blank = false, 0

		run, alive := 0, line[0].Alive()
		for i := 0; i <= last; i++ {
			if a := line[i].Alive(); a != alive {
				emit(run, tag(alive))
				run, alive = 0, a
			}
			run++
		}
		emit(run, tag(alive))
	}
	tokens = append(tokens, "!")

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "x = %d, y = %d, rule = B3/S23\n", width, height)
	const lineLen = 70
	n := 0
	for _, tok := range tokens {
		if n+len(tok) > lineLen {
			bw.WriteByte('\n')
			n = 0
		}
		bw.WriteString(tok)
		n += len(tok)
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

func tag(alive bool) byte {
	if alive {
		return 'o'
	}
	return 'b'
}
