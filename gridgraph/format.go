package gridgraph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// obstacleToken is the text representation of Obstacle.
const obstacleToken = "#"

// MaxLineBytes bounds one row of the text format, about 32M cells of cost 1.
const MaxLineBytes = 64 << 20

// String renders the grid in the text maze format: one line per row,
// tokens separated by single spaces, "#" for obstacles and the decimal
// cost otherwise.
func (g *Grid) String() string {
	var sb strings.Builder
	_, _ = g.WriteTo(&sb)
	return sb.String()
}

// WriteTo writes the text maze format of g to w.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	for _, row := range g.cells {
		for x, m := range row {
			if x > 0 {
				n, _ := bw.WriteString(" ")
				total += int64(n)
			}
			tok := obstacleToken
			if m.Walkable() {
				tok = strconv.Itoa(int(m))
			}
			n, _ := bw.WriteString(tok)
			total += int64(n)
		}
		n, _ := bw.WriteString("\n")
		total += int64(n)
	}
	return total, bw.Flush()
}

// Parse reads a grid in the text maze format. Blank lines are ignored.
// Returns ErrSyntax for unknown tokens or rows longer than MaxLineBytes,
// plus any NewGrid error.
func Parse(r io.Reader) (*Grid, error) {
	var markers [][]Marker
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]Marker, len(fields))
		for i, f := range fields {
			if f == obstacleToken {
				row[i] = Obstacle
				continue
			}
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: token %q", ErrSyntax, line, f)
			}
			row[i] = Marker(v)
		}
		markers = append(markers, row)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d longer than %d bytes", ErrSyntax, line+1, MaxLineBytes)
		}
		return nil, fmt.Errorf("gridgraph: read maze: %w", err)
	}
	return NewGrid(markers)
}
