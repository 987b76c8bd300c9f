package results

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strings"

	"github.com/benoitkugler/pathplot/logging"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"golang.org/x/net/html/charset"
)

// DefaultFile is the name the pathfinding tool output is expected under.
const DefaultFile = "results.csv"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadOptions tunes how a results file is read.
type LoadOptions struct {
	// Encoding is a charset label, as understood by golang.org/x/net/html/charset.
	// An empty string means UTF-8.
	Encoding string
}

// Load reads the whole named file. The file is closed before Load
// returns, whether or not decoding succeeded.
// A missing file yields an error wrapping both ErrFileNotFound and fs.ErrNotExist.
func Load(filename string, opts LoadOptions) (*Set, error) {
	f, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}
		return nil, err
	}
	defer f.Close()

	set, err := Read(f, opts)
	if err != nil {
		return nil, err
	}
	logging.Debugf("loaded %d records from %s", len(set.Records), filename)
	return set, nil
}

// Read decodes every record from `r`.
func Read(r io.Reader, opts LoadOptions) (*Set, error) {
	rd, err := NewReader(r, opts.Encoding)
	if err != nil {
		return nil, err
	}
	set := &Set{}
	for {
		rec, err := rd.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		set.Records = append(set.Records, rec)
	}
	if rd.Skipped > 0 {
		logging.Debugf("skipped %d records with an unsupported tag", rd.Skipped)
	}
	return set, nil
}

// Reader decodes records one at a time.
type Reader struct {
	csv *csv.Reader

	// Skipped counts the records ignored because of an unknown tag.
	Skipped int
}

// NewReader returns a Reader decoding `r` with the given charset label
// (empty for UTF-8). A leading UTF-8 byte order mark is dropped.
func NewReader(r io.Reader, encoding string) (*Reader, error) {
	if encoding != "" {
		decoded, err := charset.NewReaderLabel(encoding, r)
		if err != nil {
			return nil, fmt.Errorf("results: encoding %q: %w", encoding, err)
		}
		r = decoded
	}
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	c := csv.NewReader(br)
	c.FieldsPerRecord = -1 // record kinds differ in length
	c.LazyQuotes = true    // stray quotes only matter in tagged records
	c.ReuseRecord = true
	return &Reader{csv: c}, nil
}

// Read returns the next NodePath, Boundary or Obstacle.
// Blank lines and unknown tags are skipped. It returns io.EOF at the end of input,
// and a *ParseError for a malformed tagged record.
func (r *Reader) Read() (Record, error) {
	for {
		row, err := r.csv.Read()
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				return nil, &ParseError{Line: csvErr.Line, Column: csvErr.Column, Err: csvErr.Err}
			}
			return nil, err
		}
		line, _ := r.csv.FieldPos(0)
		f := fields{row: row, line: line, csv: r.csv}

		var rec Record
		switch Tag(row[0]) {
		case TagNodePath:
			rec, err = f.nodePath()
		case TagBoundary:
			rec, err = f.boundary()
		case TagObstacle:
			rec, err = f.obstacle()
		default:
			r.Skipped++
			continue
		}
		if err != nil {
			return nil, err
		}
		return rec, nil
	}
}

// fields wraps the current row to report errors with positions
type fields struct {
	row  []string
	line int
	csv  *csv.Reader
}

func (f fields) error(col int, err error) *ParseError {
	pe := &ParseError{Line: f.line, Field: columnNames[col], Err: err}
	if col < len(f.row) {
		_, pe.Column = f.csv.FieldPos(col)
	}
	return pe
}

func (f fields) get(col int) (string, error) {
	if col >= len(f.row) {
		return "", f.error(col, fmt.Errorf("%w: got %d, need at least %d", ErrShortRecord, len(f.row), col+1))
	}
	return f.row[col], nil
}

func (f fields) float(col int) (float64, error) {
	s, err := f.get(col)
	if err != nil {
		return 0, err
	}
	v, err := parseFloat(strings.TrimSpace(s))
	if err != nil {
		return 0, f.error(col, fmt.Errorf("invalid number %q", s))
	}
	return v, nil
}

func (f fields) point(colX, colY int) (orb.Point, error) {
	x, err := f.float(colX)
	if err != nil {
		return orb.Point{}, err
	}
	y, err := f.float(colY)
	if err != nil {
		return orb.Point{}, err
	}
	return orb.Point{x, y}, nil
}

func (f fields) nodePath() (NodePath, error) {
	var (
		out NodePath
		err error
	)
	idx, err := f.float(colNodeIndex)
	if err != nil {
		return out, err
	}
	if math.IsNaN(idx) || math.IsInf(idx, 0) {
		return out, f.error(colNodeIndex, fmt.Errorf("invalid node index %v", idx))
	}
	out.Index = int(idx) // truncates toward zero
	if out.Start, err = f.point(colAgentX, colAgentY); err != nil {
		return out, err
	}
	if out.End, err = f.point(colTargetX, colTargetY); err != nil {
		return out, err
	}
	raw, err := f.get(colPath)
	if err != nil {
		return out, err
	}
	if t := strings.TrimSpace(raw); strings.HasPrefix(t, "[") && !strings.Contains(t, "]") {
		if joined, ok := f.unquotedPath(); ok {
			raw = joined
		}
	}
	if out.Path, err = DecodePath(raw); err != nil {
		return out, f.error(colPath, err)
	}
	logging.Debugf("line %d: node %d, %d waypoints, length %.3f", f.line, out.Index, len(out.Path), planar.Length(out.Path))
	return out, nil
}

// unquotedPath rebuilds a path list split over several fields
// because it was written without quotes. The remaining fields
// must be empty.
func (f fields) unquotedPath() (string, bool) {
	joined := strings.Join(f.row[colPath:], ",")
	end := strings.IndexByte(joined, ']')
	if end < 0 || strings.Trim(joined[end+1:], ", ") != "" {
		return "", false
	}
	return joined[:end+1], true
}

func (f fields) boundary() (Boundary, error) {
	var (
		out Boundary
		err error
	)
	if out.X0, err = f.float(colBoundaryX0); err != nil {
		return out, err
	}
	if out.X1, err = f.float(colBoundaryX1); err != nil {
		return out, err
	}
	if out.Y0, err = f.float(colBoundaryY0); err != nil {
		return out, err
	}
	if out.Y1, err = f.float(colBoundaryY1); err != nil {
		return out, err
	}
	return out, nil
}

func (f fields) obstacle() (Obstacle, error) {
	var (
		out Obstacle
		err error
	)
	if out.Center, err = f.point(colObstacleX, colObstacleY); err != nil {
		return out, err
	}
	if out.Radius, err = f.float(colObstacleRadius); err != nil {
		return out, err
	}
	return out, nil
}
