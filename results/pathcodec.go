package results

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// This file implements the encoding of the path column:
// an ordered list of (x,y) pairs such as [(0,0),(2.5,2),(5,5)].
// The list may also be delimited by parenthesis, and a trailing
// comma is accepted before the closing delimiter.
// A WKT LINESTRING is accepted as well.

// parseFloat accepts the decimal syntax only: hexadecimal
// mantissas and digit separators are rejected.
func parseFloat(s string) (float64, error) {
	if strings.ContainsAny(s, "_xX") {
		return 0, fmt.Errorf("invalid syntax %q", s)
	}
	return strconv.ParseFloat(s, 64)
}

// DecodePath parses a path field. The returned error wraps ErrMalformedPath.
func DecodePath(field string) (orb.LineString, error) {
	trimmed := strings.TrimSpace(field)
	if len(trimmed) >= len("LINESTRING") && strings.EqualFold(trimmed[:len("LINESTRING")], "LINESTRING") {
		ls, err := wkt.UnmarshalLineString(trimmed)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPath, err)
		}
		if len(ls) == 0 {
			return nil, fmt.Errorf("%w: empty path", ErrMalformedPath)
		}
		return ls, nil
	}

	sc := pathScanner{src: field}
	return sc.list()
}

// EncodePath returns the textual form of `path`, using the shortest
// float representation which decodes back to the same value.
func EncodePath(path orb.LineString) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, p := range path {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('(')
		sb.WriteString(strconv.FormatFloat(p[0], 'g', -1, 64))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(p[1], 'g', -1, 64))
		sb.WriteByte(')')
	}
	sb.WriteByte(']')
	return sb.String()
}

type pathScanner struct {
	src string
	pos int
}

func (sc *pathScanner) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s (offset %d in %q)", ErrMalformedPath, fmt.Sprintf(format, args...), sc.pos, sc.src)
}

func (sc *pathScanner) skipSpace() {
	for sc.pos < len(sc.src) {
		switch sc.src[sc.pos] {
		case ' ', '\t', '\r', '\n':
			sc.pos++
		default:
			return
		}
	}
}

// peek returns the next non space byte, or 0 at the end of input
func (sc *pathScanner) peek() byte {
	sc.skipSpace()
	if sc.pos >= len(sc.src) {
		return 0
	}
	return sc.src[sc.pos]
}

func (sc *pathScanner) expect(c byte) error {
	if got := sc.peek(); got != c {
		if got == 0 {
			return sc.errorf("expected %q, got end of input", c)
		}
		return sc.errorf("expected %q, got %q", c, got)
	}
	sc.pos++
	return nil
}

func isNumberEnd(c byte) bool {
	switch c {
	case ',', '(', ')', '[', ']', ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

func (sc *pathScanner) number() (float64, error) {
	sc.skipSpace()
	start := sc.pos
	for sc.pos < len(sc.src) && !isNumberEnd(sc.src[sc.pos]) {
		sc.pos++
	}
	tok := sc.src[start:sc.pos]
	if tok == "" {
		return 0, sc.errorf("expected a number")
	}
	f, err := parseFloat(tok)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		sc.pos = start
		return 0, sc.errorf("invalid number %q", tok)
	}
	return f, nil
}

func (sc *pathScanner) pair() (orb.Point, error) {
	var p orb.Point
	if err := sc.expect('('); err != nil {
		return p, err
	}
	var err error
	if p[0], err = sc.number(); err != nil {
		return p, err
	}
	if err = sc.expect(','); err != nil {
		return p, err
	}
	if p[1], err = sc.number(); err != nil {
		return p, err
	}
	return p, sc.expect(')')
}

func (sc *pathScanner) list() (orb.LineString, error) {
	var closing byte
	switch sc.peek() {
	case '[':
		closing = ']'
	case '(':
		closing = ')'
	case 0:
		return nil, sc.errorf("empty field")
	default:
		return nil, sc.errorf("expected '[' or '('")
	}
	sc.pos++

	var path orb.LineString
	for {
		if sc.peek() == closing {
			sc.pos++
			break
		}
		if len(path) > 0 {
			if err := sc.expect(','); err != nil {
				return nil, err
			}
			if sc.peek() == closing { // trailing comma
				sc.pos++
				break
			}
		}
		p, err := sc.pair()
		if err != nil {
			return nil, err
		}
		path = append(path, p)
	}

	if sc.peek() != 0 {
		return nil, sc.errorf("unexpected trailing content")
	}
	if len(path) == 0 {
		return nil, sc.errorf("empty path")
	}
	return path, nil
}
