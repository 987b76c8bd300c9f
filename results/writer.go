package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Writer emits records in the layout read by Reader: every row has
// the full set of columns, unused ones left empty.
type Writer struct {
	csv *csv.Writer
}

// NewWriter returns a Writer writing to `w`.
// Call Flush once done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

func formatNumber(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// WriteHeader writes the column names row. Readers skip it, since
// "type" is not a known tag.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columnNames[:])
}

// Write writes one record.
func (w *Writer) Write(rec Record) error {
	var row [numColumns]string
	row[colTag] = string(rec.Tag())
	switch rec := rec.(type) {
	case NodePath:
		row[colNodeIndex] = strconv.Itoa(rec.Index)
		row[colAgentX], row[colAgentY] = formatNumber(rec.Start[0]), formatNumber(rec.Start[1])
		row[colTargetX], row[colTargetY] = formatNumber(rec.End[0]), formatNumber(rec.End[1])
		row[colPath] = EncodePath(rec.Path)
	case Boundary:
		row[colBoundaryX0], row[colBoundaryX1] = formatNumber(rec.X0), formatNumber(rec.X1)
		row[colBoundaryY0], row[colBoundaryY1] = formatNumber(rec.Y0), formatNumber(rec.Y1)
	case Obstacle:
		row[colObstacleX], row[colObstacleY] = formatNumber(rec.Center[0]), formatNumber(rec.Center[1])
		row[colObstacleRadius] = formatNumber(rec.Radius)
	default:
		return fmt.Errorf("results: unsupported record type %T", rec)
	}
	return w.csv.Write(row[:])
}

// Flush writes any buffered data and reports the first write error.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

// WriteSet writes a header followed by the records of `set`,
// in the order the pathfinding tool prints them: boundary, nodes, obstacles.
func WriteSet(out io.Writer, set *Set) error {
	w := NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	for _, tag := range [...]Tag{TagBoundary, TagNodePath, TagObstacle} {
		for _, rec := range set.Records {
			if rec.Tag() != tag {
				continue
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}
