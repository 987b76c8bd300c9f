// Package results reads and writes the record files produced by the
// multi-agent pathfinding tool (results.csv).
//
// Each non blank line is a record whose first field is a tag selecting
// how the remaining columns are interpreted: a node path, the world
// boundary or a circular obstacle. Lines with any other tag are skipped.
package results

import (
	"github.com/paulmach/orb"
)

// Tag is the leading field of a record.
type Tag string

const (
	TagNodePath Tag = "1"
	TagBoundary Tag = "2"
	TagObstacle Tag = "3"
)

// column offsets, shared by every record kind
const (
	colTag = iota
	colNodeIndex
	colAgentX
	colAgentY
	colTargetX
	colTargetY
	colPath
	colObstacleX
	colObstacleY
	colObstacleRadius
	colBoundaryX0
	colBoundaryX1
	colBoundaryY0
	colBoundaryY1

	numColumns
)

var columnNames = [numColumns]string{
	"type", "node_idx", "agent_x", "agent_y", "target_x", "target_y",
	"path",
	"obstacle_x", "obstacle_y", "obstacle_rad",
	"boundary_x0", "boundary_x1", "boundary_y0", "boundary_y1",
}

// Record is one of NodePath, Boundary or Obstacle.
type Record interface {
	Tag() Tag
}

// NodePath is the path found for one agent.
type NodePath struct {
	Index int
	Start orb.Point // agent position
	End   orb.Point // target position
	Path  orb.LineString
}

// Boundary is the axis aligned rectangle bounding the world.
// Corners are kept as written: X0 > X1 is legal and yields an
// inverted axis when plotted.
type Boundary struct {
	X0, X1, Y0, Y1 float64
}

// Obstacle is a circular exclusion zone.
type Obstacle struct {
	Center orb.Point
	Radius float64
}

func (NodePath) Tag() Tag { return TagNodePath }
func (Boundary) Tag() Tag { return TagBoundary }
func (Obstacle) Tag() Tag { return TagObstacle }

// Min returns the (X0, Y0) corner.
func (b Boundary) Min() orb.Point { return orb.Point{b.X0, b.Y0} }

// Max returns the (X1, Y1) corner.
func (b Boundary) Max() orb.Point { return orb.Point{b.X1, b.Y1} }

// Bound returns the normalized rectangle.
func (b Boundary) Bound() orb.Bound {
	return orb.MultiPoint{b.Min(), b.Max()}.Bound()
}

// Set is the content of a results file, in file order.
type Set struct {
	Records []Record
}

// Nodes returns the node path records.
func (s *Set) Nodes() []NodePath {
	var out []NodePath
	for _, r := range s.Records {
		if n, ok := r.(NodePath); ok {
			out = append(out, n)
		}
	}
	return out
}

// Obstacles returns the obstacle records.
func (s *Set) Obstacles() []Obstacle {
	var out []Obstacle
	for _, r := range s.Records {
		if o, ok := r.(Obstacle); ok {
			out = append(out, o)
		}
	}
	return out
}

// Boundary returns the last boundary record, which is the one that
// determines the visible extent.
func (s *Set) Boundary() (Boundary, bool) {
	for i := len(s.Records) - 1; i >= 0; i-- {
		if b, ok := s.Records[i].(Boundary); ok {
			return b, true
		}
	}
	return Boundary{}, false
}
