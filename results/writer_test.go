package results

import (
	"bytes"
	"strings"
	"testing"

	"github.com/paulmach/orb"
)

func TestWriteSetReadBack(t *testing.T) {
	in := &Set{Records: []Record{
		NodePath{Index: 0, Start: orb.Point{0.2, 1}, End: orb.Point{9.9, 9.9}, Path: orb.LineString{{0.2, 1}, {1.0 / 3, 7.25}, {9.9, 9.9}}},
		Obstacle{Center: orb.Point{3, 7}, Radius: 2.99},
		NodePath{Index: 1, Start: orb.Point{2.5, 0.5}, End: orb.Point{9.8, 9.7}, Path: orb.LineString{{2.5, 0.5}, {9.8, 9.7}}},
		Boundary{X0: 0, X1: 10, Y0: 0, Y1: 10},
	}}

	var buf bytes.Buffer
	if err := WriteSet(&buf, in); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header + 4 rows, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "type,node_idx,") || !strings.HasPrefix(lines[1], "2,") || !strings.HasPrefix(lines[4], "3,") {
		t.Errorf("unexpected row order:\n%s", buf.String())
	}
	if lines[1] != "2,,,,,,,,,,0,10,0,10" {
		t.Errorf("unexpected boundary row %q", lines[1])
	}

	out, err := Read(&buf, LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(out.Records))
	}
	for i, n := range out.Nodes() {
		want := in.Nodes()[i]
		if n.Index != want.Index || n.Start != want.Start || n.End != want.End || !n.Path.Equal(want.Path) {
			t.Errorf("node %d: got %+v, want %+v", i, n, want)
		}
	}
	if got := out.Obstacles(); len(got) != 1 || got[0] != in.Obstacles()[0] {
		t.Errorf("unexpected obstacles %v", got)
	}
}
