package results

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestDecodePath(t *testing.T) {
	for _, test := range []struct {
		in   string
		want orb.LineString
	}{
		{"[(0,0),(2,2),(5,5)]", orb.LineString{{0, 0}, {2, 2}, {5, 5}}},
		{" [ (0.2, 1.0) , (2.5,-0.5e1) ] ", orb.LineString{{0.2, 1}, {2.5, -5}}},
		{"((1,2),(3,4),)", orb.LineString{{1, 2}, {3, 4}}},
		{"[(7,8)]", orb.LineString{{7, 8}}},
		{"LINESTRING(0 0, 1 1.5)", orb.LineString{{0, 0}, {1, 1.5}}},
	} {
		got, err := DecodePath(test.in)
		if err != nil {
			t.Errorf("DecodePath(%q): %s", test.in, err)
			continue
		}
		if !got.Equal(test.want) {
			t.Errorf("DecodePath(%q) = %v, want %v", test.in, got, test.want)
		}
	}
}

func TestDecodePathInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"[]",
		"not a path",
		"[(0,0),(1,1)",
		"[(0,0)(1,1)]",
		"[(0,0),(1,1)] trailing",
		"(0,0)",
		"[(0,0,0)]",
		"[(a,b)]",
		"[(nan,0)]",
		"[(1,inf)]",
		"[(0x1p3,0)]",
		"[(1_0,0)]",
		"__import__('os').system('true')",
		"LINESTRING EMPTY",
	} {
		if _, err := DecodePath(in); !errors.Is(err, ErrMalformedPath) {
			t.Errorf("DecodePath(%q): expected ErrMalformedPath, got %v", in, err)
		}
	}
}

func TestPathRoundTrip(t *testing.T) {
	for _, path := range []orb.LineString{
		{{0, 0}, {2, 2}, {5, 5}},
		{{0.1, 0.2}, {1.0 / 3, 2.0 / 3}, {-9.875, 1e-7}},
		{{math.MaxFloat64, -math.SmallestNonzeroFloat64}},
		{{4, 7}, {3.0000000000000004, 9.99}, {9.9, 9.9}},
	} {
		got, err := DecodePath(EncodePath(path))
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != len(path) {
			t.Fatalf("expected %d points, got %d", len(path), len(got))
		}
		for i := range path {
			if got[i] != path[i] {
				t.Errorf("point %d: %v != %v", i, got[i], path[i])
			}
		}
	}
}

func TestEncodePath(t *testing.T) {
	if got := EncodePath(orb.LineString{{0, 0}, {2.5, 2}, {5, 5}}); got != "[(0,0),(2.5,2),(5,5)]" {
		t.Errorf("unexpected encoding %s", got)
	}
}
