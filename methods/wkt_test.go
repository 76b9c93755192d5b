package methods

import (
	"strings"
	"testing"

	"github.com/GrainArc/RoofLine/Facet"
)

func TestParseLineStringZ(t *testing.T) {
	segment, err := ParseLineStringZ("LINESTRING (0 0 0, 7 0 0)")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := Facet.Segment{A: Facet.Coordinate{X: 0, Y: 0, Z: 0}, B: Facet.Coordinate{X: 7}}
	if segment != want {
		t.Errorf("segment = %v, want %v", segment, want)
	}

	// 标签大小写与空白宽容
	if _, err := ParseLineStringZ("  linestring ( 1 2 3 , 4 5 6 )  "); err != nil {
		t.Errorf("lenient parse failed: %v", err)
	}
}

func TestParseLineStringZErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"missing tag", "(0 0 0, 1 1 1)"},
		{"wrong tag", "POLYGON ((0 0 0, 1 1 1))"},
		{"one point", "LINESTRING (0 0 0)"},
		{"three points", "LINESTRING (0 0 0, 1 0 0, 2 0 0)"},
		{"missing z", "LINESTRING (0 0, 1 1)"},
		{"four components", "LINESTRING (0 0 0 0, 1 1 1 1)"},
		{"not a number", "LINESTRING (0 0 zero, 1 1 1)"},
		{"nan", "LINESTRING (0 0 NaN, 1 1 1)"},
		{"infinite", "LINESTRING (0 0 +Inf, 1 1 1)"},
		{"zero length", "LINESTRING (3 3 3, 3 3 3)"},
		{"unbalanced", "LINESTRING (0 0 0, 1 1 1"},
	}
	for _, tc := range cases {
		if _, err := ParseLineStringZ(tc.text); err == nil {
			t.Errorf("%s: %q accepted", tc.name, tc.text)
		}
	}
}

func TestParseLineStringsAllOrNothing(t *testing.T) {
	lines := []string{
		"LINESTRING (0 0 0, 7 0 0)",
		"LINESTRING (bad)",
	}
	if _, err := ParseLineStrings(lines); err == nil {
		t.Fatal("batch with one bad line accepted")
	}

	segments, err := ParseLineStrings(lines[:1])
	if err != nil {
		t.Fatalf("valid batch rejected: %v", err)
	}
	if len(segments) != 1 {
		t.Errorf("segment count = %d, want 1", len(segments))
	}
}

func TestLineStringZRoundTrip(t *testing.T) {
	original := Facet.Segment{
		A: Facet.Coordinate{X: 0.005, Y: 25.25, Z: -5},
		B: Facet.Coordinate{X: 10, Y: 0.1, Z: 15.75},
	}
	parsed, err := ParseLineStringZ(LineStringZString(original))
	if err != nil {
		t.Fatalf("round trip parse failed: %v", err)
	}
	if parsed != original {
		t.Errorf("round trip changed segment: %v != %v", parsed, original)
	}
}

func TestPolygonZRoundTrip(t *testing.T) {
	path := Facet.NewPath([]Facet.Coordinate{
		{X: 0, Y: 0, Z: 0},
		{X: 7, Y: 0, Z: 0},
		{X: 7, Y: 5, Z: -5},
		{X: 0, Y: 5, Z: -5},
	})
	text := PolygonZString(path)
	if strings.Count(text, ",") != 3 {
		t.Errorf("polygon text repeats the closing point: %q", text)
	}

	parsed, err := ParsePolygonZ(text)
	if err != nil {
		t.Fatalf("round trip parse failed: %v", err)
	}
	if Facet.CanonicalKey(parsed.Sequence) != Facet.CanonicalKey(path.Sequence) {
		t.Errorf("round trip changed polygon: %v", parsed.Sequence)
	}
}

func TestParsePolygonZClosedRing(t *testing.T) {
	// 闭合写法的环去掉重复首点
	parsed, err := ParsePolygonZ("POLYGON ((0 0 0, 1 0 0, 1 1 0, 0 0 0))")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if parsed.Len() != 3 {
		t.Errorf("vertex count = %d, want 3", parsed.Len())
	}

	if _, err := ParsePolygonZ("POLYGON ((0 0 0, 1 0 0))"); err == nil {
		t.Error("two-vertex polygon accepted")
	}
	if _, err := ParsePolygonZ("POLYGON (0 0 0, 1 0 0, 1 1 0)"); err == nil {
		t.Error("polygon without ring parentheses accepted")
	}
}
