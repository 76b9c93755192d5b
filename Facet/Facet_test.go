package Facet

import "testing"

// 人字屋顶线框：两条共线的底边、两条山墙立边、屋脊、
// 两条斜坡边与檐口，构成两个平面片
func gableSegments() []Segment {
	a := Coordinate{0, 0, 0}
	b := Coordinate{7, 0, 0}
	c := Coordinate{10, 0, 0}
	d := Coordinate{10, 25, 15}
	e := Coordinate{0, 25, 15}
	f := Coordinate{0, 5, -5}
	g := Coordinate{7, 5, -5}
	return []Segment{
		{A: a, B: b},
		{A: b, B: c},
		{A: a, B: e},
		{A: c, B: d},
		{A: e, B: d},
		{A: a, B: f},
		{A: b, B: g},
		{A: f, B: g},
	}
}

func TestCollectPathsTwoPlanes(t *testing.T) {
	paths := CollectPaths(gableSegments(), 0.1)
	if len(paths) != 2 {
		t.Fatalf("facet count = %d, want 2", len(paths))
	}

	lengths := map[int]int{}
	for _, path := range paths {
		lengths[path.Len()]++
	}
	if lengths[5] != 1 || lengths[4] != 1 {
		t.Errorf("facet sizes = %v, want one quad and one pentagon", lengths)
	}
}

func TestCollectPathsDeadEnds(t *testing.T) {
	// 去掉檐口后两条斜坡边成为悬挂边，只剩一个平面片
	segments := gableSegments()[:7]
	paths := CollectPaths(segments, 0.1)
	if len(paths) != 1 {
		t.Fatalf("facet count = %d, want 1", len(paths))
	}
	if paths[0].Len() != 5 {
		t.Errorf("facet size = %d, want 5", paths[0].Len())
	}
}

func TestCollectPathsEmptyInput(t *testing.T) {
	if paths := CollectPaths(nil, 0.1); len(paths) != 0 {
		t.Errorf("facet count = %d, want 0", len(paths))
	}
}

func TestCollectPathsPlanarity(t *testing.T) {
	for _, epsilon := range DefaultLadder {
		for _, path := range CollectPaths(gableSegments(), epsilon) {
			if deviation := path.MaxPlanarDeviation(); deviation > epsilon {
				t.Errorf("epsilon %v: planar deviation = %v", epsilon, deviation)
			}
		}
	}
}

func TestReconstructFacetsGable(t *testing.T) {
	paths := ReconstructFacets(gableSegments(), DefaultLadder)
	if len(paths) != 2 {
		t.Fatalf("facet count = %d, want 2", len(paths))
	}

	// 输出中不允许出现旋转或反向等价的重复面
	set := NewPathSet()
	for _, path := range paths {
		if !set.Insert(path) {
			t.Errorf("duplicate facet in output: %v", path.Sequence)
		}
	}
}

func TestReconstructFacetsOrderIndependence(t *testing.T) {
	segments := gableSegments()
	shuffled := make([]Segment, len(segments))
	for i, segment := range segments {
		// 反转线段顺序并交换端点
		shuffled[len(segments)-1-i] = Segment{A: segment.B, B: segment.A}
	}

	base := ReconstructFacets(segments, DefaultLadder)
	permuted := ReconstructFacets(shuffled, DefaultLadder)
	if len(base) != len(permuted) {
		t.Fatalf("facet count %d != %d", len(base), len(permuted))
	}

	keys := make(map[string]bool, len(base))
	for _, path := range base {
		keys[CanonicalKey(path.Sequence)] = true
	}
	for _, path := range permuted {
		if !keys[CanonicalKey(path.Sequence)] {
			t.Errorf("facet %v missing from baseline", path.Sequence)
		}
	}
}

func TestReconstructFacetsEmptyLadderUsesDefault(t *testing.T) {
	paths := ReconstructFacets(gableSegments(), nil)
	if len(paths) != 2 {
		t.Fatalf("facet count = %d, want 2", len(paths))
	}
}
