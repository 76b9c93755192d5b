package Facet

// CollectPaths 单个容差下构图并枚举回路
func CollectPaths(segments []Segment, epsilon float64) []Path {
	graph := NewPathGraphBuilder(segments, epsilon).Build()
	return NewPathBuilder(graph).Build()
}

// ReconstructFacets 按容差阶梯重建基本面
// 各容差的回路按阶梯顺序汇入去重集合，再剔除可由更小面拼出的复合面
func ReconstructFacets(segments []Segment, ladder []float64) []Path {
	if len(ladder) == 0 {
		ladder = DefaultLadder
	}
	set := NewPathSet()
	for _, epsilon := range ladder {
		for _, path := range CollectPaths(segments, epsilon) {
			set.Insert(path)
		}
	}
	polygons := make([]Polygon, 0, set.Len())
	for _, path := range set.Paths() {
		polygons = append(polygons, NewPolygon(path))
	}
	kept := FilterFundamental(polygons)
	paths := make([]Path, 0, len(kept))
	for _, polygon := range kept {
		paths = append(paths, polygon.Path)
	}
	return paths
}
