package Facet

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// planeTolerance 复合面判定中平面一致性的容差，与最粗容差档一致
const planeTolerance = 0.5

// Polygon 候选面及其用于包含检查的 XY 投影与单位法向
type Polygon struct {
	Path      Path
	ring      orb.Ring
	bound     orb.Bound
	normal    Vector
	hasNormal bool
}

// NewPolygon 构建候选面，投影环按 GeoJSON 约定闭合
// 法向取首个非共线顶点三元组的叉积，z 统一为非负方向
func NewPolygon(path Path) Polygon {
	ring := make(orb.Ring, 0, len(path.Sequence)+1)
	for _, c := range path.Sequence {
		ring = append(ring, orb.Point{c.X, c.Y})
	}
	if len(ring) > 0 {
		ring = append(ring, ring[0])
	}
	polygon := Polygon{Path: path, ring: ring, bound: ring.Bound()}
	n := len(path.Sequence)
	for i := 0; i < n; i++ {
		a := path.Sequence[i]
		b := path.Sequence[(i+1)%n]
		c := path.Sequence[(i+2)%n]
		normal, ok := DirectedEdge{From: a, To: b}.Vec().Normal(DirectedEdge{From: b, To: c}.Vec(), 0)
		if !ok {
			continue
		}
		if normal.Z < 0 {
			normal = normal.Scale(-1)
		}
		polygon.normal = normal
		polygon.hasNormal = true
		break
	}
	return polygon
}

// samePlaneAs 两候选面是否落在同一平面
// 复合关系只在共面候选面之间成立，XY 投影上的嵌套不构成证据
func (p Polygon) samePlaneAs(other Polygon) bool {
	if !p.hasNormal || !other.hasNormal {
		return false
	}
	return p.normal.IsParallelTo(other.normal, planeTolerance)
}

// Bound 候选面的 XY 包围盒
func (p Polygon) Bound() orb.Bound {
	return p.bound
}

func (p Polygon) containsBoundOf(other Polygon) bool {
	return p.bound.Min[0] <= other.bound.Min[0] &&
		p.bound.Max[0] >= other.bound.Max[0] &&
		p.bound.Min[1] <= other.bound.Min[1] &&
		p.bound.Max[1] >= other.bound.Max[1]
}

// containsPoint 顶点精确命中或射线法判定在投影环内
func (p Polygon) containsPoint(c Coordinate) bool {
	if p.Path.Contains(c) {
		return true
	}
	return planar.RingContains(p.ring, orb.Point{c.X, c.Y})
}

// Contains 另一候选面的全部顶点都落在本面投影内
func (p Polygon) Contains(other Polygon) bool {
	if !p.containsBoundOf(other) {
		return false
	}
	for _, c := range other.Path.Sequence {
		if !p.containsPoint(c) {
			return false
		}
	}
	return true
}

// SharesSideWith 两候选面存在同向公共边
// 方向已在枚举阶段归一化，包含关系成立时同向公共边意味着边界重合
func (p Polygon) SharesSideWith(other Polygon) bool {
	n := len(p.Path.Sequence)
	m := len(other.Path.Sequence)
	for i := 0; i < n; i++ {
		a := p.Path.Sequence[i]
		b := p.Path.Sequence[(i+1)%n]
		for j := 0; j < m; j++ {
			if a == other.Path.Sequence[j] && b == other.Path.Sequence[(j+1)%m] {
				return true
			}
		}
	}
	return false
}

// isComposite 本面与另一候选面共面、包含且共边，即可由更小的面拼出
func isComposite(polygon Polygon, self int, polygons []Polygon) bool {
	for j := range polygons {
		if j == self {
			continue
		}
		if polygon.samePlaneAs(polygons[j]) &&
			polygon.Contains(polygons[j]) && polygon.SharesSideWith(polygons[j]) {
			return true
		}
	}
	return false
}

// FilterFundamental 朴素参考实现：逐一检查候选面是否为复合面
// 按插入顺序迭代，复合面被剔除，保留更小更早发现的面
func FilterFundamental(polygons []Polygon) []Polygon {
	kept := make([]Polygon, 0, len(polygons))
	for i := range polygons {
		if !isComposite(polygons[i], i, polygons) {
			kept = append(kept, polygons[i])
		}
	}
	return kept
}

// treeItem 候选面在 R 树中的条目
type treeItem struct {
	rect  rtreego.Rect
	index int
}

func (t *treeItem) Bounds() rtreego.Rect {
	return t.rect
}

// boundRect XY 包围盒转 R 树矩形，退化维度补一个极小宽度
func boundRect(bound orb.Bound) rtreego.Rect {
	lengths := []float64{
		bound.Max[0] - bound.Min[0],
		bound.Max[1] - bound.Min[1],
	}
	for i, length := range lengths {
		if length <= 0 {
			lengths[i] = 1e-9
		}
	}
	rect, _ := rtreego.NewRect(rtreego.Point{bound.Min[0], bound.Min[1]}, lengths)
	return rect
}

// FilterFundamentalIndexed 与 FilterFundamental 契约一致
// 用 R 树把包含检查限制在包围盒相交的候选面之间
func FilterFundamentalIndexed(polygons []Polygon) []Polygon {
	if len(polygons) < 2 {
		return polygons
	}
	tree := rtreego.NewTree(2, 2, 8)
	for i := range polygons {
		tree.Insert(&treeItem{rect: boundRect(polygons[i].bound), index: i})
	}
	kept := make([]Polygon, 0, len(polygons))
	for i := range polygons {
		composite := false
		for _, spatial := range tree.SearchIntersect(boundRect(polygons[i].bound)) {
			j := spatial.(*treeItem).index
			if j == i {
				continue
			}
			if polygons[i].samePlaneAs(polygons[j]) &&
				polygons[i].Contains(polygons[j]) && polygons[i].SharesSideWith(polygons[j]) {
				composite = true
				break
			}
		}
		if !composite {
			kept = append(kept, polygons[i])
		}
	}
	return kept
}
