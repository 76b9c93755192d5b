package Facet

import "math"

// PathBuilder 在转移图上枚举全部简单闭合回路
// 采用显式栈的深度优先遍历，避免大型线框下的递归深度问题
type PathBuilder struct {
	graph *PathGraph
	paths *PathSet
	stack []Coordinate
	seen  map[Coordinate]int
}

// frame 深度优先遍历的一层：当前有向边、携带平面、下一个待尝试的转移下标
type frame struct {
	edge  DirectedEdge
	plane PlaneMatcher
	next  int
}

// NewPathBuilder 绑定转移图
func NewPathBuilder(graph *PathGraph) *PathBuilder {
	return &PathBuilder{
		graph: graph,
		paths: NewPathSet(),
		seen:  make(map[Coordinate]int),
	}
}

// Build 以每条有向边为起点枚举回路，结果已去除旋转与反向重复
func (b *PathBuilder) Build() []Path {
	for _, edge := range b.graph.Edges() {
		b.traverse(edge)
	}
	return b.paths.Paths()
}

// traverse 从一条起始边出发做显式栈深搜
// 栈中保存各层的出发顶点；走到已入栈顶点即得到一条闭合回路
func (b *PathBuilder) traverse(start DirectedEdge) {
	b.stack = b.stack[:0]
	for key := range b.seen {
		delete(b.seen, key)
	}
	b.push(start.From)
	frames := []frame{{edge: start, plane: UndefinedPlane(b.graph.Epsilon)}}

	for len(frames) > 0 {
		current := &frames[len(frames)-1]
		head := current.edge.To
		transitions := b.graph.Transitions(current.edge)
		advanced := false
		for current.next < len(transitions) {
			transition := transitions[current.next]
			current.next++
			plane, ok := transition.Plane.MatchAgainst(current.plane, len(transitions) == 1)
			if !ok {
				continue
			}
			destination := transition.Successor.To
			if index, closed := b.seen[destination]; closed {
				// 闭合：回路由栈上 index 起的顶点加上当前顶点构成
				// 两顶点往返的退化回路在此被长度约束排除
				cycle := len(b.stack) - index + 1
				if cycle >= 3 {
					sequence := make([]Coordinate, 0, cycle)
					sequence = append(sequence, b.stack[index:]...)
					sequence = append(sequence, head)
					b.save(sequence, plane)
				}
				continue
			}
			b.push(head)
			frames = append(frames, frame{edge: transition.Successor, plane: plane})
			advanced = true
			break
		}
		if !advanced {
			frames = frames[:len(frames)-1]
			b.pop()
		}
	}
}

func (b *PathBuilder) push(c Coordinate) {
	b.seen[c] = len(b.stack)
	b.stack = append(b.stack, c)
}

func (b *PathBuilder) pop() {
	if len(b.stack) == 0 {
		return
	}
	last := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	delete(b.seen, last)
}

// save 校验回路在其平面上的有效性后归一化方向并入集
func (b *PathBuilder) save(sequence []Coordinate, plane PlaneMatcher) {
	path := NewPath(sequence)
	if !path.ValidOn(plane, b.graph.Epsilon) {
		return
	}
	b.paths.Insert(path.OrientUp())
}

// interiorAngleSum 回路在给定平面上的内角和
func (p Path) interiorAngleSum(plane PlaneMatcher) (float64, bool) {
	n := len(p.Sequence)
	total := 0.0
	for i := 0; i < n; i++ {
		a := p.Sequence[i]
		b := p.Sequence[(i+1)%n]
		c := p.Sequence[(i+2)%n]
		angle, ok := plane.ProjectedAngle(
			DirectedEdge{From: a, To: b}.Vec(),
			DirectedEdge{From: b, To: c}.Vec(),
		)
		if !ok {
			return 0, false
		}
		total += angle
	}
	return total, true
}

// ValidOn 简单多边形的内角和为 (n-2)π，偏差超出容差的回路丢弃
// 该检验同时排除自交回路与反向遍历
func (p Path) ValidOn(plane PlaneMatcher, tolerance float64) bool {
	n := len(p.Sequence)
	if n < 3 {
		return false
	}
	total, ok := p.interiorAngleSum(plane)
	if !ok {
		return false
	}
	return math.Abs(total-math.Pi*float64(n-2)) <= tolerance
}

// OrientUp 回路法向 z 为负时反转遍历方向，统一输出朝向
func (p Path) OrientUp() Path {
	n := len(p.Sequence)
	for i := 0; i < n; i++ {
		a := p.Sequence[i]
		b := p.Sequence[(i+1)%n]
		c := p.Sequence[(i+2)%n]
		normal, ok := DirectedEdge{From: a, To: b}.Vec().Normal(DirectedEdge{From: b, To: c}.Vec(), 0)
		if !ok {
			continue
		}
		if normal.Z < 0 {
			return p.Reversed()
		}
		return p
	}
	return p
}

// MaxPlanarDeviation 回路上相邻三点法向两两间的最大偏差
// 用于验证回路确实落在单一平面内
func (p Path) MaxPlanarDeviation() float64 {
	n := len(p.Sequence)
	var reference Vector
	defined := false
	deviation := 0.0
	for i := 0; i < n; i++ {
		a := p.Sequence[i]
		b := p.Sequence[(i+1)%n]
		c := p.Sequence[(i+2)%n]
		normal, ok := DirectedEdge{From: a, To: b}.Vec().Normal(DirectedEdge{From: b, To: c}.Vec(), 0)
		if !ok {
			continue
		}
		if normal.Z < 0 {
			normal = normal.Scale(-1)
		}
		if !defined {
			reference = normal
			defined = true
			continue
		}
		if d := reference.Cross(normal).Norm(); d > deviation {
			deviation = d
		}
	}
	return deviation
}
