package Facet

import "math"

// Transition 某个(顶点,入边)状态下沿某一平面的唯一后继
// 每个平面分组只保留投影转角最小的出边，即同一平面内最紧的转向
type Transition struct {
	Plane     PlaneMatcher
	Successor DirectedEdge
}

// PathGraph 单个容差下的转移图，构建后只读
type PathGraph struct {
	Epsilon     float64
	order       []DirectedEdge
	transitions map[DirectedEdge][]Transition
}

// Edges 全部有向边，按插入顺序返回，保证枚举确定性
func (g *PathGraph) Edges() []DirectedEdge {
	return g.order
}

// Transitions 给定有向边的合法延续
func (g *PathGraph) Transitions(edge DirectedEdge) []Transition {
	return g.transitions[edge]
}

// PathGraphBuilder 由线段集合构建顶点邻接关系
type PathGraphBuilder struct {
	epsilon   float64
	order     []Coordinate
	adjacency map[Coordinate][]Coordinate
}

// NewPathGraphBuilder 建立邻接表并剔除悬挂顶点
func NewPathGraphBuilder(segments []Segment, epsilon float64) *PathGraphBuilder {
	builder := &PathGraphBuilder{
		epsilon:   epsilon,
		adjacency: make(map[Coordinate][]Coordinate),
	}
	for _, segment := range segments {
		builder.link(segment.A, segment.B)
		builder.link(segment.B, segment.A)
	}
	builder.pruneDeadEnds()
	return builder
}

func (b *PathGraphBuilder) link(u, v Coordinate) {
	neighbors, ok := b.adjacency[u]
	if !ok {
		b.order = append(b.order, u)
	}
	for _, w := range neighbors {
		if w == v {
			return
		}
	}
	b.adjacency[u] = append(neighbors, v)
}

func (b *PathGraphBuilder) unlink(u, v Coordinate) {
	neighbors := b.adjacency[u]
	for i, w := range neighbors {
		if w == v {
			b.adjacency[u] = append(neighbors[:i], neighbors[i+1:]...)
			return
		}
	}
}

// pruneDeadEnds 迭代剔除度为 1 的顶点
// 悬挂边不可能出现在闭合回路中，剔除后可能产生新的悬挂顶点
func (b *PathGraphBuilder) pruneDeadEnds() {
	var leaves []Coordinate
	for _, u := range b.order {
		if len(b.adjacency[u]) == 1 {
			leaves = append(leaves, u)
		}
	}
	for len(leaves) > 0 {
		var updated []Coordinate
		for _, leaf := range leaves {
			neighbors, ok := b.adjacency[leaf]
			if !ok {
				continue
			}
			if len(neighbors) > 0 {
				adjacent := neighbors[0]
				if len(b.adjacency[adjacent]) <= 2 {
					updated = append(updated, adjacent)
				}
				b.unlink(adjacent, leaf)
			}
			delete(b.adjacency, leaf)
		}
		leaves = updated
	}
}

// planeGroup 入边的一个平面分组，只记录转角最小的后继
type planeGroup struct {
	plane PlaneMatcher
	angle float64
	best  DirectedEdge
}

// Build 生成转移图
// 对每个(顶点,入边)状态，将出边按平面分组；共线出边平面未定，
// 补充进所有已有分组并自成一组
func (b *PathGraphBuilder) Build() *PathGraph {
	graph := &PathGraph{
		Epsilon:     b.epsilon,
		transitions: make(map[DirectedEdge][]Transition),
	}
	groups := make(map[DirectedEdge][]planeGroup)
	seen := make(map[DirectedEdge]struct{})
	undefinedNext := make(map[DirectedEdge]DirectedEdge)
	var undefinedOrder []DirectedEdge

	touch := func(edge DirectedEdge) {
		if _, ok := seen[edge]; !ok {
			seen[edge] = struct{}{}
			graph.order = append(graph.order, edge)
		}
	}

	for _, intersection := range b.order {
		neighbors, ok := b.adjacency[intersection]
		if !ok {
			continue
		}
		for _, u := range neighbors {
			incident := DirectedEdge{From: u, To: intersection}
			touch(incident)
			for _, v := range neighbors {
				if u == v {
					continue
				}
				adjacent := DirectedEdge{From: intersection, To: v}
				touch(adjacent)
				plane := PlaneBetween(incident.Vec(), adjacent.Vec(), b.epsilon)
				if !plane.IsDefined() {
					if _, dup := undefinedNext[incident]; !dup {
						undefinedOrder = append(undefinedOrder, incident)
					}
					undefinedNext[incident] = adjacent
					continue
				}
				b.assign(groups, incident, plane, adjacent)
			}
		}
	}

	// 共线延伸补充到每个平面分组，并追加未定分组
	for _, incident := range undefinedOrder {
		adjacent := undefinedNext[incident]
		for i := range groups[incident] {
			group := &groups[incident][i]
			angle := math.Inf(-1)
			if a, ok := group.plane.ProjectedAngle(incident.Vec(), adjacent.Vec()); ok {
				angle = a
			}
			if angle < group.angle {
				group.angle = angle
				group.best = adjacent
			}
		}
		groups[incident] = append(groups[incident], planeGroup{
			plane: UndefinedPlane(b.epsilon),
			angle: math.Inf(-1),
			best:  adjacent,
		})
	}

	for _, edge := range graph.order {
		edgeGroups := groups[edge]
		if len(edgeGroups) == 0 {
			continue
		}
		transitions := make([]Transition, 0, len(edgeGroups))
		for _, group := range edgeGroups {
			transitions = append(transitions, Transition{Plane: group.plane, Successor: group.best})
		}
		graph.transitions[edge] = transitions
	}
	return graph
}

// assign 将出边并入偏差最小且在容差内的平面分组，否则新建分组
func (b *PathGraphBuilder) assign(groups map[DirectedEdge][]planeGroup, incident DirectedEdge, plane PlaneMatcher, adjacent DirectedEdge) {
	matching := -1
	coplanarity := math.Inf(1)
	for i := range groups[incident] {
		if value, ok := groups[incident][i].plane.Coplanarity(plane); ok {
			if value < coplanarity && value <= b.epsilon {
				coplanarity = value
				matching = i
			}
		}
	}
	if matching >= 0 {
		group := &groups[incident][matching]
		angle := math.Inf(-1)
		if a, ok := group.plane.ProjectedAngle(incident.Vec(), adjacent.Vec()); ok {
			angle = a
		}
		if angle < group.angle {
			group.angle = angle
			group.best = adjacent
		}
		return
	}
	angle := math.Inf(-1)
	if a, ok := plane.ProjectedAngle(incident.Vec(), adjacent.Vec()); ok {
		angle = a
	}
	groups[incident] = append(groups[incident], planeGroup{plane: plane, angle: angle, best: adjacent})
}
