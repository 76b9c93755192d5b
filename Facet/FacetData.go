package Facet

// Coordinate 表示一个三维坐标点
// 输入数据已按统一精度对齐，相等判断为精确相等
type Coordinate struct {
	X, Y, Z float64
}

// Vector 表示一个三维方向向量
type Vector struct {
	X, Y, Z float64
}

// Segment 表示一条两端点不同的线段，端点无方向之分
type Segment struct {
	A, B Coordinate
}

// DirectedEdge 表示沿线段的一次有向行进
type DirectedEdge struct {
	From, To Coordinate
}

// Path 表示一条闭合回路，按遍历顺序存储顶点，首点不重复存储
type Path struct {
	Sequence []Coordinate
	members  map[Coordinate]struct{}
}

// DefaultLadder 默认容差阶梯，由细到粗依次尝试
var DefaultLadder = []float64{0.005, 0.05, 0.25, 0.5}

// Vec 计算线段端点差向量
func (s Segment) Vec() Vector {
	return Vector{s.B.X - s.A.X, s.B.Y - s.A.Y, s.B.Z - s.A.Z}
}

// Vec 计算有向边的方向向量
func (e DirectedEdge) Vec() Vector {
	return Vector{e.To.X - e.From.X, e.To.Y - e.From.Y, e.To.Z - e.From.Z}
}

// NewPath 由顶点序列构建回路，序列会被复制
func NewPath(sequence []Coordinate) Path {
	seq := make([]Coordinate, len(sequence))
	copy(seq, sequence)
	members := make(map[Coordinate]struct{}, len(seq))
	for _, c := range seq {
		members[c] = struct{}{}
	}
	return Path{Sequence: seq, members: members}
}

// Len 回路的顶点数
func (p Path) Len() int {
	return len(p.Sequence)
}

// Contains 判断坐标是否为回路顶点
func (p Path) Contains(c Coordinate) bool {
	_, ok := p.members[c]
	return ok
}

// Reversed 返回遍历方向相反的回路
func (p Path) Reversed() Path {
	seq := make([]Coordinate, len(p.Sequence))
	for i, c := range p.Sequence {
		seq[len(seq)-1-i] = c
	}
	return NewPath(seq)
}
