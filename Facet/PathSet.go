package Facet

import (
	"encoding/binary"
	"math"
	"strings"
)

// PathSet 保持插入顺序的回路集合
// 同一几何回路的旋转与反向序列共享一个规范键，先发现者为代表
// 插入顺序即发现顺序，细容差的结果先于粗容差进入集合
type PathSet struct {
	index map[string]int
	paths []Path
}

// NewPathSet 构造空集合
func NewPathSet() *PathSet {
	return &PathSet{index: make(map[string]int)}
}

// Insert 将回路加入集合，已存在等价回路时返回 false
func (s *PathSet) Insert(path Path) bool {
	key := CanonicalKey(path.Sequence)
	if _, ok := s.index[key]; ok {
		return false
	}
	s.index[key] = len(s.paths)
	s.paths = append(s.paths, path)
	return true
}

// Contains 判断是否已有等价回路
func (s *PathSet) Contains(path Path) bool {
	_, ok := s.index[CanonicalKey(path.Sequence)]
	return ok
}

// Len 集合大小
func (s *PathSet) Len() int {
	return len(s.paths)
}

// Paths 按插入顺序返回全部回路
func (s *PathSet) Paths() []Path {
	return s.paths
}

// CanonicalKey 回路顶点序列的规范键
// 正反两个遍历方向各自旋转到字典序最小顶点开头，取其中字典序较小者编码
func CanonicalKey(sequence []Coordinate) string {
	if len(sequence) == 0 {
		return ""
	}
	forward := rotateToMin(sequence)
	backward := rotateToMin(reversedSequence(sequence))
	canonical := forward
	if lessSequence(backward, forward) {
		canonical = backward
	}
	var builder strings.Builder
	builder.Grow(len(canonical) * 24)
	var buffer [8]byte
	for _, c := range canonical {
		for _, value := range [3]float64{c.X, c.Y, c.Z} {
			binary.BigEndian.PutUint64(buffer[:], math.Float64bits(value))
			builder.Write(buffer[:])
		}
	}
	return builder.String()
}

func lessCoordinate(a, b Coordinate) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}

func lessSequence(a, b []Coordinate) bool {
	for i := range a {
		if i >= len(b) {
			return false
		}
		if a[i] != b[i] {
			return lessCoordinate(a[i], b[i])
		}
	}
	return len(a) < len(b)
}

func rotateToMin(sequence []Coordinate) []Coordinate {
	start := 0
	for i, c := range sequence {
		if lessCoordinate(c, sequence[start]) {
			start = i
		}
	}
	rotated := make([]Coordinate, 0, len(sequence))
	rotated = append(rotated, sequence[start:]...)
	rotated = append(rotated, sequence[:start]...)
	return rotated
}

func reversedSequence(sequence []Coordinate) []Coordinate {
	reversed := make([]Coordinate, len(sequence))
	for i, c := range sequence {
		reversed[len(sequence)-1-i] = c
	}
	return reversed
}
