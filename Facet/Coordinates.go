package Facet

import (
	"math"
	"math/rand"
)

// referenceVector 固定种子生成的参考向量
// 投影基底在所有容差与调用间保持一致，保证角度比较可复现
var referenceVector = func() Vector {
	generator := rand.New(rand.NewSource(0))
	v, _ := Vector{generator.Float64(), generator.Float64(), generator.Float64()}.Normalize(0)
	return v
}()

// Norm 向量模长
func (v Vector) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Scale 向量数乘
func (v Vector) Scale(multiplier float64) Vector {
	return Vector{multiplier * v.X, multiplier * v.Y, multiplier * v.Z}
}

// Normalize 单位化，模长不大于 epsilon 时视为退化向量
func (v Vector) Normalize(epsilon float64) (Vector, bool) {
	norm := v.Norm()
	if norm <= epsilon {
		return Vector{}, false
	}
	return v.Scale(1 / norm), true
}

// Dot 点积
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross 叉积
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// IsParallelTo 叉积模长不超过 epsilon 即认为两向量平行
func (v Vector) IsParallelTo(other Vector, epsilon float64) bool {
	return v.Cross(other).Norm() <= epsilon
}

// Normal 两向量张成平面的单位法向，退化时返回 false
func (v Vector) Normal(other Vector, epsilon float64) (Vector, bool) {
	return v.Cross(other).Normalize(epsilon)
}
