package Facet

import "math"

// PlaneMatcher 在给定容差下判断平面一致性
// defined 为 false 表示平面尚未确定，对应共线延伸的情形
type PlaneMatcher struct {
	normal  Vector
	basisU  Vector
	basisV  Vector
	defined bool
	epsilon float64
}

// UndefinedPlane 构造未定平面
func UndefinedPlane(epsilon float64) PlaneMatcher {
	return PlaneMatcher{epsilon: epsilon}
}

// PlaneBetween 由共享顶点的两条边张成平面
// 叉积接近零向量说明两边近似共线，此时平面未定，留待后续边确定
func PlaneBetween(current, successor Vector, epsilon float64) PlaneMatcher {
	normal, ok := current.Cross(successor).Normalize(epsilon)
	if !ok {
		return UndefinedPlane(epsilon)
	}
	// 法向统一取 z 非负方向，保证同一平面两次构造可比
	if normal.Z < 0 {
		normal = normal.Scale(-1)
	}
	u := referenceVector
	v, ok := normal.Cross(u).Normalize(0)
	if !ok {
		return UndefinedPlane(epsilon)
	}
	return PlaneMatcher{
		normal:  normal,
		basisU:  u,
		basisV:  v,
		defined: true,
		epsilon: epsilon,
	}
}

// IsDefined 平面是否已确定
func (p PlaneMatcher) IsDefined() bool {
	return p.defined
}

// Normal 平面单位法向
func (p PlaneMatcher) Normal() (Vector, bool) {
	return p.normal, p.defined
}

// Coplanarity 两平面法向的偏差量，任一未定时不可比
func (p PlaneMatcher) Coplanarity(other PlaneMatcher) (float64, bool) {
	if !p.defined || !other.defined {
		return 0, false
	}
	return p.normal.Cross(other.normal).Norm(), true
}

// SameAs 两平面在容差内是否一致
func (p PlaneMatcher) SameAs(other PlaneMatcher) bool {
	if !p.defined || !other.defined {
		return false
	}
	return p.normal.IsParallelTo(other.normal, p.epsilon)
}

// MatchAgainst 将转移图中的平面与路径携带的平面合并
// forced 表示该转移是当前状态的唯一出路，允许未定对未定的延续
func (p PlaneMatcher) MatchAgainst(other PlaneMatcher, forced bool) (PlaneMatcher, bool) {
	switch {
	case p.defined && other.defined:
		if p.normal.IsParallelTo(other.normal, p.epsilon) {
			return p, true
		}
		return PlaneMatcher{}, false
	case p.defined:
		return p, true
	case other.defined:
		return other, true
	default:
		if forced {
			return p, true
		}
		return PlaneMatcher{}, false
	}
}

// project 将向量按 (u, v, normal) 基底做斜投影并单位化
func (p PlaneMatcher) project(vector Vector) (Vector, bool) {
	if !p.defined {
		return Vector{}, false
	}
	return Vector{
		p.basisU.Dot(vector),
		p.basisV.Dot(vector),
		p.normal.Dot(vector),
	}.Normalize(p.epsilon)
}

// ProjectedAngle 平面内从 current 转向 successor 的转角，取值 (0, 2π)
func (p PlaneMatcher) ProjectedAngle(current, successor Vector) (float64, bool) {
	u, okU := p.project(current)
	v, okV := p.project(successor)
	if !okU || !okV {
		return 0, false
	}
	return math.Pi + math.Atan2(v.Y*u.X-v.X*u.Y, u.X*v.X+u.Y*v.Y), true
}
