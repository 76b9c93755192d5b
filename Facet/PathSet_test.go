package Facet

import "testing"

func quad() []Coordinate {
	return []Coordinate{
		{0, 0, 0},
		{7, 0, 0},
		{7, 5, -5},
		{0, 5, -5},
	}
}

func TestPathSetRotationEquivalence(t *testing.T) {
	set := NewPathSet()
	sequence := quad()
	if !set.Insert(NewPath(sequence)) {
		t.Fatal("first insert rejected")
	}

	rotated := append(sequence[1:], sequence[0])
	if set.Insert(NewPath(rotated)) {
		t.Error("rotated sequence inserted as a new path")
	}
	if set.Len() != 1 {
		t.Errorf("set size = %d, want 1", set.Len())
	}
}

func TestPathSetReflectionEquivalence(t *testing.T) {
	set := NewPathSet()
	path := NewPath(quad())
	set.Insert(path)
	if set.Insert(path.Reversed()) {
		t.Error("reversed sequence inserted as a new path")
	}
	rotatedReversed := NewPath(append(path.Reversed().Sequence[2:], path.Reversed().Sequence[:2]...))
	if set.Insert(rotatedReversed) {
		t.Error("rotated reversal inserted as a new path")
	}
}

func TestPathSetInsertionOrder(t *testing.T) {
	set := NewPathSet()
	first := NewPath(quad())
	second := NewPath([]Coordinate{
		{0, 0, 0},
		{10, 0, 0},
		{10, 25, 15},
		{0, 25, 15},
	})
	set.Insert(first)
	set.Insert(second)
	// 重复插入不改变代表元与顺序
	set.Insert(second.Reversed())
	set.Insert(first)

	paths := set.Paths()
	if len(paths) != 2 {
		t.Fatalf("set size = %d, want 2", len(paths))
	}
	if CanonicalKey(paths[0].Sequence) != CanonicalKey(first.Sequence) {
		t.Error("first inserted path is not the first element")
	}
	if CanonicalKey(paths[1].Sequence) != CanonicalKey(second.Sequence) {
		t.Error("second inserted path is not the second element")
	}
}

func TestCanonicalKeyDistinguishesShapes(t *testing.T) {
	square := NewPath([]Coordinate{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}})
	triangle := NewPath([]Coordinate{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}})
	if CanonicalKey(square.Sequence) == CanonicalKey(triangle.Sequence) {
		t.Error("different shapes share a canonical key")
	}
}
