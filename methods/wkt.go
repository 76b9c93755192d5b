package methods

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/GrainArc/RoofLine/Facet"
)

// ParseLineStringZ 解析形如 LINESTRING (0 0 0, 7 0 0) 的线段文本
// 必须恰好两个坐标点，坐标为三个有限浮点数；零长线段视为非法输入
func ParseLineStringZ(text string) (Facet.Segment, error) {
	body, err := literalBody(text, "LINESTRING")
	if err != nil {
		return Facet.Segment{}, err
	}
	points := strings.Split(body, ",")
	if len(points) != 2 {
		return Facet.Segment{}, fmt.Errorf("linestring 应包含两个坐标点, 实际 %d 个: %q", len(points), text)
	}
	a, err := parseCoordinateZ(points[0])
	if err != nil {
		return Facet.Segment{}, err
	}
	b, err := parseCoordinateZ(points[1])
	if err != nil {
		return Facet.Segment{}, err
	}
	if a == b {
		return Facet.Segment{}, fmt.Errorf("线段两端点重合: %q", text)
	}
	return Facet.Segment{A: a, B: b}, nil
}

// ParseLineStrings 批量解析，任一条失败即整体失败
func ParseLineStrings(lines []string) ([]Facet.Segment, error) {
	segments := make([]Facet.Segment, 0, len(lines))
	for i, line := range lines {
		segment, err := ParseLineStringZ(line)
		if err != nil {
			return nil, fmt.Errorf("第 %d 条线段非法: %w", i+1, err)
		}
		segments = append(segments, segment)
	}
	return segments, nil
}

// ParsePolygonZ 解析单环多边形文本，首尾点重复时自动去除闭合点
func ParsePolygonZ(text string) (Facet.Path, error) {
	body, err := literalBody(text, "POLYGON")
	if err != nil {
		return Facet.Path{}, err
	}
	body = strings.TrimSpace(body)
	if !strings.HasPrefix(body, "(") || !strings.HasSuffix(body, ")") {
		return Facet.Path{}, fmt.Errorf("polygon 缺少环括号: %q", text)
	}
	body = body[1 : len(body)-1]
	points := strings.Split(body, ",")
	sequence := make([]Facet.Coordinate, 0, len(points))
	for _, point := range points {
		c, err := parseCoordinateZ(point)
		if err != nil {
			return Facet.Path{}, err
		}
		sequence = append(sequence, c)
	}
	if len(sequence) > 3 && sequence[0] == sequence[len(sequence)-1] {
		sequence = sequence[:len(sequence)-1]
	}
	if len(sequence) < 3 {
		return Facet.Path{}, fmt.Errorf("polygon 至少需要三个不同顶点: %q", text)
	}
	return Facet.NewPath(sequence), nil
}

// LineStringZString 线段的 WKT 文本
func LineStringZString(segment Facet.Segment) string {
	return fmt.Sprintf("LINESTRING (%s, %s)", coordinateZString(segment.A), coordinateZString(segment.B))
}

// PolygonZString 输出单环多边形文本，顶点顺序与回路一致，不重复首点
// 此处不做校验，非法回路不应到达这里
func PolygonZString(path Facet.Path) string {
	parts := make([]string, 0, len(path.Sequence))
	for _, c := range path.Sequence {
		parts = append(parts, coordinateZString(c))
	}
	return "POLYGON ((" + strings.Join(parts, ", ") + "))"
}

// literalBody 剥掉几何标签与最外层括号
func literalBody(text, tag string) (string, error) {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(strings.ToUpper(s), tag) {
		return "", fmt.Errorf("缺少 %s 标签: %q", tag, text)
	}
	rest := strings.TrimSpace(s[len(tag):])
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return "", fmt.Errorf("%s 括号不完整: %q", tag, text)
	}
	return rest[1 : len(rest)-1], nil
}

func parseCoordinateZ(text string) (Facet.Coordinate, error) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) != 3 {
		return Facet.Coordinate{}, fmt.Errorf("坐标应为三个分量, 实际 %d 个: %q", len(fields), text)
	}
	var values [3]float64
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Facet.Coordinate{}, fmt.Errorf("坐标分量非数值: %q", field)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return Facet.Coordinate{}, fmt.Errorf("坐标分量非有限值: %q", field)
		}
		values[i] = value
	}
	return Facet.Coordinate{X: values[0], Y: values[1], Z: values[2]}, nil
}

func coordinateZString(c Facet.Coordinate) string {
	return formatFloat(c.X) + " " + formatFloat(c.Y) + " " + formatFloat(c.Z)
}

// formatFloat 最短可逆十进制表示，保证输出再解析后坐标不变
func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
