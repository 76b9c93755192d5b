package methods

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"sync"

	"github.com/GrainArc/RoofLine/Facet"
	"github.com/GrainArc/RoofLine/models"
	"gorm.io/gorm"
)

// LineKind 屋面线类型，取值沿用数据集的分类字段
type LineKind string

const (
	KindRidge       LineKind = "Mønelinje"
	KindEdge        LineKind = "Takkant"
	KindRoofGap     LineKind = "Taksprang"
	KindRoofGapLine LineKind = "TaksprangBunn"
	KindBuilding    LineKind = "Bygningslinje"
	KindHelper      LineKind = "Hjelpelinje3D"
)

// ImportedSegment 数据集中的一条线段及其类型
type ImportedSegment struct {
	Segment Facet.Segment
	Kind    LineKind
	WKT     string
}

// lineGeometry 坐标先留原文，跳过非线要素后再解码
// 点要素的坐标是一维数组，提前解码会使整个数据集失败
type lineGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

type lineFeature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   lineGeometry           `json:"geometry"`
}

type lineCollection struct {
	Type     string          `json:"type"`
	Name     string          `json:"name"`
	CRS      json.RawMessage `json:"crs,omitempty"`
	Features []lineFeature   `json:"features"`
}

// ParseGeoJSONDataset 解析三维线段数据集
// 非 LineString 要素跳过；线段要素格式非法则整体失败，不产生部分结果
func ParseGeoJSONDataset(data []byte) ([]ImportedSegment, error) {
	var collection lineCollection
	if err := json.Unmarshal(data, &collection); err != nil {
		return nil, fmt.Errorf("geojson 解析失败: %w", err)
	}
	segments := make([]ImportedSegment, 0, len(collection.Features))
	for i, feature := range collection.Features {
		if feature.Geometry.Type != "LineString" {
			continue
		}
		var coordinates [][]float64
		if err := json.Unmarshal(feature.Geometry.Coordinates, &coordinates); err != nil {
			return nil, fmt.Errorf("要素 #%d 坐标解析失败: %w", i, err)
		}
		if len(coordinates) != 2 {
			return nil, fmt.Errorf("要素 #%d 应为两点线段, 实际 %d 点", i, len(coordinates))
		}
		var points [2]Facet.Coordinate
		for j, position := range coordinates {
			if len(position) != 3 {
				return nil, fmt.Errorf("要素 #%d 坐标缺少高程分量", i)
			}
			points[j] = Facet.Coordinate{X: position[0], Y: position[1], Z: position[2]}
		}
		if points[0] == points[1] {
			return nil, fmt.Errorf("要素 #%d 为零长线段", i)
		}
		segment := Facet.Segment{A: points[0], B: points[1]}
		imported := ImportedSegment{Segment: segment, WKT: LineStringZString(segment)}
		if kind, ok := feature.Properties["type"].(string); ok {
			imported.Kind = LineKind(kind)
		}
		segments = append(segments, imported)
	}
	return segments, nil
}

// ExportFacetCollection 将重建结果输出为 GeoJSON FeatureCollection
// 多边形环按 GeoJSON 约定重复首点闭合
func ExportFacetCollection(name string, paths []Facet.Path) ([]byte, error) {
	features := make([]map[string]interface{}, 0, len(paths))
	for i, path := range paths {
		ring := make([][]float64, 0, len(path.Sequence)+1)
		for _, c := range path.Sequence {
			ring = append(ring, []float64{c.X, c.Y, c.Z})
		}
		if len(ring) > 0 {
			ring = append(ring, ring[0])
		}
		features = append(features, map[string]interface{}{
			"type": "Feature",
			"properties": map[string]interface{}{
				"label": strconv.Itoa(i),
			},
			"geometry": map[string]interface{}{
				"type":        "Polygon",
				"coordinates": [][][]float64{ring},
			},
		})
	}
	return json.MarshalIndent(map[string]interface{}{
		"type":     "FeatureCollection",
		"name":     name,
		"features": features,
	}, "", "  ")
}

// SaveSegmentsToDB 并发写入线段记录
func SaveSegmentsToDB(db *gorm.DB, dataset string, segments []ImportedSegment) {
	const workerCount = 8

	if len(segments) == 0 {
		return
	}

	segmentChan := make(chan ImportedSegment, workerCount)
	var wg sync.WaitGroup

	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range segmentChan {
				row := models.RoofSegment{
					Dataset: dataset,
					Kind:    string(item.Kind),
					WKT:     item.WKT,
				}
				if err := db.Create(&row).Error; err != nil {
					log.Printf("线段写入失败: %v", err)
				}
			}
		}()
	}

	go func() {
		defer close(segmentChan)
		for _, segment := range segments {
			segmentChan <- segment
		}
	}()

	wg.Wait()
}
