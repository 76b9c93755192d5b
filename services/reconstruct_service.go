// services/reconstruct_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/GrainArc/RoofLine/Facet"
	"github.com/GrainArc/RoofLine/methods"
	"github.com/GrainArc/RoofLine/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type ReconstructionService struct {
	Ladder []float64
}

func NewReconstructionService(ladder []float64) *ReconstructionService {
	if len(ladder) == 0 {
		ladder = Facet.DefaultLadder
	}
	return &ReconstructionService{Ladder: ladder}
}

// Reconstruct 重建基本面
// 各容差的构图与枚举相互独立，并行执行后按阶梯顺序合并，
// 去重集合的插入顺序因此与顺序执行一致
func (s *ReconstructionService) Reconstruct(ctx context.Context, segments []Facet.Segment) ([]Facet.Path, error) {
	if len(segments) == 0 {
		return nil, nil
	}

	results := make([][]Facet.Path, len(s.Ladder))
	group, ctx := errgroup.WithContext(ctx)
	for i, epsilon := range s.Ladder {
		i, epsilon := i, epsilon
		group.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = Facet.CollectPaths(segments, epsilon)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	set := Facet.NewPathSet()
	for _, paths := range results {
		for _, path := range paths {
			set.Insert(path)
		}
	}

	polygons := make([]Facet.Polygon, 0, set.Len())
	for _, path := range set.Paths() {
		polygons = append(polygons, Facet.NewPolygon(path))
	}
	kept := Facet.FilterFundamentalIndexed(polygons)
	paths := make([]Facet.Path, 0, len(kept))
	for _, polygon := range kept {
		paths = append(paths, polygon.Path)
	}
	return paths, nil
}

// ReconstructLines 解析线段文本后重建，任一条非法则整体失败
func (s *ReconstructionService) ReconstructLines(ctx context.Context, lines []string) ([]Facet.Path, error) {
	segments, err := methods.ParseLineStrings(lines)
	if err != nil {
		return nil, err
	}
	return s.Reconstruct(ctx, segments)
}

// ReconstructDataset 读取数据集线段，重建并将结果落库
func (s *ReconstructionService) ReconstructDataset(ctx context.Context, db *gorm.DB, dataset string) (string, []Facet.Path, error) {
	var rows []models.RoofSegment
	if err := db.Where("dataset = ?", dataset).Order("id").Find(&rows).Error; err != nil {
		return "", nil, err
	}

	segments := make([]Facet.Segment, 0, len(rows))
	for _, row := range rows {
		segment, err := methods.ParseLineStringZ(row.WKT)
		if err != nil {
			return "", nil, fmt.Errorf("数据集 %s 第 %d 条线段非法: %w", dataset, row.ID, err)
		}
		segments = append(segments, segment)
	}

	paths, err := s.Reconstruct(ctx, segments)
	if err != nil {
		return "", nil, err
	}

	jobID := uuid.New().String()
	job := models.FacetJob{
		JobID:   jobID,
		Dataset: dataset,
		Status:  "done",
		Facets:  len(paths),
		Date:    time.Now().Format("2006-01-02 15:04:05"),
	}
	if err := db.Create(&job).Error; err != nil {
		return "", nil, err
	}
	for i, path := range paths {
		result := models.FacetResult{JobID: jobID, Ordinal: i, WKT: methods.PolygonZString(path)}
		if err := db.Create(&result).Error; err != nil {
			return "", nil, err
		}
	}
	return jobID, paths, nil
}
