package services

import (
	"context"
	"testing"

	"github.com/GrainArc/RoofLine/Facet"
	"github.com/GrainArc/RoofLine/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func gableLines() []string {
	return []string{
		"LINESTRING (0 0 0, 7 0 0)",
		"LINESTRING (7 0 0, 10 0 0)",
		"LINESTRING (0 0 0, 0 25 15)",
		"LINESTRING (10 0 0, 10 25 15)",
		"LINESTRING (0 25 15, 10 25 15)",
		"LINESTRING (0 0 0, 0 5 -5)",
		"LINESTRING (7 0 0, 7 5 -5)",
		"LINESTRING (0 5 -5, 7 5 -5)",
	}
}

func TestReconstructGable(t *testing.T) {
	service := NewReconstructionService(nil)
	paths, err := service.ReconstructLines(context.Background(), gableLines())
	if err != nil {
		t.Fatalf("reconstruct failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("facet count = %d, want 2", len(paths))
	}

	set := Facet.NewPathSet()
	for _, path := range paths {
		if !set.Insert(path) {
			t.Errorf("duplicate facet: %v", path.Sequence)
		}
	}
}

func TestReconstructEmptyInput(t *testing.T) {
	service := NewReconstructionService(nil)
	paths, err := service.Reconstruct(context.Background(), nil)
	if err != nil {
		t.Fatalf("reconstruct failed: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("facet count = %d, want 0", len(paths))
	}
}

func TestReconstructLinesRejectsBadInput(t *testing.T) {
	service := NewReconstructionService(nil)
	lines := append(gableLines(), "LINESTRING (0 0, 1 1)")
	if _, err := service.ReconstructLines(context.Background(), lines); err == nil {
		t.Fatal("batch with bad line accepted")
	}
}

func TestNewReconstructionServiceDefaultLadder(t *testing.T) {
	service := NewReconstructionService(nil)
	if len(service.Ladder) != len(Facet.DefaultLadder) {
		t.Errorf("ladder = %v, want default", service.Ladder)
	}
	custom := NewReconstructionService([]float64{0.01})
	if len(custom.Ladder) != 1 || custom.Ladder[0] != 0.01 {
		t.Errorf("ladder = %v, want [0.01]", custom.Ladder)
	}
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.RoofSegment{}, &models.FacetJob{}, &models.FacetResult{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestReconstructDataset(t *testing.T) {
	db := openTestDB(t)
	for _, line := range gableLines() {
		if err := db.Create(&models.RoofSegment{Dataset: "gable", WKT: line}).Error; err != nil {
			t.Fatalf("seed segment: %v", err)
		}
	}

	service := NewReconstructionService(nil)
	jobID, paths, err := service.ReconstructDataset(context.Background(), db, "gable")
	if err != nil {
		t.Fatalf("reconstruct failed: %v", err)
	}
	if jobID == "" {
		t.Error("empty job id")
	}
	if len(paths) != 2 {
		t.Fatalf("facet count = %d, want 2", len(paths))
	}

	var job models.FacetJob
	if err := db.Where("job_id = ?", jobID).First(&job).Error; err != nil {
		t.Fatalf("job row missing: %v", err)
	}
	if job.Status != "done" || job.Facets != 2 {
		t.Errorf("job = %+v", job)
	}

	var results []models.FacetResult
	if err := db.Where("job_id = ?", jobID).Order("ordinal").Find(&results).Error; err != nil {
		t.Fatalf("result rows missing: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("result count = %d, want 2", len(results))
	}
	for i, result := range results {
		if result.Ordinal != i {
			t.Errorf("ordinal = %d, want %d", result.Ordinal, i)
		}
		if result.WKT == "" {
			t.Errorf("empty wkt at %d", i)
		}
	}
}

func TestReconstructDatasetBadSegment(t *testing.T) {
	db := openTestDB(t)
	if err := db.Create(&models.RoofSegment{Dataset: "broken", WKT: "LINESTRING (0 0 0)"}).Error; err != nil {
		t.Fatalf("seed segment: %v", err)
	}
	service := NewReconstructionService(nil)
	if _, _, err := service.ReconstructDataset(context.Background(), db, "broken"); err == nil {
		t.Fatal("dataset with bad segment accepted")
	}
}
